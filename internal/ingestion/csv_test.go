package ingestion

import (
	"io"
	"strings"
	"testing"
)

func TestRowReaderHeadersAndFields(t *testing.T) {
	input := "Id, Color ,Size\nalpha,red,10\nbeta, blue ,\n"
	rr, err := NewRowReader(strings.NewReader(input))
	if err != nil {
		t.Fatalf("NewRowReader: %v", err)
	}

	headers := rr.Headers()
	if len(headers) != 3 || headers[0] != "Id" || headers[1] != "Color" || headers[2] != "Size" {
		t.Fatalf("Headers: unexpected %v", headers)
	}

	row, err := rr.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := row.Field("Id"); got != "alpha" {
		t.Fatalf("Field(Id): got %q", got)
	}
	if got := row.Field("color"); got != "red" {
		t.Fatalf("Field(color): lookup should be case-insensitive, got %q", got)
	}

	row, err = rr.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := row.Field("Color"); got != "blue" {
		t.Fatalf("Field(Color): expected trimmed value, got %q", got)
	}
	if got := row.Field("Size"); got != "" {
		t.Fatalf("Field(Size): expected empty, got %q", got)
	}
	if got := row.Field("Missing"); got != "" {
		t.Fatalf("Field(Missing): expected empty, got %q", got)
	}

	if _, err := rr.Next(); err != io.EOF {
		t.Fatalf("Next: expected io.EOF, got %v", err)
	}
}

func TestRowReaderShortRecord(t *testing.T) {
	rr, err := NewRowReader(strings.NewReader("Id,Color\nalpha\n"))
	if err != nil {
		t.Fatalf("NewRowReader: %v", err)
	}
	row, err := rr.Next()
	if err != nil {
		t.Fatalf("Next: %v", err)
	}
	if got := row.Field("Color"); got != "" {
		t.Fatalf("Field on short record: expected empty, got %q", got)
	}
}

func TestRowReaderEmptyInput(t *testing.T) {
	if _, err := NewRowReader(strings.NewReader("")); err == nil {
		t.Fatalf("NewRowReader: expected error for empty input")
	}
}
