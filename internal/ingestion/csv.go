package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is a single CSV record addressed by header name. Field lookups are
// case-insensitive, matching how the upload clients produce headers.
type Row struct {
	columns map[string]int
	record  []string
}

// Field returns the trimmed value of the named column, or "" when the
// column is absent or the record is short.
func (r Row) Field(name string) string {
	idx, ok := r.columns[strings.ToLower(name)]
	if !ok || idx >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[idx])
}

// RowReader streams CSV records one at a time. The header row is consumed
// eagerly so callers can validate it before reading any data rows.
type RowReader struct {
	reader  *csv.Reader
	headers []string
	columns map[string]int
}

func NewRowReader(r io.Reader) (*RowReader, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	headerRecord, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	headers := make([]string, len(headerRecord))
	columns := make(map[string]int, len(headerRecord))
	for i, h := range headerRecord {
		name := strings.TrimSpace(h)
		headers[i] = name
		columns[strings.ToLower(name)] = i
	}

	return &RowReader{reader: cr, headers: headers, columns: columns}, nil
}

// Headers returns the header names in file order.
func (rr *RowReader) Headers() []string {
	return rr.headers
}

// Next returns the next data row, or io.EOF when the file is exhausted.
func (rr *RowReader) Next() (Row, error) {
	record, err := rr.reader.Read()
	if err != nil {
		return Row{}, err
	}
	return Row{columns: rr.columns, record: record}, nil
}
