package ingestion

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateHeadersReportsFullMissingSet(t *testing.T) {
	err := ValidateHeaders([]string{"Weight"}, EdgeSourceHeader, EdgeTargetHeader)
	if err == nil {
		t.Fatalf("ValidateHeaders: expected error")
	}
	var missing *MissingHeadersError
	if !errors.As(err, &missing) {
		t.Fatalf("ValidateHeaders: expected *MissingHeadersError, got %T", err)
	}
	want := []string{EdgeSourceHeader, EdgeTargetHeader}
	if !reflect.DeepEqual(missing.Missing, want) {
		t.Fatalf("Missing: got %v, want %v", missing.Missing, want)
	}
}

func TestValidateHeadersCaseInsensitive(t *testing.T) {
	if err := ValidateHeaders([]string{"id", "Color"}, NodeIDHeader); err != nil {
		t.Fatalf("ValidateHeaders: %v", err)
	}
}

func TestAttributeHeaders(t *testing.T) {
	got := AttributeHeaders([]string{"Id", "Color", "", "Size"}, NodeIDHeader)
	want := []string{"Color", "Size"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("AttributeHeaders: got %v, want %v", got, want)
	}
}
