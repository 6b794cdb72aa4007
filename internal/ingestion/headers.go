package ingestion

import (
	"fmt"
	"strings"
)

// Node CSVs must carry an "Id" column; edge CSVs must carry both endpoint
// columns. All other columns become attributes.
const (
	NodeIDHeader     = "Id"
	EdgeSourceHeader = "SourceNodeName"
	EdgeTargetHeader = "TargetNodeName"
)

// MissingHeadersError reports every required header absent from the file,
// not just the first, so one upload round-trip surfaces them all.
type MissingHeadersError struct {
	Missing []string
}

func (e *MissingHeadersError) Error() string {
	return fmt.Sprintf("csv is missing required headers: %s", strings.Join(e.Missing, ", "))
}

// ValidateHeaders checks that every required header is present
// (case-insensitive). Returns *MissingHeadersError listing the full
// missing set when any are absent.
func ValidateHeaders(headers []string, required ...string) error {
	present := make(map[string]bool, len(headers))
	for _, h := range headers {
		present[strings.ToLower(strings.TrimSpace(h))] = true
	}

	var missing []string
	for _, want := range required {
		if !present[strings.ToLower(want)] {
			missing = append(missing, want)
		}
	}
	if len(missing) > 0 {
		return &MissingHeadersError{Missing: missing}
	}
	return nil
}

// AttributeHeaders returns the headers that are not reserved columns, in
// file order. These are the columns ingested as attribute values.
func AttributeHeaders(headers []string, reserved ...string) []string {
	skip := make(map[string]bool, len(reserved))
	for _, r := range reserved {
		skip[strings.ToLower(r)] = true
	}

	var out []string
	for _, h := range headers {
		name := strings.TrimSpace(h)
		if name == "" || skip[strings.ToLower(name)] {
			continue
		}
		out = append(out, name)
	}
	return out
}
