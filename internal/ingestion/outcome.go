package ingestion

// RowOutcome classifies what happened to a single CSV data row.
type RowOutcome int

const (
	// RowIngested means the row produced an entity (and its values).
	RowIngested RowOutcome = iota
	// RowSkippedEmptyID means the row had no usable identifier.
	RowSkippedEmptyID
	// RowSkippedUnresolvedEndpoint means an edge row named a source or
	// target entity that does not exist.
	RowSkippedUnresolvedEndpoint
)

func (o RowOutcome) String() string {
	switch o {
	case RowIngested:
		return "ingested"
	case RowSkippedEmptyID:
		return "skipped_empty_id"
	case RowSkippedUnresolvedEndpoint:
		return "skipped_unresolved_endpoint"
	default:
		return "unknown"
	}
}

// Stats accumulates row outcomes over a whole file.
type Stats struct {
	RowsRead                  int `json:"rowsRead"`
	RowsIngested              int `json:"rowsIngested"`
	SkippedEmptyID            int `json:"skippedEmptyId"`
	SkippedUnresolvedEndpoint int `json:"skippedUnresolvedEndpoint"`
}

func (s *Stats) Record(outcome RowOutcome) {
	s.RowsRead++
	switch outcome {
	case RowIngested:
		s.RowsIngested++
	case RowSkippedEmptyID:
		s.SkippedEmptyID++
	case RowSkippedUnresolvedEndpoint:
		s.SkippedUnresolvedEndpoint++
	}
}
