package models

// Outcome is the result of reconciling one record against the store.
type Outcome int

const (
	// OutcomeInserted means a new row was created.
	OutcomeInserted Outcome = iota
	// OutcomeUpdated means an existing row was found (and possibly changed).
	OutcomeUpdated
	// OutcomeSkipped means a degraded record matched no stored row.
	OutcomeSkipped
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInserted:
		return "inserted"
	case OutcomeUpdated:
		return "updated"
	case OutcomeSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}
