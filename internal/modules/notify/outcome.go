package notify

// Outcome is the result of a single delivery attempt. Every exit path of
// Show maps to exactly one value.
type Outcome int

const (
	OutcomeUnsupported Outcome = iota
	OutcomeDenied
	OutcomeShown
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeDenied:
		return "denied"
	case OutcomeShown:
		return "shown"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}
