package tui

// FocusTarget identifies which panel currently holds keyboard focus.
type FocusTarget int

const (
	FocusNav    FocusTarget = iota // Left sidebar: section list
	FocusWidget                    // Right top: active widget section
	FocusLog                       // Right bottom: interaction log
)

const focusCount = 3

// Next returns the next focus target in forward tab order.
func (f FocusTarget) Next() FocusTarget {
	return (f + 1) % focusCount
}

// Prev returns the previous focus target in reverse tab order.
func (f FocusTarget) Prev() FocusTarget {
	return (f + focusCount - 1) % focusCount
}

// String returns the human-readable name of the focus target.
func (f FocusTarget) String() string {
	switch f {
	case FocusNav:
		return "nav"
	case FocusWidget:
		return "widget"
	case FocusLog:
		return "log"
	default:
		return "unknown"
	}
}
