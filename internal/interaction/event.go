package interaction

import "time"

// DefaultTimeFormat renders timestamps the way an en-US locale time string does.
const DefaultTimeFormat = "3:04:05 PM"

// snapshotTimeFormat is an ISO-8601 UTC timestamp with millisecond precision.
const snapshotTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Entry is one immutable, timestamped record of a user-visible interaction.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}

// Format renders the entry as "[<time>] <action>" or "[<time>] <action>: <details>".
func (e Entry) Format(layout string) string {
	if layout == "" {
		layout = DefaultTimeFormat
	}
	line := "[" + e.Timestamp.Format(layout) + "] " + e.Action
	if e.Details != "" {
		line += ": " + e.Details
	}
	return line
}

// Snapshot is the export document for the interaction log.
type Snapshot struct {
	Timestamp         string   `json:"timestamp"`
	TotalInteractions int      `json:"totalInteractions"`
	Interactions      []string `json:"interactions"`
}
