// Package interaction keeps the ordered, append-only log of user interactions
// and renders it through a Surface.
package interaction

import (
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Placeholder is the single line shown after the log is cleared.
const Placeholder = "Log cleared"

// Surface is the visible list the log renders into.
type Surface interface {
	// AppendLine adds one formatted line and scrolls to it.
	AppendLine(line string)
	// Reset replaces every line with a single placeholder.
	Reset(placeholder string)
}

// Observer receives every appended entry, e.g. a session journal.
type Observer interface {
	Append(entry Entry) error
}

// Exporter turns a snapshot into a downloadable artifact and returns its location.
type Exporter interface {
	Export(snap Snapshot) (string, error)
}

// Log is the in-memory interaction log. It is not safe for concurrent use;
// all calls are expected to come from the UI event loop.
type Log struct {
	entries  []Entry
	surface  Surface
	observer Observer
	now      func() time.Time
	layout   string
	logger   *slog.Logger
}

// Option configures a Log.
type Option func(*Log)

// WithClock overrides the wall clock used to stamp entries.
func WithClock(now func() time.Time) Option {
	return func(l *Log) { l.now = now }
}

// WithTimeFormat sets the time layout used when formatting entries.
func WithTimeFormat(layout string) Option {
	return func(l *Log) {
		if layout != "" {
			l.layout = layout
		}
	}
}

// WithObserver mirrors every appended entry to o.
func WithObserver(o Observer) Option {
	return func(l *Log) { l.observer = o }
}

// WithLogger sets the diagnostic logger used for observer failures.
func WithLogger(logger *slog.Logger) Option {
	return func(l *Log) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New creates an empty Log rendering into surface. A nil surface is allowed;
// entries are then only kept in memory.
func New(surface Surface, opts ...Option) *Log {
	l := &Log{
		surface: surface,
		now:     time.Now,
		layout:  DefaultTimeFormat,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Append records an interaction, renders it and forwards it to the observer.
func (l *Log) Append(action, details string) {
	entry := Entry{Timestamp: l.now(), Action: action, Details: details}
	l.entries = append(l.entries, entry)
	if l.surface != nil {
		l.surface.AppendLine(entry.Format(l.layout))
	}
	if l.observer != nil {
		if err := l.observer.Append(entry); err != nil {
			l.logger.Warn("interaction: observer append failed", "action", action, "err", err)
		}
	}
}

// Entries returns a copy of the recorded entries in insertion order.
func (l *Log) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len reports the number of recorded entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Lines returns every entry formatted for display.
func (l *Log) Lines() []string {
	lines := make([]string, len(l.entries))
	for i, e := range l.entries {
		lines[i] = e.Format(l.layout)
	}
	return lines
}

// Snapshot builds the export document from the current entries.
func (l *Log) Snapshot() Snapshot {
	return Snapshot{
		Timestamp:         l.now().UTC().Format(snapshotTimeFormat),
		TotalInteractions: len(l.entries),
		Interactions:      l.Lines(),
	}
}

// Export hands a snapshot to exp and, once it succeeds, records the export.
// The returned string is the artifact location reported by exp.
func (l *Log) Export(exp Exporter) (string, error) {
	location, err := exp.Export(l.Snapshot())
	if err != nil {
		return "", fmt.Errorf("interaction: export: %w", err)
	}
	l.Append("Results exported", "")
	return location, nil
}

// Clear empties the log, resets the surface to the placeholder line and then
// records the clear itself.
func (l *Log) Clear() {
	l.entries = nil
	if l.surface != nil {
		l.surface.Reset(Placeholder)
	}
	l.Append("Log cleared", "")
}
