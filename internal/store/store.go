// Package store writes interaction data to disk: the exported results
// document and an optional per-session JSONL journal. Nothing written here
// is read back by the application.
package store

import "github.com/LISSConsulting/LISSTech.Widgets/internal/interaction"

// Journal mirrors interaction entries to durable storage.
type Journal interface {
	Append(entry interaction.Entry) error
	Close() error
}

// DefaultExportName is the file name of the exported results document.
const DefaultExportName = "test-results.json"
