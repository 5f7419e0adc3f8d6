package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/interaction"
)

// FileExporter writes snapshots as indented JSON to Dir/Name. Each export
// replaces the previous file.
type FileExporter struct {
	Dir  string
	Name string
}

// Export writes snap and returns the file path. The file is written to a
// temporary sibling first and renamed into place.
func (e FileExporter) Export(snap interaction.Snapshot) (string, error) {
	name := e.Name
	if name == "" {
		name = DefaultExportName
	}
	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("store: mkdir %q: %w", dir, err)
	}

	if snap.Interactions == nil {
		snap.Interactions = []string{}
	}
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("store: marshal snapshot: %w", err)
	}

	path := filepath.Join(dir, name)
	tmp, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("store: create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("store: write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("store: close %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("store: rename to %q: %w", path, err)
	}
	return path, nil
}
