package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/interaction"
)

// JSONL is a Journal backed by an append-only JSONL file. Each line is one
// JSON-serialized interaction.Entry. The file is synced after every Append.
//
// Session identity: "<unix-timestamp>-<short-uuid>.jsonl", so names sort
// chronologically for retention.
type JSONL struct {
	file      *os.File
	mu        sync.Mutex
	sessionID string
	startedAt time.Time
	count     int
}

// NewJSONL creates the session journal in dir. dir is created with
// os.MkdirAll if it does not exist.
func NewJSONL(dir string) (*JSONL, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: mkdir %q: %w", dir, err)
	}
	now := time.Now()
	sessionID := fmt.Sprintf("%d-%s", now.Unix(), strings.SplitN(uuid.NewString(), "-", 2)[0])
	path := filepath.Join(dir, sessionID+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	return &JSONL{
		file:      f,
		sessionID: sessionID,
		startedAt: now,
	}, nil
}

// SessionID returns the journal's session identifier.
func (j *JSONL) SessionID() string { return j.sessionID }

// Path returns the journal file path.
func (j *JSONL) Path() string { return j.file.Name() }

// Count returns the number of entries written so far.
func (j *JSONL) Count() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.count
}

// Append serializes entry as a JSON line, writes it to the file, and syncs.
// It is safe to call from multiple goroutines.
func (j *JSONL) Append(entry interaction.Entry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("store: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("store: sync: %w", err)
	}
	j.count++
	return nil
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// EnforceRetention removes the oldest journal files in dir, keeping at most
// maxKeep files. If maxKeep is 0, no files are removed. Returns nil if dir does
// not exist or is empty.
func EnforceRetention(dir string, maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: read dir %q: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			files = append(files, e.Name())
		}
	}

	sort.Strings(files) // timestamp-prefixed names sort chronologically

	toDelete := len(files) - maxKeep
	for i := 0; i < toDelete; i++ {
		path := filepath.Join(dir, files[i])
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("store: remove %q: %w", path, err)
		}
	}
	return nil
}
