package widgets

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ListEntry is one row of the dynamic list.
type ListEntry struct {
	ID   string
	Text string
}

// ListSurface renders the dynamic list, its count and its text input.
type ListSurface interface {
	AppendEntry(entry ListEntry)
	RemoveEntry(id string)
	ClearEntries()
	SetCount(n int)
	ClearInput()
}

// List is an ordered list of free-text entries, each with its own delete.
type List struct {
	entries []ListEntry
	newID   func() string
	surface ListSurface
	log     Recorder
}

// NewList creates a list holding the seed entries. Seeds are rendered but not
// logged.
func NewList(surface ListSurface, log Recorder, seed ...string) *List {
	l := &List{surface: surface, log: log, newID: uuid.NewString}
	if surface == nil {
		return l
	}
	for _, text := range seed {
		l.insert(text)
	}
	l.surface.SetCount(len(l.entries))
	return l
}

// Entries returns the list rows in order.
func (l *List) Entries() []ListEntry {
	return append([]ListEntry(nil), l.entries...)
}

// Len returns the number of rows.
func (l *List) Len() int { return len(l.entries) }

// Add appends text as a new entry. Blank input is ignored. It returns the new
// entry and whether one was added.
func (l *List) Add(text string) (ListEntry, bool) {
	text = strings.TrimSpace(text)
	if l.surface == nil || text == "" {
		return ListEntry{}, false
	}
	e := l.insert(text)
	l.surface.ClearInput()
	l.surface.SetCount(len(l.entries))
	l.log.Append("Item added to list", text)
	return e, true
}

// Delete removes exactly the entry with id.
func (l *List) Delete(id string) bool {
	if l.surface == nil {
		return false
	}
	for i, e := range l.entries {
		if e.ID != id {
			continue
		}
		l.entries = append(l.entries[:i], l.entries[i+1:]...)
		l.surface.RemoveEntry(id)
		l.surface.SetCount(len(l.entries))
		l.log.Append("Item removed from list", e.Text)
		return true
	}
	return false
}

// ClearAll removes every entry in one action.
func (l *List) ClearAll() {
	if l.surface == nil {
		return
	}
	n := len(l.entries)
	l.entries = nil
	l.surface.ClearEntries()
	l.surface.SetCount(0)
	l.log.Append("List cleared", fmt.Sprintf("removed %d items", n))
}

func (l *List) insert(text string) ListEntry {
	e := ListEntry{ID: l.newID(), Text: text}
	l.entries = append(l.entries, e)
	l.surface.AppendEntry(e)
	return e
}
