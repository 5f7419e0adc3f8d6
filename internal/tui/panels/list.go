package panels

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// entryItem implements list.Item for a dynamic list entry.
type entryItem struct {
	entry widgets.ListEntry
}

func (i entryItem) Title() string       { return i.entry.Text }
func (i entryItem) Description() string { return i.entry.ID }
func (i entryItem) FilterValue() string { return i.entry.Text }

// entryDelegate is a compact single-line delegate with a delete marker.
type entryDelegate struct{}

func (d entryDelegate) Height() int                             { return 1 }
func (d entryDelegate) Spacing() int                            { return 0 }
func (d entryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d entryDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(entryItem)
	if !ok {
		return
	}
	s := item.Title() + "  " + dimStyle.Render("[×]")
	if index == m.Index() {
		s = cursorStyle.Render("> ") + s
	} else {
		s = "  " + s
	}
	_, _ = fmt.Fprint(w, s)
}

// ListPanel shows the dynamic list: an input, the entries and their count.
type ListPanel struct {
	ctrl   *widgets.List
	list   list.Model
	input  textinput.Model
	count  int
	width  int
	height int
}

// NewListPanel creates an unbound list panel.
func NewListPanel() *ListPanel {
	l := list.New(nil, entryDelegate{}, 40, 8)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)

	ti := textinput.New()
	ti.Placeholder = "New item"
	ti.CharLimit = 128
	ti.Width = 32
	ti.Focus()

	return &ListPanel{list: l, input: ti}
}

// AppendEntry implements widgets.ListSurface.
func (p *ListPanel) AppendEntry(e widgets.ListEntry) {
	p.list.InsertItem(len(p.list.Items()), entryItem{entry: e})
}

// RemoveEntry implements widgets.ListSurface.
func (p *ListPanel) RemoveEntry(id string) {
	for i, it := range p.list.Items() {
		if e, ok := it.(entryItem); ok && e.entry.ID == id {
			p.list.RemoveItem(i)
			p.clampCursor()
			return
		}
	}
}

// ClearEntries implements widgets.ListSurface.
func (p *ListPanel) ClearEntries() {
	p.list.SetItems(nil)
	p.list.Select(0)
}

// clampCursor keeps the selection on an existing row.
func (p *ListPanel) clampCursor() {
	p.list.Select(max(0, min(p.list.Index(), len(p.list.Items())-1)))
}

// SetCount implements widgets.ListSurface.
func (p *ListPanel) SetCount(n int) { p.count = n }

// ClearInput implements widgets.ListSurface.
func (p *ListPanel) ClearInput() { p.input.Reset() }

// Entries returns the rendered entries in display order.
func (p *ListPanel) Entries() []widgets.ListEntry {
	var out []widgets.ListEntry
	for _, it := range p.list.Items() {
		if e, ok := it.(entryItem); ok {
			out = append(out, e.entry)
		}
	}
	return out
}

// SetInput fills the new-item input.
func (p *ListPanel) SetInput(s string) { p.input.SetValue(s) }

func (p *ListPanel) Title() string   { return "Dynamic List" }
func (p *ListPanel) Bind(a *app.App) { p.ctrl = a.List }
func (p *ListPanel) Capturing() bool { return true }
func (p *ListPanel) Hints() string {
	return "enter:add  ↑/↓:select  ctrl+d:delete  ctrl+x:clear all"
}

// SetSize resizes the entry list below the input and count rows.
func (p *ListPanel) SetSize(w, h int) {
	p.width, p.height = w, h
	listH := h - 6
	if listH < 1 {
		listH = 1
	}
	p.list.SetSize(w, listH)
	if w > 4 {
		p.input.Width = w - 4
	}
}

// Update handles key messages for the list.
func (p *ListPanel) Update(msg tea.KeyMsg) tea.Cmd {
	if p.ctrl == nil {
		return nil
	}
	var cmd tea.Cmd
	switch msg.String() {
	case "enter":
		p.ctrl.Add(p.input.Value())
	case "up", "down":
		p.list, cmd = p.list.Update(msg)
	case "ctrl+d":
		if item, ok := p.list.SelectedItem().(entryItem); ok {
			p.ctrl.Delete(item.entry.ID)
		}
	case "ctrl+x":
		p.ctrl.ClearAll()
	default:
		p.input, cmd = p.input.Update(msg)
	}
	return cmd
}

// View renders the input, the entries and the count.
func (p *ListPanel) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		p.input.View()+"  "+button("Add", true),
		"",
		p.list.View(),
		dimStyle.Render(fmt.Sprintf("Items: %d", p.count)),
	)
	return frame("Dynamic list", body, p.width, p.height)
}
