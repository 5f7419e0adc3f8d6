package panels

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SectionSelectedMsg is emitted when the user highlights a section. Enter is
// true when the user asked to move into it.
type SectionSelectedMsg struct {
	Index int
	Enter bool
}

// navItem wraps a section title as a list.Item.
type navItem struct {
	index int
	title string
}

func (n navItem) Title() string       { return fmt.Sprintf("%d  %s", n.index+1, n.title) }
func (n navItem) Description() string { return "" }
func (n navItem) FilterValue() string { return n.title }

// navDelegate is a custom item delegate for compact single-line items.
type navDelegate struct{}

func (d navDelegate) Height() int                             { return 1 }
func (d navDelegate) Spacing() int                            { return 0 }
func (d navDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d navDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ni, ok := item.(navItem)
	if !ok {
		return
	}
	s := ni.Title()
	if index == m.Index() {
		s = lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("> " + s)
	} else {
		s = "  " + s
	}
	_, _ = fmt.Fprint(w, s)
}

// NavPanel displays a navigable list of widget sections.
type NavPanel struct {
	list   list.Model
	width  int
	height int
}

// NewNavPanel creates a nav panel listing the given section titles.
func NewNavPanel(titles []string, w, h int) NavPanel {
	items := make([]list.Item, len(titles))
	for i, title := range titles {
		items[i] = navItem{index: i, title: title}
	}
	l := list.New(items, navDelegate{}, w, h)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return NavPanel{list: l, width: w, height: h}
}

// Selected returns the index of the highlighted section.
func (p NavPanel) Selected() int {
	return p.list.Index()
}

// Select highlights section i.
func (p NavPanel) Select(i int) NavPanel {
	p.list.Select(i)
	return p
}

// Hints returns the footer hints for the nav panel.
func (p NavPanel) Hints() string { return "j/k:navigate  enter:open" }

// SetSize resizes the panel.
func (p NavPanel) SetSize(w, h int) NavPanel {
	p.width = w
	p.height = h
	p.list.SetSize(w, h)
	return p
}

// Update handles key messages for the panel.
func (p NavPanel) Update(msg tea.Msg) (NavPanel, tea.Cmd) {
	var cmd tea.Cmd
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		p.list, cmd = p.list.Update(msg)
		return p, cmd
	}
	switch k := keyMsg.String(); k {
	case "j", "down":
		p.list, cmd = p.list.Update(tea.KeyMsg{Type: tea.KeyDown})
		return p, p.selected(false)
	case "k", "up":
		p.list, cmd = p.list.Update(tea.KeyMsg{Type: tea.KeyUp})
		return p, p.selected(false)
	case "enter", "l", "right":
		return p, p.selected(true)
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			if i := int(k[0] - '1'); i < len(p.list.Items()) {
				p.list.Select(i)
				return p, p.selected(false)
			}
		}
	}
	return p, cmd
}

func (p NavPanel) selected(enter bool) tea.Cmd {
	i := p.list.Index()
	return func() tea.Msg { return SectionSelectedMsg{Index: i, Enter: enter} }
}

// View renders the nav panel.
func (p NavPanel) View() string {
	if len(p.list.Items()) == 0 {
		return lipgloss.NewStyle().
			Width(p.width).Height(p.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(dimColor).
			Render("No sections")
	}
	return p.list.View()
}
