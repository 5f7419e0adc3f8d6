// Package components provides reusable TUI components for the widget playground.
package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// tabActiveStyle renders the active tab with bold accent-colored text.
var tabActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))

// tabInactiveStyle renders inactive tabs in a dimmed style.
var tabInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))

// TabBar is a stateless tab bar component that renders a row of labelled tabs.
// The active tab is highlighted with accent color and bold text.
type TabBar struct {
	tabs   []string
	active int
	width  int
}

// NewTabBar creates a TabBar with the given tab titles. The first tab is active.
func NewTabBar(tabs []string) TabBar {
	return TabBar{tabs: tabs}
}

// Active returns the index of the currently active tab, or -1 if none is.
func (t TabBar) Active() int {
	if t.active < 0 || t.active >= len(t.tabs) {
		return -1
	}
	return t.active
}

// SetActive returns a TabBar with tab i active. An out-of-range index leaves
// no tab highlighted.
func (t TabBar) SetActive(i int) TabBar {
	t.active = i
	return t
}

// Next returns a TabBar with the next tab active (wraps around).
func (t TabBar) Next() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	t.active = (t.Active() + 1) % len(t.tabs)
	return t
}

// Prev returns a TabBar with the previous tab active (wraps around).
func (t TabBar) Prev() TabBar {
	if len(t.tabs) == 0 {
		return t
	}
	cur := t.Active()
	if cur < 0 {
		cur = 0
	}
	t.active = (cur + len(t.tabs) - 1) % len(t.tabs)
	return t
}

// SetWidth returns a TabBar configured for the given render width.
func (t TabBar) SetWidth(w int) TabBar {
	t.width = w
	return t
}

// View renders the tab bar as a single line string.
// Tabs are separated by " │ " and the result is truncated to width when set.
func (t TabBar) View() string {
	if len(t.tabs) == 0 {
		return ""
	}

	parts := make([]string, len(t.tabs))
	for i, label := range t.tabs {
		if i == t.active {
			parts[i] = tabActiveStyle.Render(label)
		} else {
			parts[i] = tabInactiveStyle.Render(label)
		}
	}

	line := strings.Join(parts, "  │  ")
	if t.width > 0 {
		line = ansi.Truncate(line, t.width, "…")
	}
	return line
}
