// Package panels provides the panel components for the widget playground TUI.
package panels

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
)

// Section is one widget area shown in the main panel. Sections are pointers
// because the bound controller keeps them as its surface.
type Section interface {
	// Title is the name shown in the navigation sidebar.
	Title() string
	// Bind attaches the section to its controller in a.
	Bind(a *app.App)
	SetSize(w, h int)
	Update(msg tea.KeyMsg) tea.Cmd
	View() string
	// Hints returns the footer keybinding hints for the section.
	Hints() string
	// Capturing reports whether a text input is consuming plain keys.
	Capturing() bool
}

var (
	accentColor = lipgloss.Color("#7D56F4")
	dimColor    = lipgloss.Color("#888888")

	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	dimStyle       = lipgloss.NewStyle().Foreground(dimColor)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77"))
	buttonStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(dimColor).Padding(0, 1)
	activeBtnStyle = buttonStyle.BorderForeground(accentColor).Bold(true)
)

// button renders a bordered label, highlighted when active.
func button(label string, active bool) string {
	if active {
		return activeBtnStyle.Render(label)
	}
	return buttonStyle.Render(label)
}

// pointer returns the row prefix for a list cursor.
func pointer(selected bool) string {
	if selected {
		return cursorStyle.Render("> ")
	}
	return "  "
}

// frame lays out a section title above its body within w×h.
func frame(title, body string, w, h int) string {
	content := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), "", body)
	return lipgloss.NewStyle().Width(w).MaxHeight(h).Render(content)
}
