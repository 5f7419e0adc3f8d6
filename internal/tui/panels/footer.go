package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var (
	footerStyle    = lipgloss.NewStyle().Foreground(dimColor)
	footerErrStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// FooterProps holds all data needed to render the footer bar.
type FooterProps struct {
	Focus        string // "nav", "widget", "log"
	Hints        string // keybinding hints of the focused panel
	Global       string // always-available keybinding hints
	Status       string // last export result or error
	StatusErr    bool
	ScrollOffset int
}

// RenderFooter renders the context-sensitive footer bar.
// Left side: status message. Right side: keybinding hints for current focus + global.
func RenderFooter(props FooterProps, width int) string {
	status := props.Status
	if status == "" {
		status = "—"
	}
	left := footerStyle.Render(status)
	if props.StatusErr {
		left = footerErrStyle.Render(status)
	}

	right := props.Hints
	if props.ScrollOffset > 0 {
		right += fmt.Sprintf("  ↑%d", props.ScrollOffset)
	}
	if props.Global != "" {
		right += "  " + props.Global
	}
	right = strings.TrimSpace(right)

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	line := left + strings.Repeat(" ", gap) + footerStyle.Render(right)
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return lipgloss.NewStyle().Width(width).Render(line)
}
