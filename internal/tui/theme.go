package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Theme holds accent-color-derived styles for the TUI.
type Theme struct {
	accentStyle     lipgloss.Style // header background / dialog title
	dialogStyle     lipgloss.Style // modal dialog frame
	borderFocused   lipgloss.Style // focused panel border
	borderUnfocused lipgloss.Style // unfocused panel border
}

// NewTheme creates a Theme from a hex accent color string (e.g. "#7D56F4").
// If accentColor is empty, the default accent color is used.
func NewTheme(accentColor string) Theme {
	color := defaultAccentColor
	if accentColor != "" {
		color = accentColor
	}
	c := lipgloss.Color(color)
	return Theme{
		accentStyle: lipgloss.NewStyle().
			Background(c).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true),
		dialogStyle: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(c).
			Padding(1, 3),
		borderFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c),
		borderUnfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray),
	}
}

// AccentHeaderStyle returns the style for the header bar.
func (t Theme) AccentHeaderStyle() lipgloss.Style {
	return t.accentStyle
}

// DialogStyle returns the frame style for modal dialogs.
func (t Theme) DialogStyle() lipgloss.Style {
	return t.dialogStyle
}

// PanelBorderStyle returns the appropriate border style for a panel based on
// whether it currently holds keyboard focus.
func (t Theme) PanelBorderStyle(focused bool) lipgloss.Style {
	if focused {
		return t.borderFocused
	}
	return t.borderUnfocused
}

// RenderLogLine styles one formatted interaction line ("[time] action" or
// "[time] action: details") and truncates it to width cells.
func (t Theme) RenderLogLine(line string, width int) string {
	ts, rest, ok := splitTimestamp(line)
	if !ok {
		return ansi.Truncate(infoStyle.Render(line), width, "…")
	}
	action, details, _ := strings.Cut(rest, ": ")
	body := actionStyle(action).Render(action)
	if details != "" {
		body += ": " + details
	}
	rendered := timestampStyle.Render(ts) + "  " + actionIcon(action) + " " + body
	if width > 0 {
		rendered = ansi.Truncate(rendered, width, "…")
	}
	return rendered
}

// splitTimestamp separates the leading "[...]" stamp from the rest of line.
func splitTimestamp(line string) (ts, rest string, ok bool) {
	if !strings.HasPrefix(line, "[") {
		return "", line, false
	}
	end := strings.Index(line, "] ")
	if end < 0 {
		return "", line, false
	}
	return line[:end+1], line[end+2:], true
}
