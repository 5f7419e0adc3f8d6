// Package tui provides a bubbletea + lipgloss terminal page for the widget
// playground.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// defaultAccentColor is the default accent color (indigo).
const defaultAccentColor = "#7D56F4"

var (
	colorWhite  = lipgloss.Color("#FAFAFA")
	colorGray   = lipgloss.Color("#888888")
	colorBlue   = lipgloss.Color("#5B9BD5")
	colorGreen  = lipgloss.Color("#6BCB77")
	colorYellow = lipgloss.Color("#FFD93D")
	colorRed    = lipgloss.Color("#FF6B6B")
	colorOrange = lipgloss.Color("#FFA54F")
)

// Styles used across the TUI. Accent-dependent styles (header, borders) live
// on the Theme and are computed from the configured accent color.
var (
	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	inputStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	progressStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	resetStyle = lipgloss.NewStyle().
			Foreground(colorOrange)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	overlayDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#555555"))

	statusErrStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// actionIcon returns the emoji icon for a logged action.
func actionIcon(action string) string {
	switch {
	case strings.HasPrefix(action, "Counter"):
		return "🔢"
	case strings.HasPrefix(action, "Checkbox"), strings.HasPrefix(action, "Radio"):
		return "☑️ "
	case strings.HasPrefix(action, "Visibility"):
		return "👁️ "
	case strings.HasPrefix(action, "Color"):
		return "🎨"
	case strings.HasPrefix(action, "Form"):
		return "📝"
	case strings.HasPrefix(action, "Modal"):
		return "🪟"
	case strings.HasPrefix(action, "Drag"), action == "Item dropped":
		return "📦"
	case strings.HasPrefix(action, "Item"), strings.HasPrefix(action, "List"):
		return "📋"
	case strings.HasPrefix(action, "Slider"), strings.HasPrefix(action, "Auto-progress"):
		return "📊"
	case strings.HasPrefix(action, "Tab"):
		return "🗂️ "
	case strings.HasPrefix(action, "Results"), strings.HasPrefix(action, "Log"):
		return "💾"
	default:
		return "⚡"
	}
}

// actionStyle returns the lipgloss style for a logged action.
func actionStyle(action string) lipgloss.Style {
	switch {
	case strings.Contains(action, "error"):
		return errorStyle
	case strings.Contains(action, "successfully"), action == "Results exported", action == "Item dropped":
		return resultStyle
	case strings.Contains(action, "reset"), strings.Contains(action, "cleared"), strings.Contains(action, "removed"):
		return resetStyle
	case strings.HasPrefix(action, "Slider"), strings.HasPrefix(action, "Auto-progress"):
		return progressStyle
	case strings.HasPrefix(action, "Item added"), strings.HasPrefix(action, "Checkbox"), strings.HasPrefix(action, "Radio"):
		return inputStyle
	default:
		return infoStyle
	}
}
