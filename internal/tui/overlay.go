package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayRect returns the cells a box occupies when centered on a
// width×height screen. The box never starts on the header row or column 0.
func overlayRect(box string, width, height int) Rect {
	lines := strings.Split(box, "\n")
	w := 0
	for _, l := range lines {
		if lw := lipgloss.Width(l); lw > w {
			w = lw
		}
	}
	h := len(lines)

	top := (height - h) / 2
	left := (width - w) / 2
	if top < 1 {
		top = 1
	}
	if left < 1 {
		left = 1
	}
	return Rect{X: left, Y: top, Width: w, Height: h}
}

// renderOverlay dims base and draws box centered on top of it.
func renderOverlay(base, box string, width, height int) string {
	result := strings.Split(base, "\n")
	for i, line := range result {
		result[i] = overlayDimStyle.Render(ansi.Strip(line))
	}

	r := overlayRect(box, width, height)
	for i, line := range strings.Split(box, "\n") {
		row := r.Y + i
		if row >= len(result) {
			continue
		}
		bg := result[row]
		bgWidth := lipgloss.Width(bg)

		leftPart := ansi.Truncate(bg, r.X, "")
		if pad := r.X - lipgloss.Width(leftPart); pad > 0 {
			leftPart += strings.Repeat(" ", pad)
		}
		rightPart := ""
		if rightStart := r.X + lipgloss.Width(line); rightStart < bgWidth {
			rightPart = ansi.Cut(bg, rightStart, bgWidth)
		}
		result[row] = leftPart + "\033[0m" + line + "\033[0m" + rightPart
	}
	return strings.Join(result, "\n")
}
