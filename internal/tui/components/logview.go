package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Renderer styles one raw log line for a given content width.
type Renderer func(line string, width int) string

// LogView is a scrollable log panel that wraps bubbles/viewport.
// It keeps the raw lines and re-renders them when the width changes.
// In follow mode (default), new lines cause the view to auto-scroll to the bottom.
type LogView struct {
	vp     viewport.Model
	raw    []string
	render Renderer
	follow bool
	width  int
	height int
}

// NewLogView creates a LogView with the given dimensions, initially in follow
// mode. A nil render shows lines unstyled.
func NewLogView(w, h int, render Renderer) LogView {
	if render == nil {
		render = func(line string, _ int) string { return line }
	}
	return LogView{
		vp:     viewport.New(w, h),
		render: render,
		follow: true,
		width:  w,
		height: h,
	}
}

// AppendLine appends a raw line to the log.
// If follow mode is enabled, the viewport scrolls to the bottom.
func (v LogView) AppendLine(line string) LogView {
	v.raw = append(v.raw, line)
	return v.refresh()
}

// Reset replaces every line with the given ones.
func (v LogView) Reset(lines ...string) LogView {
	v.raw = append([]string(nil), lines...)
	return v.refresh()
}

// Lines returns a copy of the raw lines.
func (v LogView) Lines() []string {
	return append([]string(nil), v.raw...)
}

// Len reports the number of lines.
func (v LogView) Len() int {
	return len(v.raw)
}

// ToggleFollow switches follow mode on or off.
// When turned on, scrolls immediately to the bottom.
func (v LogView) ToggleFollow() LogView {
	v.follow = !v.follow
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}

// SetSize resizes the log view and re-renders for the new width.
func (v LogView) SetSize(w, h int) LogView {
	v.width = w
	v.height = h
	v.vp.Width = w
	v.vp.Height = h
	return v.refresh()
}

// Following reports whether follow mode is currently active.
func (v LogView) Following() bool {
	return v.follow
}

// ScrollOffset reports how many lines the view is scrolled above the bottom.
func (v LogView) ScrollOffset() int {
	below := v.vp.TotalLineCount() - v.vp.YOffset - v.vp.Height
	if below < 0 {
		return 0
	}
	return below
}

// Update handles bubbletea messages (scroll keys, mouse events).
func (v LogView) Update(msg tea.Msg) (LogView, tea.Cmd) {
	var cmd tea.Cmd
	v.vp, cmd = v.vp.Update(msg)
	if v.follow && !v.vp.AtBottom() {
		// Only disable follow on explicit scroll messages, not on resize.
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			v.follow = false
		}
	}
	return v, cmd
}

// View renders the log view content.
func (v LogView) View() string {
	return v.vp.View()
}

func (v LogView) refresh() LogView {
	rendered := make([]string, len(v.raw))
	for i, line := range v.raw {
		rendered[i] = v.render(line, v.width)
	}
	v.vp.SetContent(strings.Join(rendered, "\n"))
	if v.follow {
		v.vp.GotoBottom()
	}
	return v
}
