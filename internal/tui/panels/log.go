package panels

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/interaction"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/tui/components"
)

// ExportRequestMsg asks the root model to export the interaction log.
type ExportRequestMsg struct{}

// ClearRequestMsg asks the root model to clear the interaction log.
type ClearRequestMsg struct{}

// LogPanel is the interaction log shown below the active widget. It is the
// surface of the interaction log.
type LogPanel struct {
	view   components.LogView
	width  int
	height int
}

var _ interaction.Surface = (*LogPanel)(nil)

// NewLogPanel creates a log panel whose lines are styled by render.
func NewLogPanel(w, h int, render components.Renderer) *LogPanel {
	return &LogPanel{
		view:   components.NewLogView(w, h, render),
		width:  w,
		height: h,
	}
}

// AppendLine implements interaction.Surface.
func (p *LogPanel) AppendLine(line string) { p.view = p.view.AppendLine(line) }

// Reset implements interaction.Surface.
func (p *LogPanel) Reset(placeholder string) { p.view = p.view.Reset(placeholder) }

// Lines returns the raw lines currently shown.
func (p *LogPanel) Lines() []string { return p.view.Lines() }

// Following reports whether the log auto-scrolls to new lines.
func (p *LogPanel) Following() bool { return p.view.Following() }

// ScrollOffset reports how many lines the view is scrolled above the bottom.
func (p *LogPanel) ScrollOffset() int { return p.view.ScrollOffset() }

// Hints returns the footer hints for the log panel.
func (p *LogPanel) Hints() string { return "f:follow  j/k:scroll  e:export  c:clear" }

// SetSize resizes the log panel.
func (p *LogPanel) SetSize(w, h int) {
	p.width, p.height = w, h
	p.view = p.view.SetSize(w, h)
}

// Update handles key and mouse messages for the log panel.
func (p *LogPanel) Update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "f":
			p.view = p.view.ToggleFollow()
			return nil
		case "e":
			return func() tea.Msg { return ExportRequestMsg{} }
		case "c":
			return func() tea.Msg { return ClearRequestMsg{} }
		}
	}
	var cmd tea.Cmd
	p.view, cmd = p.view.Update(msg)
	return cmd
}

// View renders the log.
func (p *LogPanel) View() string {
	return p.view.View()
}
