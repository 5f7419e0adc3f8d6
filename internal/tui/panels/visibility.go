package panels

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// SecretMessage is the text revealed by the visibility toggle.
const SecretMessage = "🎉 This is a secret message!"

// VisibilityPanel shows a button that reveals or hides a secret message.
type VisibilityPanel struct {
	ctrl   *widgets.Visibility
	hidden bool
	label  string
	width  int
	height int
}

// NewVisibilityPanel creates an unbound panel with the message hidden.
func NewVisibilityPanel() *VisibilityPanel {
	return &VisibilityPanel{hidden: true, label: widgets.LabelShowSecret}
}

// Hidden implements widgets.VisibilitySurface.
func (p *VisibilityPanel) Hidden() bool { return p.hidden }

// SetHidden implements widgets.VisibilitySurface.
func (p *VisibilityPanel) SetHidden(hidden bool) { p.hidden = hidden }

// SetToggleLabel implements widgets.VisibilitySurface.
func (p *VisibilityPanel) SetToggleLabel(label string) { p.label = label }

func (p *VisibilityPanel) Title() string    { return "Visibility" }
func (p *VisibilityPanel) Bind(a *app.App)  { p.ctrl = a.Visibility }
func (p *VisibilityPanel) SetSize(w, h int) { p.width, p.height = w, h }
func (p *VisibilityPanel) Capturing() bool  { return false }
func (p *VisibilityPanel) Hints() string    { return "enter/space:toggle" }

// Update handles key messages for the toggle.
func (p *VisibilityPanel) Update(msg tea.KeyMsg) tea.Cmd {
	if p.ctrl == nil {
		return nil
	}
	switch msg.String() {
	case "enter", " ":
		p.ctrl.Toggle()
	}
	return nil
}

// View renders the toggle button and, when shown, the message.
func (p *VisibilityPanel) View() string {
	body := button(p.label, true)
	if !p.hidden {
		body = lipgloss.JoinVertical(lipgloss.Left, body, "", successStyle.Render(SecretMessage))
	}
	return frame("Show / hide", body, p.width, p.height)
}
