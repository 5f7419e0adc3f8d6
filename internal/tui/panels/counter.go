package panels

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// CounterPanel shows the click counter.
type CounterPanel struct {
	ctrl   *widgets.Counter
	count  int
	width  int
	height int
}

// NewCounterPanel creates an unbound counter panel.
func NewCounterPanel() *CounterPanel {
	return &CounterPanel{}
}

// ShowCount implements widgets.CounterSurface.
func (p *CounterPanel) ShowCount(n int) { p.count = n }

func (p *CounterPanel) Title() string    { return "Counter" }
func (p *CounterPanel) Bind(a *app.App)  { p.ctrl = a.Counter }
func (p *CounterPanel) SetSize(w, h int) { p.width, p.height = w, h }
func (p *CounterPanel) Capturing() bool  { return false }
func (p *CounterPanel) Hints() string    { return "enter/space:click  r:reset" }

// Update handles key messages for the counter.
func (p *CounterPanel) Update(msg tea.KeyMsg) tea.Cmd {
	if p.ctrl == nil {
		return nil
	}
	switch msg.String() {
	case "enter", " ", "+":
		p.ctrl.Increment()
	case "r", "0":
		p.ctrl.Reset()
	}
	return nil
}

// View renders the counter value and its buttons.
func (p *CounterPanel) View() string {
	value := titleStyle.Render(fmt.Sprintf("%d", p.count))
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, button("Click me", true), " ", button("Reset", false))
	body := lipgloss.JoinVertical(lipgloss.Left, "Counter value: "+value, "", buttons)
	return frame("Click counter", body, p.width, p.height)
}
