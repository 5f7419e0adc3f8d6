package panels

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// slideStep is how far one slider key press moves the value.
const slideStep = 5

// ProgressPanel shows the slider and the progress bar that mirrors it.
type ProgressPanel struct {
	ctrl   *widgets.Progress
	value  int
	bar    progress.Model
	width  int
	height int
}

// NewProgressPanel creates an unbound progress panel.
func NewProgressPanel() *ProgressPanel {
	return &ProgressPanel{
		bar: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
}

// ShowProgress implements widgets.ProgressSurface.
func (p *ProgressPanel) ShowProgress(v int) { p.value = v }

// Value returns the displayed value.
func (p *ProgressPanel) Value() int { return p.value }

func (p *ProgressPanel) Title() string   { return "Progress" }
func (p *ProgressPanel) Bind(a *app.App) { p.ctrl = a.Progress }
func (p *ProgressPanel) Capturing() bool { return false }
func (p *ProgressPanel) Hints() string {
	return "h/l:slide  H/L:min/max  s:start  x:stop"
}

// SetSize resizes the bar to the panel width.
func (p *ProgressPanel) SetSize(w, h int) {
	p.width, p.height = w, h
	if w > 10 {
		p.bar.Width = w - 10
	}
}

// Update handles key messages for the slider and automatic advance.
func (p *ProgressPanel) Update(msg tea.KeyMsg) tea.Cmd {
	if p.ctrl == nil {
		return nil
	}
	switch msg.String() {
	case "h", "left":
		p.slide(p.value - slideStep)
	case "l", "right":
		p.slide(p.value + slideStep)
	case "H", "home":
		p.slide(widgets.ProgressMin)
	case "L", "end":
		p.slide(widgets.ProgressMax)
	case "s":
		p.ctrl.Start()
	case "x":
		p.ctrl.Stop()
	}
	return nil
}

// slide moves the slider to v. A move that leaves the value unchanged is
// not an input.
func (p *ProgressPanel) slide(v int) {
	v = max(widgets.ProgressMin, min(widgets.ProgressMax, v))
	if v == p.value {
		return
	}
	p.ctrl.Slide(v)
}

// View renders the slider track, the bar and the automatic state.
func (p *ProgressPanel) View() string {
	trackW := p.bar.Width
	if trackW < 10 {
		trackW = 10
	}
	knob := p.value * (trackW - 1) / widgets.ProgressMax
	track := strings.Repeat("─", knob) + cursorStyle.Render("●") + strings.Repeat("─", trackW-1-knob)

	state := dimStyle.Render("auto: stopped")
	if p.ctrl != nil && p.ctrl.Running() {
		state = successStyle.Render("auto: running")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		"Slider    "+track,
		"Progress  "+p.bar.ViewAs(float64(p.value)/widgets.ProgressMax),
		"",
		fmt.Sprintf("%d%%  ", p.value)+state,
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, button("Start", true), " ", button("Stop", false)),
	)
	return frame("Slider & progress", body, p.width, p.height)
}
