package panels

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// swatches maps palette names to terminal colors.
var swatches = map[string]lipgloss.Color{
	"red":   lipgloss.Color("#FF6B6B"),
	"blue":  lipgloss.Color("#5B9BD5"),
	"green": lipgloss.Color("#6BCB77"),
	"gray":  lipgloss.Color("#888888"),
}

// ColorPanel shows the palette buttons and the colored box.
type ColorPanel struct {
	ctrl    *widgets.ColorPicker
	applied []string
	cursor  int
	width   int
	height  int
}

// NewColorPanel creates an unbound color panel.
func NewColorPanel() *ColorPanel {
	return &ColorPanel{}
}

// ClearColors implements widgets.ColorSurface.
func (p *ColorPanel) ClearColors() { p.applied = nil }

// ApplyColor implements widgets.ColorSurface.
func (p *ColorPanel) ApplyColor(name string) { p.applied = append(p.applied, name) }

// Applied returns the color classes currently on the box.
func (p *ColorPanel) Applied() []string { return append([]string(nil), p.applied...) }

func (p *ColorPanel) Title() string    { return "Color" }
func (p *ColorPanel) Bind(a *app.App)  { p.ctrl = a.Color }
func (p *ColorPanel) SetSize(w, h int) { p.width, p.height = w, h }
func (p *ColorPanel) Capturing() bool  { return false }
func (p *ColorPanel) Hints() string    { return "h/l:move  enter:apply  1-4:pick" }

// Update handles key messages for the palette.
func (p *ColorPanel) Update(msg tea.KeyMsg) tea.Cmd {
	if p.ctrl == nil {
		return nil
	}
	n := len(widgets.Palette)
	switch k := msg.String(); k {
	case "l", "right":
		p.cursor = (p.cursor + 1) % n
	case "h", "left":
		p.cursor = (p.cursor + n - 1) % n
	case "enter", " ":
		p.ctrl.Choose(widgets.Palette[p.cursor])
	default:
		if i, err := strconv.Atoi(k); err == nil && i >= 1 && i <= n {
			p.cursor = i - 1
			p.ctrl.Choose(widgets.Palette[p.cursor])
		}
	}
	return nil
}

// View renders the palette and the box in its current color.
func (p *ColorPanel) View() string {
	btns := make([]string, len(widgets.Palette))
	for i, name := range widgets.Palette {
		btns[i] = button(name, i == p.cursor)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, btns...)

	box := lipgloss.NewStyle().Width(24).Height(3).Align(lipgloss.Center, lipgloss.Center)
	label := "no color"
	if len(p.applied) > 0 {
		label = strings.Join(p.applied, " ")
		if c, ok := swatches[p.applied[len(p.applied)-1]]; ok {
			box = box.Background(c).Foreground(lipgloss.Color("#FFFFFF"))
		}
	} else {
		box = box.Border(lipgloss.NormalBorder()).BorderForeground(dimColor)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, row, "", box.Render(label))
	return frame("Color picker", body, p.width, p.height)
}
