package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

var (
	dropZoneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(dimColor).
			Padding(0, 1).
			Width(24)

	dropZoneArmedStyle = dropZoneStyle.
			BorderForeground(accentColor).
			Border(lipgloss.ThickBorder())
)

// DragDropPanel shows the draggable sources and the drop target. The
// keyboard stands in for the pointer: space picks an item up, → moves it
// over the target, ← leaves, enter drops and esc cancels.
type DragDropPanel struct {
	ctrl    *widgets.DragDrop
	armed   bool
	dropped []widgets.DragItem
	cursor  int
	width   int
	height  int
}

// NewDragDropPanel creates an unbound drag-and-drop panel.
func NewDragDropPanel() *DragDropPanel {
	return &DragDropPanel{}
}

// SetArmed implements widgets.DragDropSurface.
func (p *DragDropPanel) SetArmed(armed bool) { p.armed = armed }

// AppendDropped implements widgets.DragDropSurface.
func (p *DragDropPanel) AppendDropped(item widgets.DragItem) { p.dropped = append(p.dropped, item) }

// ClearDropped implements widgets.DragDropSurface.
func (p *DragDropPanel) ClearDropped() { p.dropped = nil }

func (p *DragDropPanel) Title() string    { return "Drag & Drop" }
func (p *DragDropPanel) Bind(a *app.App)  { p.ctrl = a.DragDrop }
func (p *DragDropPanel) SetSize(w, h int) { p.width, p.height = w, h }
func (p *DragDropPanel) Capturing() bool  { return false }
func (p *DragDropPanel) Hints() string {
	return "j/k:item  space:pick up  →:over  ←:leave  enter:drop  esc:cancel  r:reset"
}

// Update handles key messages for the drag gesture.
func (p *DragDropPanel) Update(msg tea.KeyMsg) tea.Cmd {
	if p.ctrl == nil {
		return nil
	}
	sources := p.ctrl.Sources()
	switch msg.String() {
	case "j", "down":
		if len(sources) > 0 {
			p.cursor = (p.cursor + 1) % len(sources)
		}
	case "k", "up":
		if len(sources) > 0 {
			p.cursor = (p.cursor + len(sources) - 1) % len(sources)
		}
	case " ":
		if p.cursor < len(sources) {
			p.ctrl.DragStart(sources[p.cursor].ID)
		}
	case "l", "right":
		if _, dragging := p.ctrl.Dragging(); dragging {
			p.ctrl.DragOver()
		}
	case "h", "left":
		p.ctrl.DragLeave()
	case "enter":
		p.ctrl.Drop()
	case "esc":
		p.ctrl.DragLeave()
		p.ctrl.DragEnd()
	case "r":
		p.ctrl.Reset()
	}
	return nil
}

// View renders the sources beside the drop target.
func (p *DragDropPanel) View() string {
	var src strings.Builder
	src.WriteString(dimStyle.Render("Items") + "\n")
	if p.ctrl != nil {
		carrying, _ := p.ctrl.Dragging()
		for i, item := range p.ctrl.Sources() {
			line := pointer(i == p.cursor) + item.Text
			if item.ID == carrying {
				line += " ✋"
			}
			src.WriteString(line + "\n")
		}
	}

	var target []string
	if len(p.dropped) == 0 {
		target = append(target, dimStyle.Render("Drop items here"))
	}
	for _, item := range p.dropped {
		target = append(target, item.Text)
	}
	zone := dropZoneStyle
	if p.armed {
		zone = dropZoneArmedStyle
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, src.String(), "   ", zone.Render(strings.Join(target, "\n")))
	return frame("Drag and drop", body, p.width, p.height)
}
