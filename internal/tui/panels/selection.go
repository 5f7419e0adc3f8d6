package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// SelectionPanel shows a checkbox group, a radio group and the derived status.
type SelectionPanel struct {
	ctrl   *widgets.Selection
	status string
	cursor int
	width  int
	height int
}

// NewSelectionPanel creates an unbound selection panel.
func NewSelectionPanel() *SelectionPanel {
	return &SelectionPanel{status: "Status: Nothing selected"}
}

// ShowStatus implements widgets.SelectionSurface.
func (p *SelectionPanel) ShowStatus(text string) { p.status = text }

func (p *SelectionPanel) Title() string    { return "Selection" }
func (p *SelectionPanel) Bind(a *app.App)  { p.ctrl = a.Selection }
func (p *SelectionPanel) SetSize(w, h int) { p.width, p.height = w, h }
func (p *SelectionPanel) Capturing() bool  { return false }
func (p *SelectionPanel) Hints() string    { return "j/k:move  space/enter:toggle" }

// rows returns the number of selectable rows: checkboxes then radios.
func (p *SelectionPanel) rows() int {
	if p.ctrl == nil {
		return 0
	}
	return len(p.ctrl.Options()) + len(p.ctrl.RadioValues())
}

// Update handles key messages for the selection groups.
func (p *SelectionPanel) Update(msg tea.KeyMsg) tea.Cmd {
	n := p.rows()
	if n == 0 {
		return nil
	}
	switch msg.String() {
	case "j", "down":
		p.cursor = (p.cursor + 1) % n
	case "k", "up":
		p.cursor = (p.cursor + n - 1) % n
	case " ", "enter":
		opts := p.ctrl.Options()
		if p.cursor < len(opts) {
			p.ctrl.ToggleOption(opts[p.cursor].ID)
		} else {
			p.ctrl.SelectRadio(p.ctrl.RadioValues()[p.cursor-len(opts)])
		}
	}
	return nil
}

// View renders both groups and the status line.
func (p *SelectionPanel) View() string {
	var b strings.Builder
	row := 0
	if p.ctrl != nil {
		b.WriteString(dimStyle.Render("Checkboxes") + "\n")
		for _, o := range p.ctrl.Options() {
			box := "[ ]"
			if o.Checked {
				box = "[x]"
			}
			b.WriteString(pointer(row == p.cursor) + box + " " + o.ID + "\n")
			row++
		}
		b.WriteString(dimStyle.Render("Radio group") + "\n")
		for _, v := range p.ctrl.RadioValues() {
			dot := "( )"
			if v == p.ctrl.Radio() {
				dot = "(•)"
			}
			b.WriteString(pointer(row == p.cursor) + dot + " " + v + "\n")
			row++
		}
		b.WriteString("\n")
	}
	b.WriteString(p.status)
	return frame("Checkboxes & radios", b.String(), p.width, p.height)
}
