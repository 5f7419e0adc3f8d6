package panels

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

var formFields = []struct {
	name, label, placeholder string
}{
	{widgets.FieldName, "Name", "at least 2 characters"},
	{widgets.FieldEmail, "Email", "you@example.com"},
	{widgets.FieldAge, "Age", "1-120"},
}

// FormPanel shows the three-field form and its result area.
type FormPanel struct {
	ctrl    *widgets.Form
	inputs  []textinput.Model
	focused int
	errors  []string
	success string
	width   int
	height  int
}

// NewFormPanel creates an unbound form panel with the first field focused.
func NewFormPanel() *FormPanel {
	p := &FormPanel{}
	for _, f := range formFields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.CharLimit = 128
		ti.Width = 32
		p.inputs = append(p.inputs, ti)
	}
	p.inputs[0].Focus()
	return p
}

// ShowErrors implements widgets.FormSurface.
func (p *FormPanel) ShowErrors(messages []string) {
	p.errors = append([]string(nil), messages...)
	p.success = ""
}

// ShowSuccess implements widgets.FormSurface.
func (p *FormPanel) ShowSuccess(data string) {
	p.success = data
	p.errors = nil
}

// ClearResult implements widgets.FormSurface.
func (p *FormPanel) ClearResult() {
	p.errors = nil
	p.success = ""
}

func (p *FormPanel) Title() string   { return "Form" }
func (p *FormPanel) Bind(a *app.App) { p.ctrl = a.Form }
func (p *FormPanel) Capturing() bool { return true }
func (p *FormPanel) Hints() string   { return "↑/↓:field  enter:submit  ctrl+r:reset" }

// SetSize resizes the inputs to the panel width.
func (p *FormPanel) SetSize(w, h int) {
	p.width, p.height = w, h
	for i := range p.inputs {
		if w > 12 {
			p.inputs[i].Width = w - 12
		}
	}
}

// Data returns the current field values in form order.
func (p *FormPanel) Data() widgets.FormData {
	d := make(widgets.FormData, len(formFields))
	for i, f := range formFields {
		d[i] = widgets.Field{Name: f.name, Value: p.inputs[i].Value()}
	}
	return d
}

// SetValue fills the named field.
func (p *FormPanel) SetValue(name, value string) {
	for i, f := range formFields {
		if f.name == name {
			p.inputs[i].SetValue(value)
		}
	}
}

// Update handles key messages for the form.
func (p *FormPanel) Update(msg tea.KeyMsg) tea.Cmd {
	if p.ctrl == nil {
		return nil
	}
	switch msg.String() {
	case "down":
		return p.focus(p.focused + 1)
	case "up":
		return p.focus(p.focused - 1)
	case "enter":
		p.ctrl.Submit(p.Data())
		return nil
	case "ctrl+r":
		for i := range p.inputs {
			p.inputs[i].Reset()
		}
		p.ctrl.Reset()
		return p.focus(0)
	}
	var cmd tea.Cmd
	p.inputs[p.focused], cmd = p.inputs[p.focused].Update(msg)
	return cmd
}

func (p *FormPanel) focus(i int) tea.Cmd {
	n := len(p.inputs)
	i = (i + n) % n
	p.inputs[p.focused].Blur()
	p.focused = i
	return p.inputs[i].Focus()
}

// View renders the fields followed by the validation result.
func (p *FormPanel) View() string {
	var rows []string
	for i, f := range formFields {
		label := lipgloss.NewStyle().Width(7).Render(f.label + ":")
		rows = append(rows, pointer(i == p.focused)+label+" "+p.inputs[i].View())
	}
	rows = append(rows, "", button("Submit", true))

	switch {
	case len(p.errors) > 0:
		rows = append(rows, "")
		for _, e := range p.errors {
			rows = append(rows, errorStyle.Render("• "+e))
		}
	case p.success != "":
		rows = append(rows, "", successStyle.Render("Form submitted successfully!"))
		rows = append(rows, strings.Split(p.success, "\n")...)
	}
	return frame("Form validation", lipgloss.JoinVertical(lipgloss.Left, rows...), p.width, p.height)
}
