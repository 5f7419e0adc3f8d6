package panels

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// ModalPanel owns the modal dialog and its acknowledgement alert. The root
// model draws both as overlays and routes input to them while shown.
type ModalPanel struct {
	ctrl   *widgets.Modal
	open   bool
	alert  string
	width  int
	height int
}

// NewModalPanel creates an unbound modal panel.
func NewModalPanel() *ModalPanel {
	return &ModalPanel{}
}

// SetOpen implements widgets.ModalSurface.
func (p *ModalPanel) SetOpen(open bool) { p.open = open }

// Acknowledge implements widgets.ModalSurface.
func (p *ModalPanel) Acknowledge(message string) { p.alert = message }

// IsOpen reports whether the dialog is shown.
func (p *ModalPanel) IsOpen() bool { return p.open }

// Alert returns the pending acknowledgement, or "".
func (p *ModalPanel) Alert() string { return p.alert }

func (p *ModalPanel) Title() string    { return "Modal" }
func (p *ModalPanel) Bind(a *app.App)  { p.ctrl = a.Modal }
func (p *ModalPanel) SetSize(w, h int) { p.width, p.height = w, h }
func (p *ModalPanel) Capturing() bool  { return false }
func (p *ModalPanel) Hints() string    { return "enter:open modal" }

// Update opens the dialog from the section.
func (p *ModalPanel) Update(msg tea.KeyMsg) tea.Cmd {
	if p.ctrl == nil {
		return nil
	}
	switch msg.String() {
	case "enter", " ", "o":
		p.ctrl.Open()
	}
	return nil
}

// HandleDialogKey handles input while the dialog or alert is shown. An alert
// is dismissed by any key before the dialog sees input again.
func (p *ModalPanel) HandleDialogKey(msg tea.KeyMsg) {
	if p.alert != "" {
		p.alert = ""
		return
	}
	if p.ctrl == nil || !p.open {
		return
	}
	switch msg.String() {
	case "esc", "x", "c":
		p.ctrl.Close()
	case "enter", "a":
		p.ctrl.Action()
	}
}

// Click forwards a mouse press while the dialog is shown. onOverlay is true
// when the press landed outside the dialog box.
func (p *ModalPanel) Click(onOverlay bool) {
	if p.alert != "" {
		p.alert = ""
		return
	}
	if p.ctrl != nil {
		p.ctrl.Click(onOverlay)
	}
}

// DialogView renders the dialog body without its frame.
func (p *ModalPanel) DialogView() string {
	buttons := lipgloss.JoinHorizontal(lipgloss.Center, button("Perform action (a)", true), " ", button("Close (esc)", false))
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Modal window")+"   "+dimStyle.Render("× (x)"),
		"",
		"This is a modal dialog. Click outside it to close.",
		"",
		buttons,
	)
}

// AlertView renders the acknowledgement body without its frame.
func (p *ModalPanel) AlertView() string {
	return lipgloss.JoinVertical(lipgloss.Center, p.alert, "", button("OK", true))
}

// View renders the section: the dialog state and the open button.
func (p *ModalPanel) View() string {
	state := dimStyle.Render("Dialog is closed")
	if p.open {
		state = successStyle.Render("Dialog is open")
	}
	body := lipgloss.JoinVertical(lipgloss.Left, button("Open Modal", true), "", state)
	return frame("Modal window", body, p.width, p.height)
}
