package widgets

// ModalSurface shows or hides the dialog and raises blocking acknowledgements.
type ModalSurface interface {
	SetOpen(open bool)
	Acknowledge(message string)
}

// ActionMessage is the acknowledgement raised by the in-dialog action.
const ActionMessage = "Action performed!"

// Modal is a dialog with CLOSED and OPEN states.
type Modal struct {
	open    bool
	surface ModalSurface
	log     Recorder
}

// NewModal creates a closed modal.
func NewModal(surface ModalSurface, log Recorder) *Modal {
	return &Modal{surface: surface, log: log}
}

// IsOpen reports whether the dialog is shown.
func (m *Modal) IsOpen() bool { return m.open }

// Open shows the dialog.
func (m *Modal) Open() {
	if m.surface == nil {
		return
	}
	m.open = true
	m.surface.SetOpen(true)
	m.log.Append("Modal window opened", "")
}

// Close hides the dialog. It backs both close affordances.
func (m *Modal) Close() {
	if m.surface == nil {
		return
	}
	m.open = false
	m.surface.SetOpen(false)
	m.log.Append("Modal window closed", "")
}

// Click handles a pointer click while the dialog is shown. Only a click that
// lands on the background overlay itself closes it.
func (m *Modal) Click(onOverlay bool) {
	if !m.open || !onOverlay {
		return
	}
	m.Close()
}

// Action records the in-dialog action and asks for an acknowledgement.
func (m *Modal) Action() {
	if m.surface == nil {
		return
	}
	m.log.Append("Modal action performed", "")
	m.surface.Acknowledge(ActionMessage)
}
