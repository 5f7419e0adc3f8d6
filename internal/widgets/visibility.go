package widgets

// VisibilitySurface is the hideable message and its toggle button.
type VisibilitySurface interface {
	Hidden() bool
	SetHidden(hidden bool)
	SetToggleLabel(label string)
}

// Toggle button labels, naming the action the next press takes.
const (
	LabelShowSecret = "Show Secret Message"
	LabelHideSecret = "Hide Secret Message"
)

// Visibility flips a message between shown and hidden. The current state is
// read from the surface, not tracked here.
type Visibility struct {
	surface VisibilitySurface
	log     Recorder
}

// NewVisibility creates a visibility toggle.
func NewVisibility(surface VisibilitySurface, log Recorder) *Visibility {
	return &Visibility{surface: surface, log: log}
}

// Toggle shows a hidden message or hides a shown one.
func (v *Visibility) Toggle() {
	if v.surface == nil {
		return
	}
	wasHidden := v.surface.Hidden()
	v.surface.SetHidden(!wasHidden)
	if wasHidden {
		v.surface.SetToggleLabel(LabelHideSecret)
		v.log.Append("Visibility toggle", "shown")
		return
	}
	v.surface.SetToggleLabel(LabelShowSecret)
	v.log.Append("Visibility toggle", "hidden")
}
