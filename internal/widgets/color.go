package widgets

// NeutralColor applies no color class.
const NeutralColor = "gray"

// Palette lists the colors offered by the picker.
var Palette = []string{"red", "blue", "green", NeutralColor}

// ColorSurface is the box whose color class is swapped.
type ColorSurface interface {
	ClearColors()
	ApplyColor(name string)
}

// ColorPicker applies a named color to a target box.
type ColorPicker struct {
	surface ColorSurface
	log     Recorder
}

// NewColorPicker creates a color picker.
func NewColorPicker(surface ColorSurface, log Recorder) *ColorPicker {
	return &ColorPicker{surface: surface, log: log}
}

// Choose clears previous colors and applies color, unless it is neutral.
func (p *ColorPicker) Choose(color string) {
	if p.surface == nil {
		return
	}
	p.surface.ClearColors()
	if color != NeutralColor {
		p.surface.ApplyColor(color)
	}
	p.log.Append("Color change", color)
}
