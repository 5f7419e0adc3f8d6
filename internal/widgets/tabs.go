package widgets

// TabsSurface marks tab buttons and panels active or inactive.
type TabsSurface interface {
	SetButtonActive(target string, active bool)
	SetPanelActive(id string, active bool)
}

// Tabs keeps exactly one tab button active. Buttons name a target panel id;
// a target without a panel activates the button alone.
type Tabs struct {
	buttons []string
	panels  []string
	active  string
	surface TabsSurface
	log     Recorder
}

// NewTabs creates a tab set with the first button and its panel active.
func NewTabs(surface TabsSurface, log Recorder, buttons, panels []string) *Tabs {
	t := &Tabs{
		buttons: append([]string(nil), buttons...),
		panels:  append([]string(nil), panels...),
		surface: surface,
		log:     log,
	}
	if surface != nil && len(t.buttons) > 0 {
		t.activate(t.buttons[0])
	}
	return t
}

// Buttons returns the button targets in order.
func (t *Tabs) Buttons() []string { return append([]string(nil), t.buttons...) }

// Active returns the target of the active button.
func (t *Tabs) Active() string { return t.active }

// ActivePanel returns the id of the active panel, or "" if none matched.
func (t *Tabs) ActivePanel() string {
	if contains(t.panels, t.active) {
		return t.active
	}
	return ""
}

// Select activates the button for target and the panel with that id.
func (t *Tabs) Select(target string) {
	if t.surface == nil || !contains(t.buttons, target) {
		return
	}
	t.activate(target)
	t.log.Append("Tab switched", target)
}

func (t *Tabs) activate(target string) {
	for _, b := range t.buttons {
		t.surface.SetButtonActive(b, false)
	}
	for _, p := range t.panels {
		t.surface.SetPanelActive(p, false)
	}
	t.active = target
	t.surface.SetButtonActive(target, true)
	if contains(t.panels, target) {
		t.surface.SetPanelActive(target, true)
	}
}
