package widgets

import "strings"

// SelectionSurface displays the derived selection summary.
type SelectionSurface interface {
	ShowStatus(text string)
}

// OptionState is one checkbox and whether it is checked.
type OptionState struct {
	ID      string
	Checked bool
}

// Selection tracks a set of checkboxes and one radio group.
type Selection struct {
	options []OptionState
	radios  []string
	radio   string
	surface SelectionSurface
	log     Recorder
}

// NewSelection creates a selection widget. optionIDs and radioValues are in
// document order; nothing starts checked.
func NewSelection(surface SelectionSurface, log Recorder, optionIDs, radioValues []string) *Selection {
	s := &Selection{surface: surface, log: log}
	for _, id := range optionIDs {
		s.options = append(s.options, OptionState{ID: id})
	}
	s.radios = append(s.radios, radioValues...)
	return s
}

// Options returns the checkbox states in document order.
func (s *Selection) Options() []OptionState {
	out := make([]OptionState, len(s.options))
	copy(out, s.options)
	return out
}

// RadioValues returns the radio group values in document order.
func (s *Selection) RadioValues() []string {
	out := make([]string, len(s.radios))
	copy(out, s.radios)
	return out
}

// Radio returns the selected radio value, or "" if none.
func (s *Selection) Radio() string { return s.radio }

// SetOption changes one checkbox. Unknown ids and non-changes are ignored.
func (s *Selection) SetOption(id string, checked bool) {
	if s.surface == nil {
		return
	}
	for i := range s.options {
		if s.options[i].ID != id {
			continue
		}
		if s.options[i].Checked == checked {
			return
		}
		s.options[i].Checked = checked
		state := "disabled"
		if checked {
			state = "enabled"
		}
		s.log.Append("Checkbox "+id, state)
		s.surface.ShowStatus(s.Summary())
		return
	}
}

// ToggleOption flips one checkbox.
func (s *Selection) ToggleOption(id string) {
	for _, o := range s.options {
		if o.ID == id {
			s.SetOption(id, !o.Checked)
			return
		}
	}
}

// SelectRadio selects a radio value. Selecting the current value, or a value
// outside the group, fires no change.
func (s *Selection) SelectRadio(value string) {
	if s.surface == nil || value == s.radio || !contains(s.radios, value) {
		return
	}
	s.radio = value
	s.log.Append("Radio button", "selected value: "+value)
	s.surface.ShowStatus(s.Summary())
}

// Summary renders the status line for the current selection.
func (s *Selection) Summary() string {
	var checked []string
	for _, o := range s.options {
		if o.Checked {
			checked = append(checked, o.ID)
		}
	}
	if len(checked) == 0 && s.radio == "" {
		return "Status: Nothing selected"
	}
	status := "Selected: "
	if len(checked) > 0 {
		status += "Options: " + strings.Join(checked, ", ")
	}
	if s.radio != "" {
		if len(checked) > 0 {
			status += ", "
		}
		status += "Radio: " + s.radio
	}
	return "Status: " + status
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
