package tui

import "github.com/charmbracelet/bubbles/key"

// GlobalKeys are handled by the root model before dispatching to the
// focused panel.
type GlobalKeys struct {
	ForceQuit key.Binding
	Quit      key.Binding
	NextPanel key.Binding
	PrevPanel key.Binding
	Export    key.Binding
	Clear     key.Binding
}

var globalKeys = GlobalKeys{
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	NextPanel: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next panel"),
	),
	PrevPanel: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "prev panel"),
	),
	Export: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "export"),
	),
	Clear: key.NewBinding(
		key.WithKeys("ctrl+l"),
		key.WithHelp("ctrl+l", "clear log"),
	),
}

// IsGlobalKey reports whether the key k is handled by the root model. The plain
// "q" only counts when no text input is capturing keystrokes.
func IsGlobalKey(k string, capturing bool) bool {
	for _, b := range []key.Binding{globalKeys.ForceQuit, globalKeys.NextPanel, globalKeys.PrevPanel, globalKeys.Export, globalKeys.Clear} {
		for _, bk := range b.Keys() {
			if bk == k {
				return true
			}
		}
	}
	if capturing {
		return false
	}
	for _, bk := range globalKeys.Quit.Keys() {
		if bk == k {
			return true
		}
	}
	return false
}

// GlobalHelp renders the always-available bindings as footer hints.
func GlobalHelp() string {
	var out string
	for i, b := range []key.Binding{globalKeys.NextPanel, globalKeys.Export, globalKeys.Clear, globalKeys.Quit} {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + ":" + h.Desc
	}
	return out
}
