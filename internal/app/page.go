package app

import "github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"

// Page is the fixed element structure the controllers bind to.
type Page struct {
	OptionIDs   []string
	RadioValues []string
	DragItems   []widgets.DragItem
	ListSeed    []string
	TabButtons  []string
	TabPanels   []string
}

// DefaultPage returns the stock demo page.
func DefaultPage() Page {
	return Page{
		OptionIDs:   []string{"option1", "option2", "option3"},
		RadioValues: []string{"radio1", "radio2", "radio3"},
		DragItems: []widgets.DragItem{
			{ID: "item1", Text: "📦 Item 1"},
			{ID: "item2", Text: "📦 Item 2"},
			{ID: "item3", Text: "📦 Item 3"},
		},
		ListSeed:   []string{"Sample item"},
		TabButtons: []string{"tab1", "tab2", "tab3"},
		TabPanels:  []string{"tab1", "tab2", "tab3"},
	}
}
