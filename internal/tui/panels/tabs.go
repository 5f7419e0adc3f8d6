package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/tui/components"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// tabContent is the body shown for each known tab panel.
var tabContent = map[string]string{
	"tab1": "Content of the first tab.\nTabs keep exactly one panel visible.",
	"tab2": "Content of the second tab.\nEach switch is recorded in the log.",
	"tab3": "Content of the third tab.",
}

// TabsPanel shows the tab buttons and the active tab panel.
type TabsPanel struct {
	ctrl    *widgets.Tabs
	order   []string
	buttons map[string]bool
	panels  map[string]bool
	width   int
	height  int
}

// NewTabsPanel creates an unbound tabs panel.
func NewTabsPanel() *TabsPanel {
	return &TabsPanel{buttons: map[string]bool{}, panels: map[string]bool{}}
}

// SetButtonActive implements widgets.TabsSurface.
func (p *TabsPanel) SetButtonActive(target string, active bool) { p.buttons[target] = active }

// SetPanelActive implements widgets.TabsSurface.
func (p *TabsPanel) SetPanelActive(id string, active bool) { p.panels[id] = active }

func (p *TabsPanel) Title() string    { return "Tabs" }
func (p *TabsPanel) SetSize(w, h int) { p.width, p.height = w, h }
func (p *TabsPanel) Capturing() bool  { return false }
func (p *TabsPanel) Hints() string    { return "h/l or [/]:switch tab  1-9:jump" }

// Bind attaches the tabs controller and records the button order.
func (p *TabsPanel) Bind(a *app.App) {
	p.ctrl = a.Tabs
	p.order = a.Tabs.Buttons()
}

// activeIndex returns the position of the active button, or -1.
func (p *TabsPanel) activeIndex() int {
	for i, target := range p.order {
		if p.buttons[target] {
			return i
		}
	}
	return -1
}

// Update handles key messages for tab switching.
func (p *TabsPanel) Update(msg tea.KeyMsg) tea.Cmd {
	n := len(p.order)
	if p.ctrl == nil || n == 0 {
		return nil
	}
	cur := p.activeIndex()
	next := -1
	switch k := msg.String(); k {
	case "l", "right", "]":
		next = (cur + 1) % n
	case "h", "left", "[":
		if cur < 0 {
			cur = 0
		}
		next = (cur + n - 1) % n
	default:
		if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
			next = int(k[0] - '1')
		}
	}
	if next >= 0 && next < n {
		p.ctrl.Select(p.order[next])
	}
	return nil
}

// View renders the tab bar and the active panel body.
func (p *TabsPanel) View() string {
	labels := make([]string, len(p.order))
	for i, target := range p.order {
		labels[i] = tabLabel(target)
	}
	bar := components.NewTabBar(labels).SetActive(p.activeIndex()).SetWidth(p.width)

	content := dimStyle.Render("(no panel for this tab)")
	for id, active := range p.panels {
		if active {
			body, ok := tabContent[id]
			if !ok {
				body = "Content of " + id + "."
			}
			content = body
		}
	}
	body := lipgloss.JoinVertical(lipgloss.Left, bar.View(), strings.Repeat("─", min(p.width, 40)), content)
	return frame("Tabs", body, p.width, p.height)
}

// tabLabel turns a target like "tab2" into "Tab 2".
func tabLabel(target string) string {
	if n, ok := strings.CutPrefix(target, "tab"); ok && n != "" {
		return "Tab " + n
	}
	return target
}
