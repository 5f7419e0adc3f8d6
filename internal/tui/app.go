package tui

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/interaction"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/tui/panels"
)

// Options configures the root model.
type Options struct {
	Title       string
	WorkDir     string
	AccentColor string
	App         app.Options
	// Exporter receives snapshots on export. Nil disables export.
	Exporter  interaction.Exporter
	Logger    *slog.Logger
	JournalID string
}

// Model is the root bubbletea model: a section list, the active widget and
// the interaction log. Panels are pointers shared by every copy of Model.
type Model struct {
	app      *app.App
	sched    *Scheduler
	exporter interaction.Exporter
	logger   *slog.Logger

	// Sub-panels
	nav      panels.NavPanel
	sections []panels.Section
	active   int
	modal    *panels.ModalPanel
	logPanel *panels.LogPanel

	// Layout and focus
	layout Layout
	focus  FocusTarget
	theme  Theme
	width  int
	height int

	// Footer status
	status    string
	statusErr bool

	// Identity
	title     string
	workDir   string
	journalID string

	// Time
	startedAt time.Time
	now       time.Time
}

// New creates the root model, binds every widget section to the application
// state and records the ready entry.
func New(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	now := time.Now()
	th := NewTheme(opts.AccentColor)
	layout := Calculate(80, 24)

	logW, logH := innerDims(layout.Log)
	logPanel := panels.NewLogPanel(logW, logH, th.RenderLogLine)

	counter := panels.NewCounterPanel()
	selection := panels.NewSelectionPanel()
	visibility := panels.NewVisibilityPanel()
	color := panels.NewColorPanel()
	form := panels.NewFormPanel()
	modal := panels.NewModalPanel()
	dragdrop := panels.NewDragDropPanel()
	list := panels.NewListPanel()
	progress := panels.NewProgressPanel()
	tabs := panels.NewTabsPanel()

	appOpts := opts.App
	if appOpts.Logger == nil {
		appOpts.Logger = logger
	}
	sched := NewScheduler()
	a := app.Bootstrap(app.Surfaces{
		Log:        logPanel,
		Counter:    counter,
		Selection:  selection,
		Visibility: visibility,
		Color:      color,
		Form:       form,
		Modal:      modal,
		DragDrop:   dragdrop,
		List:       list,
		Progress:   progress,
		Tabs:       tabs,
	}, sched, appOpts)

	sections := []panels.Section{counter, selection, visibility, color, form, modal, dragdrop, list, progress, tabs}
	widgetW, widgetH := innerDims(layout.Widget)
	titles := make([]string, len(sections))
	for i, s := range sections {
		s.Bind(a)
		s.SetSize(widgetW, widgetH)
		titles[i] = s.Title()
	}
	navW, navH := innerDims(layout.Nav)

	return Model{
		app:       a,
		sched:     sched,
		exporter:  opts.Exporter,
		logger:    logger,
		nav:       panels.NewNavPanel(titles, navW, navH),
		sections:  sections,
		modal:     modal,
		logPanel:  logPanel,
		layout:    layout,
		focus:     FocusNav,
		theme:     th,
		width:     80,
		height:    24,
		title:     opts.Title,
		workDir:   opts.WorkDir,
		journalID: opts.JournalID,
		startedAt: now,
		now:       now,
	}
}

// App returns the application state behind the model.
func (m Model) App() *app.App { return m.app }

// Init returns the initial commands: clock ticker plus any task started
// while binding.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.sched.Drain())
}

// tickCmd schedules the next one-second clock tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles all incoming bubbletea messages. Ticks queued by widgets
// during the update are returned alongside the handler's command.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	if pending := m.sched.Drain(); pending != nil {
		return next, tea.Batch(cmd, pending)
	}
	return next, cmd
}

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case stepMsg:
		return m, m.sched.Handle(msg)
	case tickMsg:
		m.now = time.Time(msg)
		return m, tickCmd()
	case panels.SectionSelectedMsg:
		return m.handleSectionSelected(msg)
	case panels.ExportRequestMsg:
		return m.export()
	case panels.ClearRequestMsg:
		return m.clear()
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout = Calculate(msg.Width, msg.Height)
	if !m.layout.TooSmall {
		navW, navH := innerDims(m.layout.Nav)
		widgetW, widgetH := innerDims(m.layout.Widget)
		logW, logH := innerDims(m.layout.Log)
		m.nav = m.nav.SetSize(navW, navH)
		for _, s := range m.sections {
			s.SetSize(widgetW, widgetH)
		}
		m.logPanel.SetSize(logW, logH)
	}
	return m, nil
}

// dialogShown reports whether the modal dialog or its alert owns input.
func (m Model) dialogShown() bool {
	return m.modal.IsOpen() || m.modal.Alert() != ""
}

// capturing reports whether the focused panel consumes printable keys.
func (m Model) capturing() bool {
	return m.focus == FocusWidget && m.current().Capturing()
}

func (m Model) current() panels.Section {
	return m.sections[m.active]
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.dialogShown() {
		if key.Matches(msg, globalKeys.ForceQuit) {
			return m, tea.Quit
		}
		m.modal.HandleDialogKey(msg)
		return m, nil
	}
	if IsGlobalKey(msg.String(), m.capturing()) {
		return m.handleGlobalKey(msg)
	}
	return m.delegateKey(msg)
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, globalKeys.ForceQuit, globalKeys.Quit):
		return m, tea.Quit
	case key.Matches(msg, globalKeys.NextPanel):
		m.focus = m.focus.Next()
	case key.Matches(msg, globalKeys.PrevPanel):
		m.focus = m.focus.Prev()
	case key.Matches(msg, globalKeys.Export):
		return m.export()
	case key.Matches(msg, globalKeys.Clear):
		return m.clear()
	}
	return m, nil
}

func (m Model) delegateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case FocusNav:
		m.nav, cmd = m.nav.Update(msg)
	case FocusWidget:
		cmd = m.current().Update(msg)
	case FocusLog:
		cmd = m.logPanel.Update(msg)
	}
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.layout.TooSmall {
		return m, nil
	}
	leftPress := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if m.dialogShown() {
		if leftPress {
			r := overlayRect(m.dialogBox(), m.width, m.height)
			m.modal.Click(!r.Contains(msg.X, msg.Y))
		}
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if m.layout.Log.Contains(msg.X, msg.Y) {
			return m, m.logPanel.Update(msg)
		}
	case leftPress:
		switch {
		case m.layout.Nav.Contains(msg.X, msg.Y):
			m.focus = FocusNav
			if row := msg.Y - m.layout.Nav.Y - 1; row >= 0 && row < len(m.sections) {
				m.nav = m.nav.Select(row)
				m.active = row
			}
		case m.layout.Widget.Contains(msg.X, msg.Y):
			m.focus = FocusWidget
		case m.layout.Log.Contains(msg.X, msg.Y):
			m.focus = FocusLog
		}
	}
	return m, nil
}

func (m Model) handleSectionSelected(msg panels.SectionSelectedMsg) (tea.Model, tea.Cmd) {
	if msg.Index < 0 || msg.Index >= len(m.sections) {
		return m, nil
	}
	m.active = msg.Index
	if msg.Enter {
		m.focus = FocusWidget
	}
	return m, nil
}

func (m Model) export() (tea.Model, tea.Cmd) {
	if m.exporter == nil {
		m.status, m.statusErr = "export disabled", true
		return m, nil
	}
	path, err := m.app.ExportResults(m.exporter)
	if err != nil {
		m.status, m.statusErr = "export failed: "+err.Error(), true
		return m, nil
	}
	m.status, m.statusErr = "exported to "+panels.AbbreviatePath(path), false
	return m, nil
}

func (m Model) clear() (tea.Model, tea.Cmd) {
	m.app.ClearResults()
	m.status, m.statusErr = "log cleared", false
	return m, nil
}

// dialogBox renders the framed alert or dialog, or "" when neither is shown.
func (m Model) dialogBox() string {
	switch {
	case m.modal.Alert() != "":
		return m.theme.DialogStyle().Render(m.modal.AlertView())
	case m.modal.IsOpen():
		return m.theme.DialogStyle().Render(m.modal.DialogView())
	}
	return ""
}

func (m Model) focusedHints() string {
	if m.dialogShown() {
		if m.modal.Alert() != "" {
			return "any key:dismiss"
		}
		return "a/enter:action  esc/x:close  click outside:close"
	}
	switch m.focus {
	case FocusNav:
		return m.nav.Hints()
	case FocusWidget:
		return m.current().Hints()
	case FocusLog:
		return m.logPanel.Hints()
	}
	return ""
}

// View renders the header, the three panels, the footer and any dialog.
func (m Model) View() string {
	if m.layout.TooSmall {
		msg := fmt.Sprintf("Terminal too small (%dx%d).\nPlease resize to at least 80x24.", m.width, m.height)
		return lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Render(msg)
	}

	header := panels.RenderHeader(panels.HeaderProps{
		Title:       m.title,
		WorkDir:     m.workDir,
		Section:     m.current().Title(),
		Entries:     m.app.Log.Len(),
		AutoRunning: m.app.Progress.Running(),
		Journal:     m.journalID,
		Elapsed:     m.now.Sub(m.startedAt),
		Clock:       m.now,
	}, m.layout.Header.Width, m.theme.AccentHeaderStyle())

	footer := panels.RenderFooter(panels.FooterProps{
		Focus:        m.focus.String(),
		Hints:        m.focusedHints(),
		Global:       GlobalHelp(),
		Status:       m.status,
		StatusErr:    m.statusErr,
		ScrollOffset: m.logPanel.ScrollOffset(),
	}, m.layout.Footer.Width)

	navW, navH := innerDims(m.layout.Nav)
	widgetW, widgetH := innerDims(m.layout.Widget)
	logW, logH := innerDims(m.layout.Log)

	nav := m.theme.PanelBorderStyle(m.focus == FocusNav).
		Width(navW).Height(navH).
		Render(m.nav.View())

	rightCol := lipgloss.JoinVertical(lipgloss.Left,
		m.theme.PanelBorderStyle(m.focus == FocusWidget).
			Width(widgetW).Height(widgetH).
			Render(m.current().View()),
		m.theme.PanelBorderStyle(m.focus == FocusLog).
			Width(logW).Height(logH).
			Render(m.logPanel.View()),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, nav, rightCol)
	view := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	if box := m.dialogBox(); box != "" {
		view = renderOverlay(view, box, m.width, m.height)
	}
	return view
}
