package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/interaction"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/tui/panels"
)

// Section positions in the nav list.
const (
	sectionCounter  = 0
	sectionForm     = 4
	sectionModal    = 5
	sectionProgress = 8
)

func press(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+e":
		return tea.KeyMsg{Type: tea.KeyCtrlE}
	case "ctrl+l":
		return tea.KeyMsg{Type: tea.KeyCtrlL}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

type fakeExporter struct {
	path string
	err  error
	got  []interaction.Snapshot
}

func (f *fakeExporter) Export(s interaction.Snapshot) (string, error) {
	f.got = append(f.got, s)
	return f.path, f.err
}

func fixedClock() func() time.Time {
	t := time.Date(2024, 5, 1, 13, 0, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func newTestModel(t *testing.T, opts Options) Model {
	t.Helper()
	if opts.App.Clock == nil {
		opts.App = app.Options{Clock: fixedClock()}
	}
	m := New(opts)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return next.(Model)
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// enterSection jumps to section i and moves focus into it.
func enterSection(t *testing.T, m Model, i int) Model {
	t.Helper()
	m, _ = send(t, m, panels.SectionSelectedMsg{Index: i, Enter: true})
	if m.focus != FocusWidget || m.active != i {
		t.Fatalf("focus=%v active=%d, want widget/%d", m.focus, m.active, i)
	}
	return m
}

func TestNew_Defaults(t *testing.T) {
	m := newTestModel(t, Options{})
	if m.focus != FocusNav {
		t.Errorf("focus = %v, want nav", m.focus)
	}
	if len(m.sections) != 10 {
		t.Errorf("sections = %d, want 10", len(m.sections))
	}
	if m.App().Log.Len() != 1 || m.App().Log.Entries()[0].Action != app.ReadyMessage {
		t.Errorf("entries = %+v", m.App().Log.Entries())
	}
	if got := m.logPanel.Lines(); len(got) != 1 || !strings.HasSuffix(got[0], app.ReadyMessage) {
		t.Errorf("log panel lines = %v", got)
	}
}

func TestInit_ReturnsCmd(t *testing.T) {
	if New(Options{}).Init() == nil {
		t.Error("Init() should schedule the clock tick")
	}
}

func TestView_Normal(t *testing.T) {
	m := newTestModel(t, Options{Title: "Demo"})
	view := m.View()
	for _, want := range []string{"Demo", app.ReadyMessage, "Counter", "Click counter", "tab:next panel"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestView_TooSmall(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	if !strings.Contains(m.View(), "Terminal too small (60x20)") {
		t.Errorf("View() = %q", m.View())
	}
	// Mouse input is ignored while the layout is unusable.
	m, _ = send(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.focus != FocusNav {
		t.Errorf("focus = %v", m.focus)
	}
}

func TestUpdate_TabCyclesFocus(t *testing.T) {
	m := newTestModel(t, Options{})
	want := []FocusTarget{FocusWidget, FocusLog, FocusNav}
	for _, w := range want {
		m, _ = send(t, m, press("tab"))
		if m.focus != w {
			t.Fatalf("focus = %v, want %v", m.focus, w)
		}
	}
	m, _ = send(t, m, press("shift+tab"))
	if m.focus != FocusLog {
		t.Errorf("shift+tab focus = %v, want log", m.focus)
	}
}

func TestUpdate_NavEnterOpensSection(t *testing.T) {
	m := newTestModel(t, Options{})
	m, cmd := send(t, m, press("j"))
	if cmd == nil {
		t.Fatal("j should emit a selection")
	}
	m, _ = send(t, m, cmd())
	if m.active != 1 || m.focus != FocusNav {
		t.Errorf("active=%d focus=%v", m.active, m.focus)
	}

	m, cmd = send(t, m, press("enter"))
	m, _ = send(t, m, cmd())
	if m.focus != FocusWidget {
		t.Errorf("focus = %v, want widget", m.focus)
	}
}

func TestUpdate_SectionSelectedOutOfRange(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = send(t, m, panels.SectionSelectedMsg{Index: 42, Enter: true})
	if m.active != 0 || m.focus != FocusNav {
		t.Errorf("active=%d focus=%v", m.active, m.focus)
	}
}

func TestUpdate_CounterThroughKeys(t *testing.T) {
	m := enterSection(t, newTestModel(t, Options{}), sectionCounter)
	m, _ = send(t, m, press("enter"))
	m, _ = send(t, m, press("enter"))
	if got := m.App().Counter.Count(); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
	lines := m.logPanel.Lines()
	if last := lines[len(lines)-1]; !strings.HasSuffix(last, "Counter click: Value: 2") {
		t.Errorf("last line = %q", last)
	}
}

func TestUpdate_ProgressTicks(t *testing.T) {
	m := enterSection(t, newTestModel(t, Options{}), sectionProgress)
	m, cmd := send(t, m, press("s"))
	if cmd == nil {
		t.Fatal("starting progress should schedule a tick")
	}
	if m.sched.Active() != 1 {
		t.Fatalf("active tasks = %d, want 1", m.sched.Active())
	}

	for i := 0; i < 3; i++ {
		m, cmd = send(t, m, stepMsg{id: 1})
		if cmd == nil {
			t.Fatalf("step %d should reschedule", i)
		}
	}
	if got := m.App().Progress.Value(); got != 3 {
		t.Errorf("value = %d, want 3", got)
	}
	if !strings.Contains(m.View(), "auto") {
		t.Errorf("header should show the running task")
	}

	m, _ = send(t, m, press("x"))
	m, cmd = send(t, m, stepMsg{id: 1})
	if cmd != nil {
		t.Error("a tick for a stopped task must not reschedule")
	}
	if got := m.App().Progress.Value(); got != 3 {
		t.Errorf("value after stop = %d, want 3", got)
	}
}

func TestUpdate_ModalDialog(t *testing.T) {
	m := enterSection(t, newTestModel(t, Options{}), sectionModal)
	m, _ = send(t, m, press("enter"))
	if !m.modal.IsOpen() {
		t.Fatal("dialog should be open")
	}
	if !strings.Contains(m.View(), "Click outside it to close") {
		t.Error("View() should draw the dialog")
	}

	// The dialog owns input: q neither quits nor reaches the section.
	m, cmd := send(t, m, press("q"))
	if cmd != nil || !m.modal.IsOpen() {
		t.Errorf("q while open: cmd=%v open=%v", cmd != nil, m.modal.IsOpen())
	}

	r := overlayRect(m.dialogBox(), m.width, m.height)
	m, _ = send(t, m, tea.MouseMsg{X: r.X + r.Width/2, Y: r.Y + r.Height/2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.modal.IsOpen() {
		t.Error("a click inside the dialog must not close it")
	}

	m, _ = send(t, m, press("a"))
	if m.modal.Alert() == "" {
		t.Fatal("action should raise the alert")
	}
	if !strings.Contains(m.View(), m.modal.Alert()) {
		t.Error("View() should draw the alert")
	}
	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.modal.Alert() != "" || !m.modal.IsOpen() {
		t.Fatalf("first click dismisses only the alert: alert=%q open=%v", m.modal.Alert(), m.modal.IsOpen())
	}

	m, _ = send(t, m, tea.MouseMsg{X: 0, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.modal.IsOpen() {
		t.Error("a click on the overlay should close the dialog")
	}
}

func TestUpdate_ForceQuitWhileDialogOpen(t *testing.T) {
	m := enterSection(t, newTestModel(t, Options{}), sectionModal)
	m, _ = send(t, m, press("enter"))
	_, cmd := send(t, m, press("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should return tea.Quit")
	}
}

func TestUpdate_Quit(t *testing.T) {
	m := newTestModel(t, Options{})
	_, cmd := send(t, m, press("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
}

func TestUpdate_CapturingSectionKeepsQ(t *testing.T) {
	m := enterSection(t, newTestModel(t, Options{}), sectionForm)
	m, _ = send(t, m, press("q"))
	form, ok := m.current().(*panels.FormPanel)
	if !ok {
		t.Fatalf("section %d is %T", sectionForm, m.current())
	}
	if v, _ := form.Data().Get("userName"); v != "q" {
		t.Errorf("name field = %q, want q", v)
	}

	_, cmd := send(t, m, press("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c should quit even while typing")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should return tea.Quit")
	}
}

func TestUpdate_Export(t *testing.T) {
	tests := []struct {
		name       string
		exporter   *fakeExporter
		wantStatus string
		wantErr    bool
	}{
		{"success", &fakeExporter{path: "/tmp/test-results.json"}, "exported to /tmp/test-results.json", false},
		{"failure", &fakeExporter{err: errors.New("read-only")}, "export failed", true},
		{"disabled", nil, "export disabled", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{}
			if tt.exporter != nil {
				opts.Exporter = tt.exporter
			}
			m := newTestModel(t, opts)
			m, _ = send(t, m, press("ctrl+e"))
			if !strings.HasPrefix(m.status, tt.wantStatus) || m.statusErr != tt.wantErr {
				t.Errorf("status = %q (err=%v), want %q (err=%v)", m.status, m.statusErr, tt.wantStatus, tt.wantErr)
			}
			if !strings.Contains(m.View(), tt.wantStatus) {
				t.Errorf("footer should show %q", tt.wantStatus)
			}
		})
	}
}

func TestUpdate_ExportRecordsEntry(t *testing.T) {
	exp := &fakeExporter{path: "/tmp/test-results.json"}
	m := newTestModel(t, Options{Exporter: exp})
	m, _ = send(t, m, panels.ExportRequestMsg{})
	if len(exp.got) != 1 || exp.got[0].TotalInteractions != 1 {
		t.Fatalf("exported snapshots = %+v", exp.got)
	}
	entries := m.App().Log.Entries()
	if last := entries[len(entries)-1]; last.Action != "Results exported" {
		t.Errorf("last action = %q", last.Action)
	}
}

func TestUpdate_ClearLog(t *testing.T) {
	m := enterSection(t, newTestModel(t, Options{}), sectionCounter)
	m, _ = send(t, m, press("enter"))
	m, _ = send(t, m, press("ctrl+l"))
	if m.App().Log.Len() != 1 {
		t.Errorf("entries after clear = %d, want 1", m.App().Log.Len())
	}
	if got := m.logPanel.Lines(); len(got) != 2 || got[0] != interaction.Placeholder {
		t.Errorf("log panel after clear = %v", got)
	}
	if m.status != "log cleared" {
		t.Errorf("status = %q", m.status)
	}

	m, _ = send(t, m, panels.ClearRequestMsg{})
	if m.App().Log.Len() != 1 {
		t.Errorf("entries after second clear = %d", m.App().Log.Len())
	}
}

func TestUpdate_MouseFocus(t *testing.T) {
	m := newTestModel(t, Options{})
	click := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}

	m, _ = send(t, m, click(m.layout.Widget.X+2, m.layout.Widget.Y+2))
	if m.focus != FocusWidget {
		t.Errorf("focus = %v, want widget", m.focus)
	}
	m, _ = send(t, m, click(m.layout.Log.X+2, m.layout.Log.Y+2))
	if m.focus != FocusLog {
		t.Errorf("focus = %v, want log", m.focus)
	}

	// First nav row sits just below the panel border.
	m, _ = send(t, m, click(m.layout.Nav.X+2, m.layout.Nav.Y+1+3))
	if m.focus != FocusNav || m.active != 3 || m.nav.Selected() != 3 {
		t.Errorf("focus=%v active=%d nav=%d, want nav/3/3", m.focus, m.active, m.nav.Selected())
	}

	m, _ = send(t, m, tea.MouseMsg{X: m.layout.Log.X + 2, Y: m.layout.Log.Y + 2, Button: tea.MouseButtonWheelUp})
	if m.focus != FocusNav {
		t.Error("wheel events must not move focus")
	}
}

func TestUpdate_Tick(t *testing.T) {
	m := newTestModel(t, Options{})
	at := m.startedAt.Add(90 * time.Second)
	m, cmd := send(t, m, tickMsg(at))
	if cmd == nil {
		t.Error("tick should reschedule itself")
	}
	if !m.now.Equal(at) {
		t.Errorf("now = %v, want %v", m.now, at)
	}
}

func TestUpdate_SharesPanelsAcrossCopies(t *testing.T) {
	m := enterSection(t, newTestModel(t, Options{}), sectionCounter)
	before := m
	m, _ = send(t, m, press("enter"))
	if before.App().Counter.Count() != m.App().Counter.Count() {
		t.Error("copies of the model must share application state")
	}
}
