package app

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/interaction"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

type lines struct{ got []string }

func (l *lines) AppendLine(s string) { l.got = append(l.got, s) }
func (l *lines) Reset(p string)      { l.got = []string{p} }

type nopSurface struct{}

func (nopSurface) ShowCount(int)                   {}
func (nopSurface) ShowStatus(string)               {}
func (nopSurface) Hidden() bool                    { return true }
func (nopSurface) SetHidden(bool)                  {}
func (nopSurface) SetToggleLabel(string)           {}
func (nopSurface) ClearColors()                    {}
func (nopSurface) ApplyColor(string)               {}
func (nopSurface) ShowErrors([]string)             {}
func (nopSurface) ShowSuccess(string)              {}
func (nopSurface) ClearResult()                    {}
func (nopSurface) SetOpen(bool)                    {}
func (nopSurface) Acknowledge(string)              {}
func (nopSurface) SetArmed(bool)                   {}
func (nopSurface) AppendDropped(widgets.DragItem)  {}
func (nopSurface) ClearDropped()                   {}
func (nopSurface) AppendEntry(widgets.ListEntry)   {}
func (nopSurface) RemoveEntry(string)              {}
func (nopSurface) ClearEntries()                   {}
func (nopSurface) SetCount(int)                    {}
func (nopSurface) ClearInput()                     {}
func (nopSurface) ShowProgress(int)                {}
func (nopSurface) SetButtonActive(string, bool)    {}
func (nopSurface) SetPanelActive(string, bool)     {}

func allSurfaces(log interaction.Surface) Surfaces {
	n := nopSurface{}
	return Surfaces{
		Log: log, Counter: n, Selection: n, Visibility: n, Color: n, Form: n,
		Modal: n, DragDrop: n, List: n, Progress: n, Tabs: n,
	}
}

type stubScheduler struct{ started int }

type stubTask struct{}

func (stubTask) Cancel() {}

func (s *stubScheduler) Every(time.Duration, func()) widgets.Task {
	s.started++
	return stubTask{}
}

func TestBootstrap_LogsReadyOnce(t *testing.T) {
	l := &lines{}
	a := Bootstrap(allSurfaces(l), &stubScheduler{}, Options{})
	if a.Log.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", a.Log.Len())
	}
	if got := a.Log.Entries()[0].Action; got != ReadyMessage {
		t.Errorf("first entry = %q, want %q", got, ReadyMessage)
	}
	if len(l.got) != 1 {
		t.Errorf("rendered lines = %v", l.got)
	}
}

func TestBootstrap_DefaultPage(t *testing.T) {
	a := Bootstrap(allSurfaces(nil), &stubScheduler{}, Options{})
	if got := len(a.Selection.Options()); got != 3 {
		t.Errorf("options = %d, want 3", got)
	}
	if a.List.Len() != 1 {
		t.Errorf("list seed = %d, want 1", a.List.Len())
	}
	if a.Tabs.Active() != "tab1" {
		t.Errorf("active tab = %q", a.Tabs.Active())
	}
	if len(a.DragDrop.Sources()) != 3 {
		t.Errorf("drag sources = %v", a.DragDrop.Sources())
	}
}

func TestBootstrap_UnboundWidgetsAreNoOps(t *testing.T) {
	a := Bootstrap(Surfaces{}, &stubScheduler{}, Options{})
	a.Counter.Increment()
	a.Modal.Open()
	a.List.Add("x")
	a.Progress.Start()
	if a.Log.Len() != 1 {
		t.Errorf("only the ready entry should be logged, got %d", a.Log.Len())
	}
}

func TestBootstrap_WarnsAboutUnboundSurfaces(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Bootstrap(allSurfaces(&lines{}), &stubScheduler{}, Options{Logger: logger})
	if strings.Contains(buf.String(), "unbound") {
		t.Errorf("fully bound page should not warn: %s", buf.String())
	}

	Bootstrap(Surfaces{}, &stubScheduler{}, Options{Logger: logger})
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "widgets unbound") {
		t.Errorf("log output = %q", out)
	}
}

func TestBootstrap_SharedLog(t *testing.T) {
	sched := &stubScheduler{}
	a := Bootstrap(allSurfaces(nil), sched, Options{
		Clock:      func() time.Time { return time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC) },
		TimeFormat: "15:04",
	})
	a.Counter.Increment()
	a.Progress.Start()
	a.Progress.Start()
	if sched.started != 1 {
		t.Errorf("scheduler started %d tasks, want 1", sched.started)
	}
	got := a.Log.Lines()
	want := []string{"[13:00] Page fully loaded", "[13:00] Counter click: Value: 1", "[13:00] Auto-progress started"}
	if len(got) != len(want) {
		t.Fatalf("lines = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
	a.Shutdown()
	if a.Progress.Running() {
		t.Error("Shutdown should stop the progress task")
	}
}

type journal struct{ n int }

func (j *journal) Append(interaction.Entry) error { j.n++; return nil }

type failingExporter struct{}

func (failingExporter) Export(interaction.Snapshot) (string, error) {
	return "", errors.New("read-only")
}

func TestApp_JournalAndExport(t *testing.T) {
	j := &journal{}
	a := Bootstrap(allSurfaces(nil), &stubScheduler{}, Options{Journal: j})
	if j.n != 1 {
		t.Errorf("journal saw %d entries, want 1", j.n)
	}
	if _, err := a.ExportResults(failingExporter{}); err == nil {
		t.Error("expected export error")
	}
	a.ClearResults()
	if a.Log.Len() != 1 || a.Log.Entries()[0].Action != "Log cleared" {
		t.Errorf("entries after clear = %+v", a.Log.Entries())
	}
}
