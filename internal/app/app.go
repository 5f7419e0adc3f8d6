// Package app composes the interaction log and every widget controller into
// one application-state object.
package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/interaction"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/widgets"
)

// Surfaces holds the rendering capability for each widget. A nil field leaves
// that widget unbound.
type Surfaces struct {
	Log        interaction.Surface
	Counter    widgets.CounterSurface
	Selection  widgets.SelectionSurface
	Visibility widgets.VisibilitySurface
	Color      widgets.ColorSurface
	Form       widgets.FormSurface
	Modal      widgets.ModalSurface
	DragDrop   widgets.DragDropSurface
	List       widgets.ListSurface
	Progress   widgets.ProgressSurface
	Tabs       widgets.TabsSurface
}

// Options tunes the bootstrapped application.
type Options struct {
	Page             Page
	Clock            func() time.Time
	TimeFormat       string
	ProgressInterval time.Duration
	Journal          interaction.Observer
	Logger           *slog.Logger
}

// App owns all widget state for one session.
type App struct {
	Log        *interaction.Log
	Counter    *widgets.Counter
	Selection  *widgets.Selection
	Visibility *widgets.Visibility
	Color      *widgets.ColorPicker
	Form       *widgets.Form
	Modal      *widgets.Modal
	DragDrop   *widgets.DragDrop
	List       *widgets.List
	Progress   *widgets.Progress
	Tabs       *widgets.Tabs

	logger *slog.Logger
}

// ReadyMessage is the single entry written once every widget is bound.
const ReadyMessage = "Page fully loaded"

// Bootstrap binds every controller to its surface in a fixed order and then
// records that the page is ready.
func Bootstrap(s Surfaces, sched widgets.Scheduler, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	page := opts.Page
	if len(page.TabButtons) == 0 && len(page.OptionIDs) == 0 && len(page.DragItems) == 0 {
		page = DefaultPage()
	}

	logOpts := []interaction.Option{
		interaction.WithTimeFormat(opts.TimeFormat),
		interaction.WithLogger(logger),
	}
	if opts.Clock != nil {
		logOpts = append(logOpts, interaction.WithClock(opts.Clock))
	}
	if opts.Journal != nil {
		logOpts = append(logOpts, interaction.WithObserver(opts.Journal))
	}
	log := interaction.New(s.Log, logOpts...)

	a := &App{Log: log, logger: logger}
	a.Counter = widgets.NewCounter(s.Counter, log)
	a.Selection = widgets.NewSelection(s.Selection, log, page.OptionIDs, page.RadioValues)
	a.Visibility = widgets.NewVisibility(s.Visibility, log)
	a.Color = widgets.NewColorPicker(s.Color, log)
	a.Form = widgets.NewForm(s.Form, log)
	a.Modal = widgets.NewModal(s.Modal, log)
	a.DragDrop = widgets.NewDragDrop(s.DragDrop, log, page.DragItems)
	a.List = widgets.NewList(s.List, log, page.ListSeed...)
	a.Progress = widgets.NewProgress(s.Progress, log, sched, opts.ProgressInterval)
	a.Tabs = widgets.NewTabs(s.Tabs, log, page.TabButtons, page.TabPanels)

	if missing := unbound(s); len(missing) > 0 {
		logger.Warn("app: widgets unbound", "unbound", missing)
	}
	log.Append(ReadyMessage, "")
	return a
}

// ExportResults writes the log snapshot through exp.
func (a *App) ExportResults(exp interaction.Exporter) (string, error) {
	path, err := a.Log.Export(exp)
	if err != nil {
		a.logger.Error("app: export failed", "err", err)
		return "", err
	}
	a.logger.Info("app: results exported", "path", path)
	return path, nil
}

// ClearResults empties the interaction log.
func (a *App) ClearResults() {
	a.Log.Clear()
}

// Shutdown stops the automatic progress so no step outlives the session.
func (a *App) Shutdown() {
	if a.Progress.Running() {
		a.Progress.Stop()
	}
}

func unbound(s Surfaces) []string {
	var names []string
	check := func(name string, bound bool) {
		if !bound {
			names = append(names, name)
		}
	}
	check("log", s.Log != nil)
	check("counter", s.Counter != nil)
	check("selection", s.Selection != nil)
	check("visibility", s.Visibility != nil)
	check("color", s.Color != nil)
	check("form", s.Form != nil)
	check("modal", s.Modal != nil)
	check("dragdrop", s.DragDrop != nil)
	check("list", s.List != nil)
	check("progress", s.Progress != nil)
	check("tabs", s.Tabs != nil)
	return names
}
