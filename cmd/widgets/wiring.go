package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LISSConsulting/LISSTech.Widgets/internal/app"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/config"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/store"
	"github.com/LISSConsulting/LISSTech.Widgets/internal/tui"
)

// session holds what one TUI run opens and must release afterwards.
type session struct {
	cfg      *config.Config
	logger   *slog.Logger
	logFile  io.Closer     // nil when diagnostics are discarded
	journal  store.Journal // nil when the journal is disabled
	exporter store.FileExporter
}

// openSession loads and validates the configuration, then opens the
// diagnostic log and the journal it asks for.
func openSession(configPath string) (*session, error) {
	cfg, err := config.LoadOrDefaults(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger, logFile, err := newLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg:      cfg,
		logger:   logger,
		logFile:  logFile,
		exporter: store.FileExporter{Dir: cfg.Export.Dir, Name: cfg.Export.FileName},
	}

	if cfg.Journal.Enabled {
		if err := store.EnforceRetention(cfg.Journal.Dir, cfg.Journal.Retention); err != nil {
			logger.Warn("journal: retention failed", "dir", cfg.Journal.Dir, "err", err)
		}
		j, err := store.NewJSONL(cfg.Journal.Dir)
		if err != nil {
			s.close()
			return nil, err
		}
		s.journal = j
		logger.Info("journal: opened", "path", j.Path())
	}
	return s, nil
}

// journalID returns the journal session id, or "" when there is none.
func (s *session) journalID() string {
	if j, ok := s.journal.(*store.JSONL); ok {
		return j.SessionID()
	}
	return ""
}

func (s *session) close() {
	if s.journal != nil {
		if err := s.journal.Close(); err != nil {
			s.logger.Warn("journal: close failed", "err", err)
		}
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

// newLogger builds the diagnostic logger. The terminal belongs to the TUI, so
// records go to the configured debug file or nowhere.
func newLogger(c config.LogConfig) (*slog.Logger, io.Closer, error) {
	if c.DebugFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := tea.LogToFile(c.DebugFile, "widgets")
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log %s: %w", c.DebugFile, err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(c.Level)})
	return slog.New(h), f, nil
}

// parseLevel maps a config level name to a slog level; unknown names are info.
func parseLevel(name string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// modelOptions maps the session onto the root model options.
func modelOptions(s *session, workDir string) tui.Options {
	opts := tui.Options{
		WorkDir:     workDir,
		AccentColor: s.cfg.TUI.AccentColor,
		App: app.Options{
			TimeFormat:       s.cfg.Log.TimeFormat,
			ProgressInterval: s.cfg.Progress.Interval(),
			Logger:           s.logger,
		},
		Exporter:  s.exporter,
		Logger:    s.logger,
		JournalID: s.journalID(),
	}
	if s.journal != nil {
		opts.App.Journal = s.journal
	}
	return opts
}

// programOptions returns the bubbletea options for the configured terminal.
func programOptions(c config.TUIConfig) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if c.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	return opts
}

// executeTUI runs the playground until the user quits.
func executeTUI(configPath string) error {
	s, err := openSession(configPath)
	if err != nil {
		return err
	}
	defer s.close()

	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	model := tui.New(modelOptions(s, dir))
	// Panels are shared by every copy of the model, so the initial model
	// can stop the automatic progress after the program exits.
	defer model.App().Shutdown()

	s.logger.Info("tui: starting", "workdir", dir, "mouse", s.cfg.TUI.Mouse)
	if _, err := tea.NewProgram(model, programOptions(s.cfg.TUI)...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
