// Package config parses widgets.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file looked up by Load.
const FileName = "widgets.toml"

// DefaultAccentColor is the default TUI accent color (indigo).
const DefaultAccentColor = "#7D56F4"

// ErrNotFound is returned by Load when no widgets.toml exists in the working
// directory or any parent.
var ErrNotFound = errors.New("config: " + FileName + " not found")

// hexColorRe matches a 6-digit hex color string like "#7D56F4".
var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// Config is the top-level widgets.toml configuration.
type Config struct {
	TUI      TUIConfig      `toml:"tui"`
	Log      LogConfig      `toml:"log"`
	Export   ExportConfig   `toml:"export"`
	Progress ProgressConfig `toml:"progress"`
	Journal  JournalConfig  `toml:"journal"`
}

// TUIConfig controls the terminal UI appearance.
type TUIConfig struct {
	AccentColor string `toml:"accent_color"`
	Mouse       bool   `toml:"mouse"`
}

// LogConfig controls interaction log formatting and diagnostics.
type LogConfig struct {
	TimeFormat string `toml:"time_format"` // Go time layout for entry timestamps
	DebugFile  string `toml:"debug_file"`  // diagnostic log file; empty = discard
	Level      string `toml:"level"`       // debug, info, warn, error
}

// ExportConfig controls where exported results are written.
type ExportConfig struct {
	Dir      string `toml:"dir"`
	FileName string `toml:"file_name"`
}

// ProgressConfig controls the automatic progress advance.
type ProgressConfig struct {
	IntervalMS int `toml:"interval_ms"`
}

// JournalConfig controls the optional per-session JSONL journal.
type JournalConfig struct {
	Enabled   bool   `toml:"enabled"`
	Dir       string `toml:"dir"`
	Retention int    `toml:"retention"` // number of journals to keep; 0 = unlimited
}

// Interval returns the progress step period.
func (p ProgressConfig) Interval() time.Duration {
	return time.Duration(p.IntervalMS) * time.Millisecond
}

// Validate checks the configuration for issues that would cause confusing
// runtime failures. It returns all found issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if c.TUI.AccentColor != "" && !hexColorRe.MatchString(c.TUI.AccentColor) {
		errs = append(errs, fmt.Errorf("tui.accent_color must be a hex color (e.g. \"#7D56F4\")"))
	}

	if strings.TrimSpace(c.Log.TimeFormat) == "" {
		errs = append(errs, fmt.Errorf("log.time_format must not be empty"))
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of debug, info, warn, error"))
	}

	if c.Export.FileName == "" {
		errs = append(errs, fmt.Errorf("export.file_name must not be empty"))
	} else if filepath.Base(c.Export.FileName) != c.Export.FileName {
		errs = append(errs, fmt.Errorf("export.file_name must be a bare file name, not a path"))
	}

	if c.Progress.IntervalMS <= 0 {
		errs = append(errs, fmt.Errorf("progress.interval_ms must be > 0"))
	}

	if c.Journal.Enabled && c.Journal.Dir == "" {
		errs = append(errs, fmt.Errorf("journal.dir must be set when journal.enabled is true"))
	}
	if c.Journal.Retention < 0 {
		errs = append(errs, fmt.Errorf("journal.retention must be >= 0 (0 = unlimited)"))
	}

	return errors.Join(errs...)
}

// Defaults returns a Config with sensible defaults.
func Defaults() Config {
	return Config{
		TUI: TUIConfig{
			AccentColor: DefaultAccentColor,
			Mouse:       true,
		},
		Log: LogConfig{
			TimeFormat: "3:04:05 PM",
			Level:      "info",
		},
		Export: ExportConfig{
			Dir:      ".",
			FileName: "test-results.json",
		},
		Progress: ProgressConfig{
			IntervalMS: 100,
		},
		Journal: JournalConfig{
			Enabled:   false,
			Dir:       ".widgets/journal",
			Retention: 20,
		},
	}
}

// Load reads widgets.toml from the given path. If path is empty, it walks up
// from the current working directory looking for widgets.toml and returns
// ErrNotFound if there is none. Returns an error if the file contains unknown
// keys (likely typos).
func Load(path string) (*Config, error) {
	if path == "" {
		found, err := findConfig()
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s (possible typos?)", path, joinKeys(keys))
	}

	// Relative directories are resolved against the config file's location.
	base := filepath.Dir(path)
	cfg.Export.Dir = resolve(base, cfg.Export.Dir)
	cfg.Journal.Dir = resolve(base, cfg.Journal.Dir)
	cfg.Log.DebugFile = resolve(base, cfg.Log.DebugFile)

	return &cfg, nil
}

// LoadOrDefaults behaves like Load but falls back to Defaults when path is
// empty and no widgets.toml is found.
func LoadOrDefaults(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, ErrNotFound) {
		d := Defaults()
		return &d, nil
	}
	return cfg, err
}

func resolve(base, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(base, p)
}

// joinKeys formats a slice of key names for display.
func joinKeys(keys []string) string {
	return strings.Join(keys, ", ")
}

// findConfig walks up from the current directory looking for widgets.toml.
func findConfig() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("config: get working directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w (searched up from %s)", ErrNotFound, dir)
		}
		dir = parent
	}
}

// InitFile writes a default widgets.toml template to the given directory.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("config: %s already exists at %s", FileName, path)
	}

	content := `# widgets.toml: interactive widget playground configuration

[tui]
accent_color = "#7D56F4"  # hex color for header/accent elements
mouse = true              # enable mouse clicks (modal overlay, log scrolling)

[log]
time_format = "3:04:05 PM"  # Go time layout for log timestamps
debug_file = ""             # diagnostic log file (empty = disabled)
level = "info"

[export]
dir = "."
file_name = "test-results.json"

[progress]
interval_ms = 100  # automatic progress step period

[journal]
enabled = false             # mirror every interaction to a JSONL file
dir = ".widgets/journal"
retention = 20              # number of journals to keep; 0 = unlimited
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("config: write %s: %w", path, err)
	}
	return path, nil
}
