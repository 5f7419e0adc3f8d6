package panels

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// HeaderProps holds all data needed to render the header bar.
type HeaderProps struct {
	Title       string
	WorkDir     string
	Section     string
	Entries     int
	AutoRunning bool
	Journal     string // journal session id; empty when disabled
	Elapsed     time.Duration
	Clock       time.Time
}

// AbbreviatePath returns a display-friendly path, replacing the home directory
// with "~" and converting backslashes to forward slashes.
func AbbreviatePath(path string) string {
	if path == "" {
		return ""
	}
	if home, err := os.UserHomeDir(); err == nil && strings.HasPrefix(path, home) {
		path = "~" + path[len(home):]
	}
	return strings.ReplaceAll(path, "\\", "/")
}

// FormatElapsed renders a duration as a compact string: "5s", "2m30s", "1h15m".
func FormatElapsed(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh%dm", h, m)
	}
	if m > 0 {
		return fmt.Sprintf("%dm%ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}

// RenderHeader renders the header bar. accentStyle is applied to the full
// header bar width.
func RenderHeader(props HeaderProps, width int, accentStyle lipgloss.Style) string {
	name := "Widget Playground"
	if props.Title != "" {
		name = props.Title
	}

	parts := []string{"🧩 " + name}
	if props.WorkDir != "" {
		parts = append(parts, "dir: "+AbbreviatePath(props.WorkDir))
	}

	section := props.Section
	if section == "" {
		section = "—"
	}
	parts = append(parts,
		"section: "+section,
		fmt.Sprintf("entries: %d", props.Entries),
	)
	if props.AutoRunning {
		parts = append(parts, "● auto-progress")
	}
	if props.Journal != "" {
		parts = append(parts, "journal: "+props.Journal)
	}
	if props.Elapsed > 0 {
		parts = append(parts, "elapsed: "+FormatElapsed(props.Elapsed))
	}
	if !props.Clock.IsZero() {
		parts = append(parts, props.Clock.Format("15:04"))
	}

	content := strings.Join(parts, "  │  ")
	if width > 0 {
		content = ansi.Truncate(content, width, "…")
	}
	return accentStyle.Width(width).Render(content)
}
