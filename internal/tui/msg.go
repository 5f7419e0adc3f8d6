package tui

import "time"

// tickMsg is sent every second for the header clock.
type tickMsg time.Time
