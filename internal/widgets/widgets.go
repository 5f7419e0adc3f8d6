// Package widgets implements the interactive widget controllers. Each
// controller owns its state, writes to a small surface interface and records
// every user-visible interaction through a Recorder.
//
// A controller whose surface is nil is unbound: its operations are no-ops.
package widgets

import "time"

// Recorder records interactions; *interaction.Log satisfies it.
type Recorder interface {
	Append(action, details string)
}

// Scheduler runs step repeatedly every interval until the returned Task is
// cancelled. Steps must run on the same event loop as the controllers.
type Scheduler interface {
	Every(interval time.Duration, step func()) Task
}

// Task is a handle to a scheduled repeating step.
type Task interface {
	Cancel()
}
