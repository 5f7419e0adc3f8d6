package widgets

import "fmt"

// CounterSurface displays the click count.
type CounterSurface interface {
	ShowCount(n int)
}

// Counter is a click counter with a reset action.
type Counter struct {
	count   int
	surface CounterSurface
	log     Recorder
}

// NewCounter creates a counter at zero.
func NewCounter(surface CounterSurface, log Recorder) *Counter {
	return &Counter{surface: surface, log: log}
}

// Count returns the current value.
func (c *Counter) Count() int { return c.count }

// Increment adds one and logs the new value.
func (c *Counter) Increment() {
	if c.surface == nil {
		return
	}
	c.count++
	c.surface.ShowCount(c.count)
	c.log.Append("Counter click", fmt.Sprintf("Value: %d", c.count))
}

// Reset sets the count back to zero.
func (c *Counter) Reset() {
	if c.surface == nil {
		return
	}
	c.count = 0
	c.surface.ShowCount(c.count)
	c.log.Append("Counter reset", "")
}
