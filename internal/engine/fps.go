package engine

import "time"

// FPSCounter counts frames and publishes the count once per second.
type FPSCounter struct {
	frames  int
	last    time.Time
	started bool
	value   int
}

// Frame records one frame at now. It returns true when a new value was
// published.
func (c *FPSCounter) Frame(now time.Time) bool {
	// The first frame opens the window and is not counted in it
	if !c.started {
		c.last = now
		c.started = true
		return false
	}
	c.frames++
	if now.Sub(c.last) >= time.Second {
		c.value = c.frames
		c.frames = 0
		c.last = now
		return true
	}
	return false
}

// Value returns the frame count of the last completed window.
func (c *FPSCounter) Value() int { return c.value }
