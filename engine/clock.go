package engine

import "time"

// Clock reports game time in seconds since construction
// Game time is monotonic non-decreasing and excludes paused spans
// Not safe for concurrent use; owned by the frame loop goroutine
type Clock struct {
	provider TimeProvider
	start    time.Time

	paused      bool
	pauseStart  time.Time     // Provider time when current pause started
	totalPaused time.Duration // Cumulative pause duration

	last float64 // Highest value reported so far
}

// NewClock creates a clock starting at zero on the given provider
// A nil provider uses the monotonic system clock
func NewClock(provider TimeProvider) *Clock {
	if provider == nil {
		provider = NewMonotonicTimeProvider()
	}
	return &Clock{
		provider: provider,
		start:    provider.Now(),
	}
}

// Now returns game seconds, frozen while paused
func (c *Clock) Now() float64 {
	var ref time.Time
	if c.paused {
		ref = c.pauseStart
	} else {
		ref = c.provider.Now()
	}

	s := (ref.Sub(c.start) - c.totalPaused).Seconds()
	// A provider stepping backwards must not rewind game time
	if s < c.last {
		return c.last
	}
	c.last = s
	return s
}

// Pause stops game time advancement, no-op when already paused
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.provider.Now()
}

// Resume continues game time advancement, no-op when running
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	if d := c.provider.Now().Sub(c.pauseStart); d > 0 {
		c.totalPaused += d
	}
	c.pauseStart = time.Time{}
}

// Toggle flips pause state and returns the new state
func (c *Clock) Toggle() bool {
	if c.paused {
		c.Resume()
	} else {
		c.Pause()
	}
	return c.paused
}

// IsPaused returns current pause state
func (c *Clock) IsPaused() bool {
	return c.paused
}

// TotalPaused returns cumulative pause time including a pause in progress
func (c *Clock) TotalPaused() time.Duration {
	total := c.totalPaused
	if c.paused {
		if d := c.provider.Now().Sub(c.pauseStart); d > 0 {
			total += d
		}
	}
	return total
}

// Delta returns current-last clamped at zero
func Delta(last, current float64) float64 {
	if current < last {
		return 0
	}
	return current - last
}
