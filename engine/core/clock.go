package core

import "time"

// TimeSource returns an absolute time in seconds.
type TimeSource func() float64

// WallTime is the default TimeSource backed by the system monotonic clock.
func WallTime() TimeSource {
	origin := time.Now()
	return func() float64 {
		return time.Since(origin).Seconds()
	}
}

type Clock struct {
	source    TimeSource
	startTime float64
	elapsed   float64
	running   bool
}

func NewClock() *Clock {
	return NewClockWithSource(WallTime())
}

// NewClockWithSource builds a clock over an arbitrary time source. Tests use
// it to drive animations with a simulated clock.
func NewClockWithSource(source TimeSource) *Clock {
	return &Clock{source: source}
}

// Updates the provided clock. Should be called just before checking elapsed time.
// Has no effect on non-started clocks.
func (c *Clock) Update() {
	if c.running {
		c.elapsed = c.source() - c.startTime
	}
}

// Starts the provided clock. Resets elapsed time.
func (c *Clock) Start() {
	c.startTime = c.source()
	c.elapsed = 0
	c.running = true
}

// Stops the provided clock. Does not reset elapsed time.
func (c *Clock) Stop() {
	c.running = false
}

// Elapsed returns the seconds between Start and the last Update.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}
