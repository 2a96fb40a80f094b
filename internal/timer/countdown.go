// Package timer provides the round clock used by timed games.
package timer

// Countdown counts down a fixed duration in simulation seconds.
// It is a plain value driven by Update, not a wall-clock timer.
type Countdown struct {
	total    float64
	timeLeft float64
	running  bool
}

// New returns a stopped countdown with the given duration.
func New(duration float64) *Countdown {
	return &Countdown{total: duration, timeLeft: duration}
}

// Start arms the countdown with a fresh duration and starts it.
func (c *Countdown) Start(duration float64) {
	c.total = duration
	c.timeLeft = duration
	c.running = true
}

// Reset is Start under the name the game loop uses on restart.
func (c *Countdown) Reset(duration float64) {
	c.Start(duration)
}

// Update advances the clock by dt seconds. The remaining time never drops below zero.
func (c *Countdown) Update(dt float64) {
	if !c.running || dt <= 0 {
		return
	}
	c.timeLeft -= dt
	if c.timeLeft <= 0 {
		c.timeLeft = 0
		c.running = false
	}
}

// Remaining returns the seconds left on the clock.
func (c *Countdown) Remaining() float64 {
	return c.timeLeft
}

// Elapsed returns the seconds consumed since the last Start.
func (c *Countdown) Elapsed() float64 {
	return c.total - c.timeLeft
}

// IsOver reports whether the countdown has run out.
func (c *Countdown) IsOver() bool {
	return c.timeLeft <= 0
}
