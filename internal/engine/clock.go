package engine

import "time"

// Clock holds the simulated timestamp. It advances once per tick by the
// elapsed real time scaled by the speed multiplier: zero pauses, a negative
// multiplier rewinds. The tick loop is the only writer.
type Clock struct {
	now   time.Time
	speed float64
}

func NewClock(start time.Time, speed float64) *Clock {
	return &Clock{now: start, speed: speed}
}

// Now returns the current simulated timestamp.
func (c *Clock) Now() time.Time { return c.now }

// Speed returns the current speed multiplier.
func (c *Clock) Speed() float64 { return c.speed }

// SetSpeed replaces the speed multiplier; it takes effect on the next
// Advance.
func (c *Clock) SetSpeed(speed float64) { c.speed = speed }

// SetNow jumps the simulated timestamp.
func (c *Clock) SetNow(t time.Time) { c.now = t }

// Advance moves simulated time by realElapsed scaled by the speed
// multiplier and returns the new timestamp.
func (c *Clock) Advance(realElapsed time.Duration) time.Time {
	c.now = c.now.Add(time.Duration(float64(realElapsed) * c.speed))
	return c.now
}
