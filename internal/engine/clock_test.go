package engine

import (
	"math"
	"testing"
	"time"

	"github.com/san-kum/orrery/internal/ephem"
)

func TestClockAdvance(t *testing.T) {
	start := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

	c := NewClock(start, 2.0)
	c.Advance(time.Second)
	if got := c.Now(); got != start.Add(2*time.Second) {
		t.Errorf("speed 2: got %v", got)
	}

	c.SetSpeed(0)
	c.Advance(time.Hour)
	if got := c.Now(); got != start.Add(2*time.Second) {
		t.Errorf("paused clock moved: %v", got)
	}

	c.SetSpeed(-4)
	c.Advance(time.Second)
	if got := c.Now(); got != start.Add(-2*time.Second) {
		t.Errorf("rewind: got %v", got)
	}
}

func TestNegativeSpeedReversesMeanAnomaly(t *testing.T) {
	start := time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)
	el := ephem.Elements{A: 1.0, E: 0.0167, L: 100.46435, W: 102.94719}
	m0 := ephem.MeanAnomaly(el, ephem.ToJulianDate(start))

	forward := NewClock(start, 3600)
	backward := NewClock(start, -3600)
	forward.Advance(time.Second)
	backward.Advance(time.Second)

	dFwd := ephem.MeanAnomaly(el, ephem.ToJulianDate(forward.Now())) - m0
	dBwd := ephem.MeanAnomaly(el, ephem.ToJulianDate(backward.Now())) - m0

	if dFwd <= 0 {
		t.Fatalf("forward progression not positive: %.2e", dFwd)
	}
	if math.Abs(dFwd+dBwd) > 1e-8 {
		t.Errorf("rewind is not the mirror of forward: %.2e vs %.2e", dFwd, dBwd)
	}
}
