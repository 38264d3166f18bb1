package lighting

import (
	"math"
	"time"
)

// Lantern models the player's light. It burns at full strength right after a
// refuel and loses one view level per decay unit until it bottoms out.
type Lantern struct {
	MaxView   float64       // Visibility level right after a refuel (in cells)
	MinView   float64       // Floor the level never drops below
	DecayUnit time.Duration // Time it takes to lose one level

	lastRefuel time.Time
}

// NewLantern creates a lantern that was just refueled at now
func NewLantern(maxView, minView float64, decayUnit time.Duration, now time.Time) *Lantern {
	return &Lantern{
		MaxView:    maxView,
		MinView:    minView,
		DecayUnit:  decayUnit,
		lastRefuel: now,
	}
}

// Refuel resets the lantern to full strength
func (l *Lantern) Refuel(now time.Time) {
	l.lastRefuel = now
}

// LastRefuel returns when the lantern was last refueled
func (l *Lantern) LastRefuel() time.Time {
	return l.lastRefuel
}

// Level returns max(MinView, MaxView - elapsed/DecayUnit). A clock that went
// backwards counts as no time elapsed.
func (l *Lantern) Level(now time.Time) float64 {
	elapsed := now.Sub(l.lastRefuel)
	if elapsed < 0 {
		elapsed = 0
	}

	level := l.MaxView
	if l.DecayUnit > 0 {
		level -= float64(elapsed) / float64(l.DecayUnit)
	}
	return math.Max(l.MinView, level)
}

// Fraction maps the current level onto [0, 1] between MinView and MaxView
func (l *Lantern) Fraction(now time.Time) float64 {
	span := l.MaxView - l.MinView
	if span <= 0 {
		return 1
	}
	return (l.Level(now) - l.MinView) / span
}

// Radius returns the half side of the lit square in pixels
func (l *Lantern) Radius(now time.Time, cellSize int) float64 {
	return math.Round(float64(cellSize) * l.Level(now) / 2)
}
