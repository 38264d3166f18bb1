package game

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/lantern/internal/core/geometry"
	"chosenoffset.com/lantern/internal/logger"
	"chosenoffset.com/lantern/internal/world/maze"
)

// Controller advances a State one tick at a time.
type Controller struct {
	state    *State
	lastCell maze.Cell
	log      *logrus.Entry
}

// NewController creates a controller driving s
func NewController(s *State) *Controller {
	return &Controller{
		state:    s,
		lastCell: s.CellAt(s.Player.Pos),
		log:      logger.Component("controller"),
	}
}

// State returns the driven state
func (c *Controller) State() *State {
	return c.state
}

// CellAt returns the cell containing world point p. Outside the grid is Wall.
func (s *State) CellAt(p geometry.Point) maze.Cell {
	size := float64(s.Rules.CellSize)
	return s.Grid.At(int(math.Floor(p.X/size)), int(math.Floor(p.Y/size)))
}

// CanMove reports whether the probe square centred on p touches only
// non-wall cells.
func (s *State) CanMove(p geometry.Point) bool {
	r := s.Rules.Probe
	corners := [4]geometry.Point{
		{X: p.X - r, Y: p.Y - r},
		{X: p.X + r, Y: p.Y - r},
		{X: p.X + r, Y: p.Y + r},
		{X: p.X - r, Y: p.Y + r},
	}
	for _, corner := range corners {
		if s.CellAt(corner) == maze.Wall {
			return false
		}
	}
	return true
}

// slide moves the player by (dx, dy), falling back to the vertical then the
// horizontal component when the full move is blocked. It reports whether the
// player moved.
func (s *State) slide(dx, dy float64) bool {
	cur := s.Player.Pos
	next := geometry.Point{X: cur.X + dx, Y: cur.Y + dy}

	switch {
	case s.CanMove(next):
	case dy != 0 && s.CanMove(geometry.Point{X: cur.X, Y: next.Y}):
		next.X = cur.X
	case dx != 0 && s.CanMove(geometry.Point{X: next.X, Y: cur.Y}):
		next.Y = cur.Y
	default:
		return false
	}
	s.Player.Pos = next
	return next != cur
}

// Step applies one tick of input at now and reports whether the run is finished.
// A blocked diagonal move slides along whichever axis is still open, preferring
// the vertical one. Steps longer than half a cell are taken in equal parts so
// the probe cannot pass over a wall between two collision tests.
func (c *Controller) Step(in Input, now time.Time) bool {
	s := c.state
	if s.Phase == Finished {
		return true
	}

	var dx, dy float64
	if in.Up {
		dy -= s.Rules.Step
	}
	if in.Down {
		dy += s.Rules.Step
	}
	if in.Left {
		dx -= s.Rules.Step
	}
	if in.Right {
		dx += s.Rules.Step
	}

	if dx != 0 || dy != 0 {
		parts := 1
		if limit := float64(s.Rules.CellSize) / 2; limit > 0 {
			parts = int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / limit))
		}
		for i := 0; i < parts; i++ {
			if !s.slide(dx/float64(parts), dy/float64(parts)) || s.CellAt(s.Player.Pos) == maze.End {
				break
			}
		}
	}

	cell := s.CellAt(s.Player.Pos)
	switch cell {
	case maze.Station:
		s.Lantern.Refuel(now)
		if c.lastCell != maze.Station {
			c.log.WithField("pos", s.Player.Pos).Debug("lantern refueled")
		}
	case maze.End:
		s.Phase = Finished
		s.FinishedAt = now
		c.log.WithFields(logrus.Fields{
			"elapsed": s.Elapsed(now).Round(time.Millisecond).String(),
			"seed":    s.Seed,
		}).Info("maze escaped")
	}
	c.lastCell = cell

	s.UpdateCamera()
	s.UpdateView(now)

	return s.Phase == Finished
}
