package game

import (
	"time"

	"chosenoffset.com/lantern/internal/core/geometry"
	"chosenoffset.com/lantern/internal/render/lighting"
	"chosenoffset.com/lantern/internal/world/maze"
	"chosenoffset.com/lantern/internal/world/mesh"
)

// Player represents the player's physical state in the world.
type Player struct {
	Pos       geometry.Point // World position (in pixels)
	StartedAt time.Time
}

// Camera tracks the viewport position for scrolling large levels.
type Camera struct {
	X, Y float64 // Camera position (top-left corner of viewport in world coords)
}

// Phase is the run state machine: Running until the end cell is reached.
type Phase int

const (
	Running Phase = iota
	Finished
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Input is the directional intent sampled once per tick.
type Input struct {
	Up, Down, Left, Right bool
}

// Rules are the fixed movement and viewport parameters of a run.
type Rules struct {
	CellSize   int
	Step       float64 // Pixels per tick per axis
	Probe      float64 // Half side of the collision square
	ViewWidth  int     // Viewport size in pixels
	ViewHeight int
}

// State holds everything a run mutates. Origin is built once from Grid and never
// changes; Current is Origin clipped to View for the latest tick.
type State struct {
	Rules   Rules
	Grid    *maze.Grid
	Origin  mesh.Set
	Current mesh.Set
	View    geometry.Polygon

	Player     Player
	Camera     Camera
	Lantern    *lighting.Lantern
	Phase      Phase
	FinishedAt time.Time

	Stations []maze.Point
	End      maze.Point
	Seed     int64
}

// MapSize is the maze size in pixels
func (s *State) MapSize() (width, height float64) {
	size := float64(s.Rules.CellSize)
	return float64(s.Grid.Width()) * size, float64(s.Grid.Height()) * size
}

// Elapsed is the run time at now, frozen once the run is finished.
func (s *State) Elapsed(now time.Time) time.Duration {
	if s.Phase == Finished {
		now = s.FinishedAt
	}
	if d := now.Sub(s.Player.StartedAt); d > 0 {
		return d
	}
	return 0
}
