package game

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lantern/internal/core/geometry"
	"chosenoffset.com/lantern/internal/render/lighting"
	"chosenoffset.com/lantern/internal/world/maze"
	"chosenoffset.com/lantern/internal/world/mesh"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// testLayout is a 7x5 grid:
//
//	#######
//	#.....#
//	#.###.#
//	#..o.E#
//	#######
var testLayout = []string{
	"#######",
	"#.....#",
	"#.###.#",
	"#..o.E#",
	"#######",
}

func gridFromLayout(layout []string) *maze.Grid {
	g := maze.NewGrid(len(layout[0]), len(layout))
	for y, row := range layout {
		for x, ch := range row {
			switch ch {
			case '.':
				g.Set(x, y, maze.Ground)
			case 'o':
				g.Set(x, y, maze.Station)
			case 'E':
				g.Set(x, y, maze.End)
			}
		}
	}
	return g
}

func newTestState(grid *maze.Grid, pos geometry.Point) *State {
	s := &State{
		Rules: Rules{
			CellSize:   32,
			Step:       3,
			Probe:      3,
			ViewWidth:  400,
			ViewHeight: 300,
		},
		Grid:    grid,
		Origin:  mesh.Build(grid, 32),
		Player:  Player{Pos: pos, StartedAt: epoch},
		Lantern: lighting.NewLantern(8, 1, 12*time.Second, epoch),
	}
	s.UpdateCamera()
	s.UpdateView(epoch)
	return s
}

func TestCanMove(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 48, Y: 48})

	assert.True(t, s.CanMove(geometry.Point{X: 48, Y: 48}))
	assert.True(t, s.CanMove(geometry.Point{X: 35, Y: 35}))
	// probe corner at 31.x crosses into the border wall
	assert.False(t, s.CanMove(geometry.Point{X: 34, Y: 48}))
	// straddling the ground/wall boundary between (1,1) and (2,2)
	assert.False(t, s.CanMove(geometry.Point{X: 64, Y: 64}))
	// outside the grid counts as wall
	assert.False(t, s.CanMove(geometry.Point{X: -100, Y: 48}))
	assert.False(t, s.CanMove(geometry.Point{X: 48, Y: 10000}))
}

func TestStepMovesAlongCorridor(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 48, Y: 48})
	c := NewController(s)

	finished := c.Step(Input{Right: true}, epoch)
	assert.False(t, finished)
	assert.Equal(t, geometry.Point{X: 51, Y: 48}, s.Player.Pos)

	c.Step(Input{Left: true, Right: true}, epoch)
	assert.Equal(t, geometry.Point{X: 51, Y: 48}, s.Player.Pos)
}

func TestStepStopsAtWall(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 48, Y: 48})
	c := NewController(s)

	for i := 0; i < 20; i++ {
		c.Step(Input{Up: true}, epoch)
	}
	assert.Equal(t, geometry.Point{X: 48, Y: 36}, s.Player.Pos)
}

func TestStepLongerThanWallIsBlocked(t *testing.T) {
	pillars := []string{
		"#######",
		"#.#.#.#",
		"#######",
	}
	s := newTestState(gridFromLayout(pillars), geometry.Point{X: 48, Y: 48})
	s.Rules.Step = 64
	c := NewController(s)

	c.Step(Input{Right: true}, epoch)
	assert.Equal(t, geometry.Point{X: 48, Y: 48}, s.Player.Pos)
	assert.Equal(t, maze.Ground, s.CellAt(s.Player.Pos))
}

func TestStepLongStepCoversOpenCorridor(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 48, Y: 48})
	s.Rules.Step = 64
	c := NewController(s)

	c.Step(Input{Right: true}, epoch)
	assert.Equal(t, geometry.Point{X: 112, Y: 48}, s.Player.Pos)
	assert.True(t, s.CanMove(s.Player.Pos))
}

func TestStepSlidesHorizontally(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 48, Y: 35})
	c := NewController(s)

	c.Step(Input{Up: true, Right: true}, epoch)
	assert.Equal(t, geometry.Point{X: 51, Y: 35}, s.Player.Pos)
}

func TestStepSlidesVertically(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 35, Y: 48})
	c := NewController(s)

	c.Step(Input{Left: true, Down: true}, epoch)
	assert.Equal(t, geometry.Point{X: 35, Y: 51}, s.Player.Pos)
}

func TestStepFullStopInCorner(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 35, Y: 35})
	c := NewController(s)

	c.Step(Input{Left: true, Up: true}, epoch)
	assert.Equal(t, geometry.Point{X: 35, Y: 35}, s.Player.Pos)
}

func TestStepNeverOverlapsWall(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	grid, err := maze.Generate(maze.Config{Width: 15, Height: 11}, rng)
	require.NoError(t, err)
	maze.MarkEnd(grid)

	s := newTestState(grid, geometry.Point{X: 48, Y: 48})
	c := NewController(s)

	for i := 0; i < 5000 && s.Phase == Running; i++ {
		in := Input{
			Up:    rng.Intn(2) == 0,
			Down:  rng.Intn(2) == 0,
			Left:  rng.Intn(2) == 0,
			Right: rng.Intn(2) == 0,
		}
		c.Step(in, epoch)
		require.True(t, s.CanMove(s.Player.Pos), "tick %d left the probe on a wall at %+v", i, s.Player.Pos)
	}
}

func TestStepRefuelsOnStation(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 112, Y: 112})
	c := NewController(s)

	later := epoch.Add(time.Minute)
	assert.Less(t, s.Lantern.Level(later), 8.0)

	c.Step(Input{}, later)
	assert.Equal(t, later, s.Lantern.LastRefuel())
	assert.Equal(t, 8.0, s.Lantern.Level(later))
}

func TestStepReachesEnd(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 144, Y: 112})
	c := NewController(s)

	finished := false
	var at time.Time
	for i := 0; i < 10 && !finished; i++ {
		at = epoch.Add(time.Duration(i+1) * time.Second)
		finished = c.Step(Input{Right: true}, at)
	}
	require.True(t, finished)
	assert.Equal(t, Finished, s.Phase)
	assert.Equal(t, maze.End, s.CellAt(s.Player.Pos))
	assert.Equal(t, 6*time.Second, s.Elapsed(epoch.Add(time.Hour)))

	// finished is terminal
	pos := s.Player.Pos
	assert.True(t, c.Step(Input{Left: true}, at.Add(time.Second)))
	assert.Equal(t, pos, s.Player.Pos)
	assert.Equal(t, at, s.FinishedAt)
}

func TestStepUpdatesView(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 48, Y: 48})
	c := NewController(s)

	// six decay units in: level 2, so the square spans two cells
	now := epoch.Add(72 * time.Second)
	c.Step(Input{Right: true}, now)

	assert.Equal(t, geometry.Square(geometry.Point{X: 51, Y: 48}, 32), s.View)
	require.NotZero(t, s.Current.Len())
	for _, set := range [][]geometry.Polygon{s.Current.Walls, s.Current.Stations, s.Current.Ends} {
		for _, poly := range set {
			assert.GreaterOrEqual(t, len(poly), 3)
			for _, p := range poly {
				assert.GreaterOrEqual(t, p.X, 19.0)
				assert.LessOrEqual(t, p.X, 83.0)
				assert.GreaterOrEqual(t, p.Y, 16.0)
				assert.LessOrEqual(t, p.Y, 80.0)
			}
		}
	}
	assert.Empty(t, s.Current.Ends)
}

func TestUpdateCamera(t *testing.T) {
	big := maze.NewGrid(41, 51)

	tests := []struct {
		name string
		pos  geometry.Point
		want Camera
	}{
		{"clamped to origin", geometry.Point{X: 48, Y: 48}, Camera{0, 0}},
		{"centred", geometry.Point{X: 700, Y: 800}, Camera{500, 650}},
		{"clamped to far edge", geometry.Point{X: 1300, Y: 1600}, Camera{912, 1332}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(big, tt.pos)
			assert.Equal(t, tt.want, s.Camera)
		})
	}
}

func TestUpdateCameraSmallMap(t *testing.T) {
	s := newTestState(gridFromLayout(testLayout), geometry.Point{X: 144, Y: 112})
	assert.Equal(t, Camera{0, 0}, s.Camera)
}
