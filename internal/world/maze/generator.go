package maze

import (
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/lantern/internal/errors"
	"chosenoffset.com/lantern/internal/logger"
)

// Start is the room every traversal begins from.
var Start = Point{X: 1, Y: 1}

// Config holds the maze dimensions in cells.
type Config struct {
	Width, Height int
}

// Validate checks that both dimensions are odd and at least 3.
func (c Config) Validate() error {
	if c.Width < 3 || c.Width%2 == 0 || c.Height < 3 || c.Height%2 == 0 {
		return errors.InvalidArgumentf("maze dimensions must be odd and at least 3, got %dx%d", c.Width, c.Height)
	}
	return nil
}

// Rooms returns the number of odd/odd traversal nodes.
func (c Config) Rooms() int {
	return (c.Width / 2) * (c.Height / 2)
}

// NewRand returns a random source for seed, or a time-based one when seed is 0,
// along with the seed actually used.
func NewRand(seed int64) (*rand.Rand, int64) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)), seed
}

// steps are the room-to-room jumps, two cells along each axis.
var steps = [4]Point{{0, -2}, {2, 0}, {0, 2}, {-2, 0}}

// Generate carves a perfect maze: every room is reachable from Start along
// exactly one path.
func Generate(cfg Config, rng *rand.Rand) (*Grid, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	grid := NewGrid(cfg.Width, cfg.Height)
	for y := 1; y < cfg.Height; y += 2 {
		for x := 1; x < cfg.Width; x += 2 {
			grid.Set(x, y, Ground)
		}
	}

	visited := make([][]bool, cfg.Height)
	for y := range visited {
		visited[y] = make([]bool, cfg.Width)
	}

	stack := []Point{Start}
	visited[Start.Y][Start.X] = true
	candidates := make([]Point, 0, len(steps))
	carved := 0

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		candidates = candidates[:0]
		for _, d := range steps {
			next := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if grid.InBounds(next.X, next.Y) && !visited[next.Y][next.X] {
				candidates = append(candidates, next)
			}
		}

		if len(candidates) == 0 {
			// dead end, backtrack
			stack = stack[:len(stack)-1]
			continue
		}

		next := candidates[rng.Intn(len(candidates))]
		grid.Set((cur.X+next.X)/2, (cur.Y+next.Y)/2, Ground)
		carved++
		visited[next.Y][next.X] = true
		stack = append(stack, next)
	}

	logger.Component("maze").WithFields(logrus.Fields{
		"width":     cfg.Width,
		"height":    cfg.Height,
		"rooms":     cfg.Rooms(),
		"corridors": carved,
	}).Debug("Maze carved")

	return grid, nil
}
