package maze

import (
	"math/rand"

	"chosenoffset.com/lantern/internal/errors"
	"chosenoffset.com/lantern/internal/logger"
)

// EndOf returns the end cell of a grid: the bottom-right room.
func EndOf(g *Grid) Point {
	return Point{X: g.Width() - 2, Y: g.Height() - 2}
}

// MarkEnd stamps End on the bottom-right room and returns its position.
func MarkEnd(g *Grid) Point {
	end := EndOf(g)
	g.Set(end.X, end.Y, End)
	return end
}

// PlaceStations turns n distinct Ground cells into Stations, drawing uniformly
// from the cells that are free at call time. When fewer than n are free the grid
// is left untouched and a ResourceExhausted error is returned.
func PlaceStations(g *Grid, n int, rng *rand.Rand) ([]Point, error) {
	if n < 0 {
		return nil, errors.InvalidArgumentf("station count must not be negative, got %d", n)
	}

	var free []Point
	g.Each(func(p Point, c Cell) {
		if c == Ground {
			free = append(free, p)
		}
	})

	if n > len(free) {
		return nil, errors.ResourceExhaustedf("cannot place %d stations on %d free ground cells", n, len(free)).
			WithMeta("requested", n).
			WithMeta("free", len(free))
	}

	placed := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		// swap-remove keeps the draw uniform over what is left
		j := rng.Intn(len(free))
		p := free[j]
		free[j] = free[len(free)-1]
		free = free[:len(free)-1]

		g.Set(p.X, p.Y, Station)
		placed = append(placed, p)
	}

	logger.Component("maze").WithField("stations", len(placed)).Debug("Stations placed")
	return placed, nil
}
