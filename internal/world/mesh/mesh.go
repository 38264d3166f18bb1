// Package mesh turns a finished maze grid into world-space polygons and cuts them
// down to what the lantern lights each frame.
package mesh

import (
	"chosenoffset.com/lantern/internal/core/geometry"
	"chosenoffset.com/lantern/internal/world/maze"
)

// StationInsetDivisor sets the station marker inset to cellSize / StationInsetDivisor
// on every side.
const StationInsetDivisor = 5

// Set holds the three disjoint polygon collections the renderer fills.
type Set struct {
	Walls    []geometry.Polygon
	Stations []geometry.Polygon
	Ends     []geometry.Polygon
}

// Len returns the total number of polygons
func (s Set) Len() int {
	return len(s.Walls) + len(s.Stations) + len(s.Ends)
}

// Build converts every Wall, Station and End cell into a quad in world pixels.
// Ground cells produce nothing. All quads are wound top-left, top-right,
// bottom-right, bottom-left.
func Build(g *maze.Grid, cellSize int) Set {
	var set Set
	size := float64(cellSize)
	inset := float64(cellSize / StationInsetDivisor)

	g.Each(func(p maze.Point, c maze.Cell) {
		x1 := float64(p.X) * size
		y1 := float64(p.Y) * size
		x2 := x1 + size
		y2 := y1 + size

		switch c {
		case maze.Wall:
			set.Walls = append(set.Walls, geometry.Quad(x1, y1, x2, y2))
		case maze.Station:
			set.Stations = append(set.Stations, geometry.Quad(x1+inset, y1+inset, x2-inset, y2-inset))
		case maze.End:
			set.Ends = append(set.Ends, geometry.Quad(x1, y1, x2, y2))
		}
	})

	return set
}

// Clip cuts every polygon against view independently. Polygons that end up with
// fewer than three vertices are not visible and are dropped.
func (s Set) Clip(view geometry.Polygon) Set {
	return Set{
		Walls:    clipAll(s.Walls, view),
		Stations: clipAll(s.Stations, view),
		Ends:     clipAll(s.Ends, view),
	}
}

func clipAll(polygons []geometry.Polygon, view geometry.Polygon) []geometry.Polygon {
	var out []geometry.Polygon
	for _, poly := range polygons {
		clipped := geometry.Clip(poly, view)
		if len(clipped) < 3 {
			continue
		}
		out = append(out, clipped)
	}
	return out
}
