// Package geometry holds the world-space value types shared by the mesh builder,
// the visibility clipper and the renderers.
package geometry

// Point represents a 2D point in world pixels
type Point struct {
	X, Y float64
}

// Polygon is an ordered, implicitly closed vertex list. Every polygon in the game
// is wound clockwise on a y-down screen.
type Polygon []Point

// Translate returns a copy of the polygon moved by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

// Quad returns the axis-aligned rectangle (x1,y1)-(x2,y2) as top-left,
// top-right, bottom-right, bottom-left.
func Quad(x1, y1, x2, y2 float64) Polygon {
	return Polygon{
		{X: x1, Y: y1},
		{X: x2, Y: y1},
		{X: x2, Y: y2},
		{X: x1, Y: y2},
	}
}

// Square returns the axis-aligned square of half side radius around center.
func Square(center Point, radius float64) Polygon {
	return Quad(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
}
