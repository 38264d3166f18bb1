package geometry

// Clip intersects subject with the convex polygon clip using Sutherland-Hodgman.
// Both polygons must share the package winding. The result may have more or fewer
// vertices than subject and is empty when nothing of subject lies inside clip.
// Points exactly on a clip edge count as outside.
func Clip(subject, clip Polygon) Polygon {
	if len(clip) < 3 || len(subject) == 0 {
		return nil
	}

	output := make(Polygon, len(subject))
	copy(output, subject)

	for i := range clip {
		a := clip[i]
		b := clip[(i+1)%len(clip)]

		input := output
		if len(input) == 0 {
			return nil
		}
		output = make(Polygon, 0, len(input)+2)

		for j, cur := range input {
			prev := input[(j+len(input)-1)%len(input)]
			curIn := inside(cur, a, b)
			prevIn := inside(prev, a, b)

			if curIn {
				if !prevIn {
					output = append(output, intersection(prev, cur, a, b))
				}
				output = append(output, cur)
			} else if prevIn {
				output = append(output, intersection(prev, cur, a, b))
			}
		}
	}

	if len(output) == 0 {
		return nil
	}
	return output
}

// inside reports whether p lies strictly on the inner side of edge a→b.
func inside(p, a, b Point) bool {
	return (b.X-a.X)*(p.Y-a.Y)-(b.Y-a.Y)*(p.X-a.X) > 0
}

// intersection returns where segment prev→cur crosses the line through a→b. It
// is only called when the endpoints straddle the line.
func intersection(prev, cur, a, b Point) Point {
	switch {
	case a.Y == b.Y:
		return Point{
			X: prev.X + (a.Y-prev.Y)*(cur.X-prev.X)/(cur.Y-prev.Y),
			Y: a.Y,
		}
	case a.X == b.X:
		return Point{
			X: a.X,
			Y: prev.Y + (a.X-prev.X)*(cur.Y-prev.Y)/(cur.X-prev.X),
		}
	}

	dx, dy := cur.X-prev.X, cur.Y-prev.Y
	ex, ey := b.X-a.X, b.Y-a.Y
	denom := dx*ey - dy*ex
	if denom == 0 {
		return cur
	}
	t := ((a.X-prev.X)*ey - (a.Y-prev.Y)*ex) / denom
	return Point{X: prev.X + t*dx, Y: prev.Y + t*dy}
}
