package maze

var neighbors = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Solve returns the shortest path from start to end over non-wall cells, both ends
// included, or nil when end cannot be reached.
func Solve(g *Grid, start, end Point) []Point {
	if g.At(start.X, start.Y) == Wall || g.At(end.X, end.Y) == Wall {
		return nil
	}

	cameFrom := map[Point]Point{}
	visited := map[Point]bool{start: true}
	queue := []Point{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == end {
			var path []Point
			for cur != start {
				path = append(path, cur)
				cur = cameFrom[cur]
			}
			path = append(path, start)
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path
		}

		for _, d := range neighbors {
			next := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if visited[next] || g.At(next.X, next.Y) == Wall {
				continue
			}
			visited[next] = true
			cameFrom[next] = cur
			queue = append(queue, next)
		}
	}

	return nil
}

// Reachable returns every non-wall cell connected to start.
func Reachable(g *Grid, start Point) map[Point]bool {
	seen := map[Point]bool{}
	if g.At(start.X, start.Y) == Wall {
		return seen
	}

	seen[start] = true
	queue := []Point{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbors {
			next := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if seen[next] || g.At(next.X, next.Y) == Wall {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	return seen
}
