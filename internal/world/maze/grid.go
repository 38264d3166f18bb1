// Package maze generates the cell grid the player explores: a perfect maze carved
// by a randomized depth-first backtracker, refuel stations, and the end cell.
package maze

import (
	"bufio"
	"io"
)

// Cell is the content of one grid slot.
type Cell uint8

// Cell kinds. The zero value is Wall so fresh and out-of-bounds cells block.
const (
	Wall Cell = iota
	Ground
	Station
	End
)

// String returns the cell kind name
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Ground:
		return "ground"
	case Station:
		return "station"
	case End:
		return "end"
	default:
		return "unknown"
	}
}

// Point is a grid coordinate (column X, row Y).
type Point struct {
	X, Y int
}

// Grid is a dense, bounds-checked rows×cols cell array.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// NewGrid creates a grid of walls.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{
		cols:  cols,
		rows:  rows,
		cells: make([]Cell, cols*rows),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.cols }

// Height returns the number of rows
func (g *Grid) Height() int { return g.rows }

// InBounds reports whether (x, y) lies on the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.cols && y >= 0 && y < g.rows
}

// At returns the cell at (x, y). Anything outside the grid reads as Wall.
func (g *Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Wall
	}
	return g.cells[y*g.cols+x]
}

// Set writes the cell at (x, y) and reports whether it was in bounds.
func (g *Grid) Set(x, y int, c Cell) bool {
	if !g.InBounds(x, y) {
		return false
	}
	g.cells[y*g.cols+x] = c
	return true
}

// Count returns how many cells hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == c {
			n++
		}
	}
	return n
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(p Point, c Cell)) {
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			fn(Point{X: x, Y: y}, g.cells[y*g.cols+x])
		}
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{cols: g.cols, rows: g.rows, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	return out
}

// Render writes the grid as text, one row per line. marks override the glyph of
// individual cells (a solution path, the player).
func (g *Grid) Render(w io.Writer, marks map[Point]rune) error {
	bw := bufio.NewWriter(w)
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if r, ok := marks[Point{X: x, Y: y}]; ok {
				bw.WriteRune(r)
				continue
			}
			bw.WriteRune(glyph(g.cells[y*g.cols+x]))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func glyph(c Cell) rune {
	switch c {
	case Wall:
		return '█'
	case Station:
		return 'o'
	case End:
		return 'E'
	default:
		return ' '
	}
}
