package terminal

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the top half of a cell in the foreground colour, so every
// terminal cell shows two vertically stacked samples.
const upperHalf = '▀'

// Surface is the part of tcell.Screen the blitter writes to.
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Blit samples the canvas onto every cell of dst, then overlays queued text.
func Blit(dst Surface, c *Canvas) {
	cols, rows := dst.Size()
	width, height := c.Size()
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return
	}

	sample := func(col int, fy float64) color.RGBA {
		x := int((float64(col) + 0.5) * float64(width) / float64(cols))
		y := int(fy * float64(height) / float64(rows))
		return c.At(x, y)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := sample(col, float64(row)+0.25)
			bottom := sample(col, float64(row)+0.75)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			dst.SetContent(col, row, upperHalf, nil, style)
		}
	}

	for _, t := range c.texts {
		row := t.y * rows / height
		col := t.x * cols / width
		for _, r := range t.text {
			if col >= cols {
				break
			}
			if col >= 0 && row >= 0 && row < rows {
				bg := sample(col, float64(row)+0.5)
				style := tcell.StyleDefault.Foreground(tcellColor(t.clr)).Background(tcellColor(bg))
				dst.SetContent(col, row, r, nil, style)
			}
			col++
		}
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
