// Package terminal renders the game into a terminal with tcell. Drawing happens
// on an in-memory pixel canvas at the game's logical resolution, which is then
// sampled down onto terminal cells.
package terminal

import (
	"image"
	"image/color"
	"image/draw"

	"chosenoffset.com/lantern/internal/render"
)

type textRun struct {
	x, y int
	text string
	clr  color.RGBA
}

// Canvas is a render.Image backed by an RGBA pixel buffer. Text is kept as
// runs and placed on whole terminal cells at blit time.
type Canvas struct {
	img   *image.RGBA
	texts []textRun
}

var _ render.Image = (*Canvas)(nil)

// NewCanvas creates a transparent canvas of the given size
func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

func (c *Canvas) Size() (width, height int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Fill paints every pixel and drops pending text.
func (c *Canvas) Fill(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
	c.texts = c.texts[:0]
}

func (c *Canvas) Clear() {
	c.Fill(color.Transparent)
}

func (c *Canvas) Dispose() {}

// At returns the pixel at (x, y); out of range reads transparent.
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}
