package terminal

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"chosenoffset.com/lantern/internal/render"
)

// Glyph size in logical pixels used for text layout
const (
	GlyphWidth  = 6
	GlyphHeight = 16
)

// Renderer rasterizes shapes onto a Canvas with x/image/vector and composites
// them with Over, so translucent colours blend with what is underneath.
type Renderer struct {
	z *vector.Rasterizer
}

var _ render.Renderer = (*Renderer)(nil)

// NewRenderer creates a new terminal renderer.
func NewRenderer() render.Renderer {
	return &Renderer{}
}

func canvas(dst render.Image) *Canvas {
	return dst.(*Canvas)
}

// rasterizer returns the shared rasterizer, reset to the canvas size.
func (r *Renderer) rasterizer(c *Canvas) *vector.Rasterizer {
	w, h := c.Size()
	if r.z == nil {
		r.z = vector.NewRasterizer(w, h)
	} else {
		r.z.Reset(w, h)
	}
	return r.z
}

func (r *Renderer) paint(c *Canvas, clr color.Color) {
	r.z.DrawOp = draw.Over
	r.z.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{})
}

func (r *Renderer) FillRect(dst render.Image, x, y, width, height float32, clr color.Color) {
	c := canvas(dst)

	x0, x1 := pixelSpan(float64(x), float64(x+width))
	y0, y1 := pixelSpan(float64(y), float64(y+height))
	rect := image.Rect(x0, y0, x1, y1).Intersect(c.img.Rect)
	if rect.Empty() {
		return
	}
	draw.Draw(c.img, rect, image.NewUniform(clr), image.Point{}, draw.Over)
}

func (r *Renderer) FillPolygon(dst render.Image, points []render.Vec2, clr color.Color) {
	if len(points) < 3 {
		return
	}
	c := canvas(dst)
	z := r.rasterizer(c)

	z.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		z.LineTo(p.X, p.Y)
	}
	z.ClosePath()
	r.paint(c, clr)
}

func (r *Renderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	if radius <= 0 {
		return
	}
	c := canvas(dst)
	z := r.rasterizer(c)

	arc(z, x, y, radius, 1)
	r.paint(c, clr)
}

// StrokeCircle fills the ring between radius-strokeWidth/2 and
// radius+strokeWidth/2. The inner circle runs the other way so it cuts a hole.
func (r *Renderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	half := strokeWidth / 2
	if half <= 0 || radius+half <= 0 {
		return
	}
	c := canvas(dst)
	z := r.rasterizer(c)

	arc(z, x, y, radius+half, 1)
	if inner := radius - half; inner > 0 {
		arc(z, x, y, inner, -1)
	}
	r.paint(c, clr)
}

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// arc appends a closed circle of four cubic segments. dir 1 runs clockwise on
// a y-down canvas, -1 counter-clockwise.
func arc(z *vector.Rasterizer, cx, cy, radius, dir float32) {
	k := radius * kappa
	ry, ky := radius*dir, k*dir

	z.MoveTo(cx+radius, cy)
	z.CubeTo(cx+radius, cy+ky, cx+k, cy+ry, cx, cy+ry)
	z.CubeTo(cx-k, cy+ry, cx-radius, cy+ky, cx-radius, cy)
	z.CubeTo(cx-radius, cy-ky, cx-k, cy-ry, cx, cy-ry)
	z.CubeTo(cx+k, cy-ry, cx+radius, cy-ky, cx+radius, cy)
	z.ClosePath()
}

// DrawText queues text to be written onto the terminal cell under (x, y).
func (r *Renderer) DrawText(dst render.Image, text string, x, y int, clr color.Color, scale float64) {
	c := canvas(dst)
	c.texts = append(c.texts, textRun{x: x, y: y, text: text, clr: color.RGBAModel.Convert(clr).(color.RGBA)})
}

func (r *Renderer) MeasureText(text string, scale float64) (width, height int) {
	return int(float64(len([]rune(text))*GlyphWidth) * scale), int(GlyphHeight * scale)
}

// pixelSpan returns the half-open range of pixel indices whose centres fall in [lo, hi).
func pixelSpan(lo, hi float64) (int, int) {
	return int(math.Ceil(lo - 0.5)), int(math.Ceil(hi - 0.5))
}
