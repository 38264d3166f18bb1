package hud

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lantern/internal/render"
)

type rect struct {
	x, y, w, h float32
	clr        color.Color
}

type text struct {
	s    string
	x, y int
}

type recordingRenderer struct {
	rects []rect
	texts []text
}

func (r *recordingRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) {
	r.rects = append(r.rects, rect{x, y, w, h, clr})
}
func (r *recordingRenderer) FillPolygon(render.Image, []render.Vec2, color.Color)            {}
func (r *recordingRenderer) FillCircle(render.Image, float32, float32, float32, color.Color) {}
func (r *recordingRenderer) StrokeCircle(render.Image, float32, float32, float32, float32, color.Color) {
}
func (r *recordingRenderer) DrawText(dst render.Image, s string, x, y int, clr color.Color, scale float64) {
	r.texts = append(r.texts, text{s, x, y})
}
func (r *recordingRenderer) MeasureText(s string, scale float64) (int, int) { return len(s) * 6, 16 }

type nullImage struct{}

func (nullImage) Bounds() image.Rectangle { return image.Rect(0, 0, 400, 300) }
func (nullImage) Size() (int, int)        { return 400, 300 }
func (nullImage) Fill(color.Color)        {}
func (nullImage) Clear()                  {}
func (nullImage) Dispose()                {}

func TestDrawFullPanel(t *testing.T) {
	h := New(DefaultConfig(), 400, 300)
	h.SetStatus(0.5, 83*time.Second+400*time.Millisecond)

	r := &recordingRenderer{}
	h.Draw(nullImage{}, r)

	// panel, empty bar, fuel fill
	require.Len(t, r.rects, 3)
	assert.Equal(t, float32(margin), r.rects[0].x)
	assert.Equal(t, float32(margin), r.rects[0].y)
	assert.Equal(t, r.rects[1].w/2, r.rects[2].w)
	assert.Equal(t, fuelColor, r.rects[2].clr)

	require.Len(t, r.texts, 1)
	assert.Equal(t, "1:23.4", r.texts[0].s)
}

func TestDrawLowFuelTurnsRed(t *testing.T) {
	h := New(DefaultConfig(), 400, 300)
	h.SetStatus(0.1, 0)

	r := &recordingRenderer{}
	h.Draw(nullImage{}, r)

	require.Len(t, r.rects, 3)
	assert.Equal(t, lowColor, r.rects[2].clr)
}

func TestDrawEmptyFuelSkipsFill(t *testing.T) {
	h := New(DefaultConfig(), 400, 300)
	h.SetStatus(-1, 0)

	r := &recordingRenderer{}
	h.Draw(nullImage{}, r)

	assert.Len(t, r.rects, 2)
}

func TestDrawHiddenHUD(t *testing.T) {
	h := New(Config{Position: TopLeft}, 400, 300)

	r := &recordingRenderer{}
	h.Draw(nullImage{}, r)

	assert.False(t, h.Visible())
	assert.Empty(t, r.rects)
	assert.Empty(t, r.texts)
}

func TestPositions(t *testing.T) {
	tests := []struct {
		position string
		wantX    float32
		wantY    float32
	}{
		{TopLeft, margin, margin},
		{TopRight, 400 - panelWidth - margin, margin},
		{BottomLeft, margin, 300 - 16 - 2*padding - margin},
		{BottomRight, 400 - panelWidth - margin, 300 - 16 - 2*padding - margin},
	}

	for _, tt := range tests {
		t.Run(tt.position, func(t *testing.T) {
			h := New(Config{ShowTime: true, Position: tt.position}, 400, 300)
			r := &recordingRenderer{}
			h.Draw(nullImage{}, r)

			require.NotEmpty(t, r.rects)
			assert.Equal(t, tt.wantX, r.rects[0].x)
			assert.Equal(t, tt.wantY, r.rects[0].y)
			assert.True(t, ValidPosition(tt.position))
		})
	}

	assert.False(t, ValidPosition("center"))
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00.0", FormatElapsed(0))
	assert.Equal(t, "0:00.0", FormatElapsed(-time.Second))
	assert.Equal(t, "0:59.9", FormatElapsed(59*time.Second+999*time.Millisecond))
	assert.Equal(t, "12:05.0", FormatElapsed(12*time.Minute+5*time.Second))
}
