package game

import (
	"fmt"
	"image/color"
	"time"

	"chosenoffset.com/lantern/internal/core/geometry"
	"chosenoffset.com/lantern/internal/render"
	"chosenoffset.com/lantern/internal/ui/hud"
	"chosenoffset.com/lantern/internal/world/mesh"
)

// Palette
var (
	BackgroundColor = color.RGBA{255, 255, 255, 255}
	DarknessColor   = color.RGBA{0, 0, 0, 255}
	WallColor       = color.RGBA{130, 57, 53, 255}
	StationColor    = color.RGBA{244, 208, 0, 255}
	EndColor        = color.RGBA{0, 0, 170, 255}
	PlayerColor     = color.RGBA{252, 213, 11, 255}
	BannerColor     = color.RGBA{20, 20, 20, 220}
	BannerTextColor = color.RGBA{255, 255, 255, 255}
)

// PlayerRadius is the drawn size of the player dot
const PlayerRadius = 3

// Frame is everything the renderer needs for one picture, in world pixels.
type Frame struct {
	Polygons mesh.Set
	Camera   Camera
	View     geometry.Polygon
	Player   geometry.Point
	Fuel     float64 // Lantern level mapped to [0, 1]
	Elapsed  time.Duration
	Phase    Phase
}

// Frame snapshots the state for drawing at now
func (s *State) Frame(now time.Time) Frame {
	return Frame{
		Polygons: s.Current,
		Camera:   s.Camera,
		View:     s.View,
		Player:   s.Player.Pos,
		Fuel:     s.Lantern.Fraction(now),
		Elapsed:  s.Elapsed(now),
		Phase:    s.Phase,
	}
}

// DrawFrame paints f onto screen: lit polygons on a white floor, darkness
// outside the lantern square, the player, the HUD and the win banner.
func DrawFrame(screen render.Image, r render.Renderer, f Frame, h *hud.HUD) {
	screen.Fill(BackgroundColor)

	drawPolygons(screen, r, f.Polygons.Walls, f.Camera, WallColor)
	drawPolygons(screen, r, f.Polygons.Stations, f.Camera, StationColor)
	drawPolygons(screen, r, f.Polygons.Ends, f.Camera, EndColor)

	drawDarkness(screen, r, f.View, f.Camera)

	r.FillCircle(screen, float32(f.Player.X-f.Camera.X), float32(f.Player.Y-f.Camera.Y), PlayerRadius, PlayerColor)

	if h != nil {
		h.Draw(screen, r)
	}

	if f.Phase == Finished {
		drawBanner(screen, r, fmt.Sprintf("You escaped! %s", hud.FormatElapsed(f.Elapsed)))
	}
}

func drawPolygons(screen render.Image, r render.Renderer, polygons []geometry.Polygon, cam Camera, clr color.Color) {
	for _, poly := range polygons {
		if len(poly) < 3 {
			continue
		}
		r.FillPolygon(screen, toScreen(poly, cam), clr)
	}
}

func toScreen(poly geometry.Polygon, cam Camera) []render.Vec2 {
	points := make([]render.Vec2, len(poly))
	for i, p := range poly {
		points[i] = render.Vec2{X: float32(p.X - cam.X), Y: float32(p.Y - cam.Y)}
	}
	return points
}

// drawDarkness blacks out the four bands around the view square.
func drawDarkness(screen render.Image, r render.Renderer, view geometry.Polygon, cam Camera) {
	w, h := screen.Size()
	sw, sh := float32(w), float32(h)
	if len(view) != 4 {
		r.FillRect(screen, 0, 0, sw, sh, DarknessColor)
		return
	}

	x1 := float32(view[0].X - cam.X)
	y1 := float32(view[0].Y - cam.Y)
	x2 := float32(view[2].X - cam.X)
	y2 := float32(view[2].Y - cam.Y)

	bands := [4][4]float32{
		{0, 0, x1, sh},
		{0, 0, sw, y1},
		{x2, 0, sw - x2, sh},
		{0, y2, sw, sh - y2},
	}
	for _, b := range bands {
		if b[2] <= 0 || b[3] <= 0 {
			continue
		}
		r.FillRect(screen, b[0], b[1], b[2], b[3], DarknessColor)
	}
}

func drawBanner(screen render.Image, r render.Renderer, msg string) {
	w, h := screen.Size()
	tw, th := r.MeasureText(msg, 1)

	x := (w - tw) / 2
	y := (h - th) / 2
	r.FillRect(screen, float32(x-8), float32(y-6), float32(tw+16), float32(th+12), BannerColor)
	r.DrawText(screen, msg, x, y, BannerTextColor, 1)
}
