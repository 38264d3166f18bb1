// Package hud draws the lantern fuel gauge and the run clock on top of the maze.
package hud

import (
	"fmt"
	"image/color"
	"time"

	"chosenoffset.com/lantern/internal/render"
)

// Positions accepted by Config.Position
const (
	TopLeft     = "top-left"
	TopRight    = "top-right"
	BottomLeft  = "bottom-left"
	BottomRight = "bottom-right"
)

// Config defines what to display in the HUD
type Config struct {
	ShowFuel bool    `json:"show_fuel"` // Show the lantern fuel bar
	ShowTime bool    `json:"show_time"` // Show time since the run started
	Position string  `json:"position"`  // "top-left", "top-right", "bottom-left", "bottom-right"
	Opacity  float64 `json:"opacity"`   // Background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration
func DefaultConfig() Config {
	return Config{
		ShowFuel: true,
		ShowTime: true,
		Position: TopLeft,
		Opacity:  0.7,
	}
}

// ValidPosition reports whether p names a screen corner
func ValidPosition(p string) bool {
	switch p {
	case TopLeft, TopRight, BottomLeft, BottomRight:
		return true
	}
	return false
}

const (
	margin     = 8
	padding    = 6
	panelWidth = 120
	barHeight  = 8
	lineHeight = 16
)

var (
	fuelColor  = color.RGBA{244, 208, 0, 255}
	lowColor   = color.RGBA{200, 50, 50, 255}
	emptyColor = color.RGBA{60, 40, 20, 255}
	textColor  = color.RGBA{255, 255, 255, 255}
)

// HUD manages the heads-up display
type HUD struct {
	config       Config
	screenWidth  int
	screenHeight int

	fuel    float64
	elapsed time.Duration
}

// New creates a new HUD with the given configuration
func New(config Config, screenWidth, screenHeight int) *HUD {
	return &HUD{
		config:       config,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetStatus updates the displayed fuel fraction (0-1) and run time
func (h *HUD) SetStatus(fuel float64, elapsed time.Duration) {
	h.fuel = min(max(fuel, 0), 1)
	h.elapsed = elapsed
}

// Visible reports whether there is anything to draw
func (h *HUD) Visible() bool {
	return h.config.ShowFuel || h.config.ShowTime
}

// Draw renders the HUD to the screen
func (h *HUD) Draw(screen render.Image, r render.Renderer) {
	if !h.Visible() {
		return
	}

	height := h.panelHeight()
	x, y := h.calculatePosition(height)

	alpha := uint8(h.config.Opacity * 255)
	r.FillRect(screen, float32(x), float32(y), panelWidth, float32(height), color.RGBA{0, 0, 0, alpha})

	currentY := y + padding
	if h.config.ShowFuel {
		currentY = h.drawFuelBar(screen, r, x+padding, currentY)
	}
	if h.config.ShowTime {
		r.DrawText(screen, FormatElapsed(h.elapsed), x+padding, currentY, textColor, 1)
	}
}

func (h *HUD) panelHeight() int {
	height := 2 * padding
	if h.config.ShowFuel {
		height += barHeight + padding
	}
	if h.config.ShowTime {
		height += lineHeight
	}
	return height
}

func (h *HUD) calculatePosition(height int) (int, int) {
	switch h.config.Position {
	case TopRight:
		return h.screenWidth - panelWidth - margin, margin
	case BottomLeft:
		return margin, h.screenHeight - height - margin
	case BottomRight:
		return h.screenWidth - panelWidth - margin, h.screenHeight - height - margin
	default:
		return margin, margin
	}
}

// drawFuelBar draws the lantern gauge and returns the next free y
func (h *HUD) drawFuelBar(screen render.Image, r render.Renderer, x, y int) int {
	barWidth := panelWidth - 2*padding
	r.FillRect(screen, float32(x), float32(y), float32(barWidth), barHeight, emptyColor)

	if h.fuel > 0 {
		fill := fuelColor
		if h.fuel < 0.25 {
			fill = lowColor
		}
		r.FillRect(screen, float32(x), float32(y), float32(float64(barWidth)*h.fuel), barHeight, fill)
	}

	return y + barHeight + padding
}

// FormatElapsed renders a duration as m:ss.t
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
