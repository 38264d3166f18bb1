// Package config provides the startup configuration for a lantern maze run.
// Values come from DefaultConfig, overlaid by an optional JSON file, overlaid by
// command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"chosenoffset.com/lantern/internal/errors"
	"chosenoffset.com/lantern/internal/ui/hud"
)

// Config holds all tunables for a run
type Config struct {
	Window   WindowConfig   `json:"window"`
	Maze     MazeConfig     `json:"maze"`
	Lantern  LanternConfig  `json:"lantern"`
	Movement MovementConfig `json:"movement"`
	Loop     LoopConfig     `json:"loop"`
	HUD      hud.Config     `json:"hud"`
}

// WindowConfig defines the viewport in pixels
type WindowConfig struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
}

// MazeConfig defines the grid and what is stamped on it
type MazeConfig struct {
	Width    int   `json:"width"`     // Cells, must be odd
	Height   int   `json:"height"`    // Cells, must be odd
	CellSize int   `json:"cell_size"` // Pixels per cell
	Stations int   `json:"stations"`  // Refuel stations to place
	Seed     int64 `json:"seed"`      // 0 = time based
}

// LanternConfig defines how visibility decays
type LanternConfig struct {
	MaxView      float64 `json:"max_view"`      // Cells visible right after a refuel
	MinView      float64 `json:"min_view"`      // Floor the lantern never dims below
	DecaySeconds float64 `json:"decay_seconds"` // Seconds to lose one cell of view
}

// MovementConfig defines the player step and collision probe
type MovementConfig struct {
	Step            float64 `json:"step"`              // Pixels per tick per axis
	ProbeHalfExtent float64 `json:"probe_half_extent"` // Half side of the collision square
}

// LoopConfig defines frame pacing and the end-of-game hold
type LoopConfig struct {
	TPS            int     `json:"tps"`
	WinHoldSeconds float64 `json:"win_hold_seconds"`
}

// DefaultConfig returns the classic setup: a 41x51 maze of 32px cells seen through
// a 400x300 window.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  400,
			Height: 300,
			Title:  "Lantern",
		},
		Maze: MazeConfig{
			Width:    41,
			Height:   51,
			CellSize: 32,
			Stations: 10,
		},
		Lantern: LanternConfig{
			MaxView:      8,
			MinView:      1,
			DecaySeconds: 12,
		},
		Movement: MovementConfig{
			Step:            3,
			ProbeHalfExtent: 3,
		},
		Loop: LoopConfig{
			TPS:            60,
			WinHoldSeconds: 1,
		},
		HUD: hud.DefaultConfig(),
	}
}

// Load reads a JSON config file on top of the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.InvalidArgument(err.Error()), "failed to parse config %s", path)
	}

	return cfg, nil
}

// Validate reports every inconsistent field at once.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		vb.Fieldf("window", "size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}

	if c.Maze.Width < 3 || c.Maze.Width%2 == 0 {
		vb.Fieldf("maze.width", "must be odd and at least 3, got %d", c.Maze.Width)
	}
	if c.Maze.Height < 3 || c.Maze.Height%2 == 0 {
		vb.Fieldf("maze.height", "must be odd and at least 3, got %d", c.Maze.Height)
	}
	if c.Maze.CellSize <= 0 {
		vb.Fieldf("maze.cell_size", "must be positive, got %d", c.Maze.CellSize)
	}
	if c.Maze.Stations < 0 {
		vb.Fieldf("maze.stations", "must not be negative, got %d", c.Maze.Stations)
	} else if free := c.FreeCells(); free >= 0 && c.Maze.Stations > free {
		vb.Fieldf("maze.stations", "%d requested but the maze only has %d free ground cells", c.Maze.Stations, free)
	}

	if c.Lantern.MinView <= 0 {
		vb.Fieldf("lantern.min_view", "must be positive, got %v", c.Lantern.MinView)
	}
	if c.Lantern.MaxView < c.Lantern.MinView {
		vb.Fieldf("lantern.max_view", "must be at least min_view %v, got %v", c.Lantern.MinView, c.Lantern.MaxView)
	}
	if c.Lantern.DecaySeconds <= 0 {
		vb.Fieldf("lantern.decay_seconds", "must be positive, got %v", c.Lantern.DecaySeconds)
	}

	if c.Movement.Step <= 0 {
		vb.Fieldf("movement.step", "must be positive, got %v", c.Movement.Step)
	} else if c.Maze.CellSize > 0 && c.Movement.Step+2*c.Movement.ProbeHalfExtent >= float64(c.Maze.CellSize) {
		vb.Fieldf("movement.step", "step %v with probe %v could jump a %dpx wall in one tick",
			c.Movement.Step, c.Movement.ProbeHalfExtent, c.Maze.CellSize)
	}
	if c.Movement.ProbeHalfExtent < 0 {
		vb.Fieldf("movement.probe_half_extent", "must not be negative, got %v", c.Movement.ProbeHalfExtent)
	} else if c.Maze.CellSize > 0 && 2*c.Movement.ProbeHalfExtent >= float64(c.Maze.CellSize) {
		vb.Fieldf("movement.probe_half_extent", "probe %v does not fit a %dpx corridor", c.Movement.ProbeHalfExtent, c.Maze.CellSize)
	}

	if c.Loop.TPS <= 0 {
		vb.Fieldf("loop.tps", "must be positive, got %d", c.Loop.TPS)
	}
	if c.Loop.WinHoldSeconds < 0 {
		vb.Fieldf("loop.win_hold_seconds", "must not be negative, got %v", c.Loop.WinHoldSeconds)
	}

	if !hud.ValidPosition(c.HUD.Position) {
		vb.Fieldf("hud.position", "unknown corner %q", c.HUD.Position)
	}
	if c.HUD.Opacity < 0 || c.HUD.Opacity > 1 {
		vb.Fieldf("hud.opacity", "must be within [0, 1], got %v", c.HUD.Opacity)
	}

	return vb.Build()
}

// FreeCells is the number of ground cells left for stations once the maze is carved
// and the end is stamped: every room plus the rooms-1 corridors of the spanning
// tree, minus the end cell. Returns -1 for invalid dimensions.
func (c *Config) FreeCells() int {
	if c.Maze.Width < 3 || c.Maze.Height < 3 || c.Maze.Width%2 == 0 || c.Maze.Height%2 == 0 {
		return -1
	}
	rooms := (c.Maze.Width / 2) * (c.Maze.Height / 2)
	return 2*rooms - 2
}

// DecayUnit is the time it takes the lantern to lose one cell of view.
func (c *Config) DecayUnit() time.Duration {
	return time.Duration(c.Lantern.DecaySeconds * float64(time.Second))
}

// WinHold is how long the win message stays up before the loop ends.
func (c *Config) WinHold() time.Duration {
	return time.Duration(c.Loop.WinHoldSeconds * float64(time.Second))
}
