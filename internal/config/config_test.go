package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/lantern/internal/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 41, cfg.Maze.Width)
	assert.Equal(t, 51, cfg.Maze.Height)
	assert.Equal(t, 12*time.Second, cfg.DecayUnit())
	assert.Equal(t, time.Second, cfg.WinHold())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lantern.json")
	data := `{
		"maze": {"width": 21, "height": 15, "seed": 42},
		"lantern": {"decay_seconds": 2.5}
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 21, cfg.Maze.Width)
	assert.Equal(t, 15, cfg.Maze.Height)
	assert.Equal(t, int64(42), cfg.Maze.Seed)
	assert.Equal(t, 2500*time.Millisecond, cfg.DecayUnit())
	// untouched sections keep their defaults
	assert.Equal(t, 32, cfg.Maze.CellSize)
	assert.Equal(t, 8.0, cfg.Lantern.MaxView)
	assert.Equal(t, 400, cfg.Window.Width)
}

func TestLoadRejectsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"maze": `), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"even width", func(c *Config) { c.Maze.Width = 40 }, "maze.width"},
		{"even height", func(c *Config) { c.Maze.Height = 50 }, "maze.height"},
		{"tiny grid", func(c *Config) { c.Maze.Width = 1 }, "maze.width"},
		{"zero cell", func(c *Config) { c.Maze.CellSize = 0 }, "maze.cell_size"},
		{"negative stations", func(c *Config) { c.Maze.Stations = -1 }, "maze.stations"},
		{"too many stations", func(c *Config) {
			c.Maze.Width, c.Maze.Height = 5, 5
			c.Maze.Stations = 7
		}, "maze.stations"},
		{"min view zero", func(c *Config) { c.Lantern.MinView = 0 }, "lantern.min_view"},
		{"max below min", func(c *Config) { c.Lantern.MaxView = 0.5 }, "lantern.max_view"},
		{"no decay", func(c *Config) { c.Lantern.DecaySeconds = 0 }, "lantern.decay_seconds"},
		{"no step", func(c *Config) { c.Movement.Step = 0 }, "movement.step"},
		{"step jumps walls", func(c *Config) { c.Movement.Step = 64 }, "movement.step"},
		{"step plus probe fills a cell", func(c *Config) { c.Movement.Step = 26 }, "movement.step"},
		{"fat probe", func(c *Config) { c.Movement.ProbeHalfExtent = 16 }, "movement.probe_half_extent"},
		{"no tps", func(c *Config) { c.Loop.TPS = 0 }, "loop.tps"},
		{"bad window", func(c *Config) { c.Window.Height = 0 }, "window"},
		{"hud corner", func(c *Config) { c.HUD.Position = "middle" }, "hud.position"},
		{"hud opacity", func(c *Config) { c.HUD.Opacity = 1.5 }, "hud.opacity"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestFreeCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Maze.Width, cfg.Maze.Height = 5, 5
	// 4 rooms, 3 corridors, minus the end
	assert.Equal(t, 6, cfg.FreeCells())

	cfg.Maze.Stations = 6
	assert.NoError(t, cfg.Validate())

	cfg.Maze.Width = 4
	assert.Equal(t, -1, cfg.FreeCells())
}
