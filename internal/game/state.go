package game

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/lantern/internal/config"
	"chosenoffset.com/lantern/internal/core/geometry"
	"chosenoffset.com/lantern/internal/logger"
	"chosenoffset.com/lantern/internal/render/lighting"
	"chosenoffset.com/lantern/internal/world/maze"
	"chosenoffset.com/lantern/internal/world/mesh"
)

// NewState generates a maze from cfg, stamps the end and stations, and builds
// the polygon set. The player starts in the centre of maze.Start with a full
// lantern at now. A zero cfg.Maze.Seed picks a time based seed.
func NewState(cfg *config.Config, now time.Time) (*State, error) {
	rng, seed := maze.NewRand(cfg.Maze.Seed)
	log := logger.Component("world").WithField("seed", seed)

	grid, err := maze.Generate(maze.Config{Width: cfg.Maze.Width, Height: cfg.Maze.Height}, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate maze: %w", err)
	}

	end := maze.MarkEnd(grid)
	stations, err := maze.PlaceStations(grid, cfg.Maze.Stations, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to place stations: %w", err)
	}
	log.WithFields(logrus.Fields{"stations": len(stations), "end": end}).Info("stations placed")

	origin := mesh.Build(grid, cfg.Maze.CellSize)

	size := float64(cfg.Maze.CellSize)
	s := &State{
		Rules: Rules{
			CellSize:   cfg.Maze.CellSize,
			Step:       cfg.Movement.Step,
			Probe:      cfg.Movement.ProbeHalfExtent,
			ViewWidth:  cfg.Window.Width,
			ViewHeight: cfg.Window.Height,
		},
		Grid:   grid,
		Origin: origin,
		Player: Player{
			Pos:       geometry.Point{X: (float64(maze.Start.X) + 0.5) * size, Y: (float64(maze.Start.Y) + 0.5) * size},
			StartedAt: now,
		},
		Lantern:  lighting.NewLantern(cfg.Lantern.MaxView, cfg.Lantern.MinView, cfg.DecayUnit(), now),
		Stations: stations,
		End:      end,
		Seed:     seed,
	}
	s.UpdateCamera()
	s.UpdateView(now)

	return s, nil
}

// UpdateView rebuilds the view square from the lantern and clips the origin
// set against it.
func (s *State) UpdateView(now time.Time) {
	radius := s.Lantern.Radius(now, s.Rules.CellSize)
	s.View = geometry.Square(s.Player.Pos, radius)
	s.Current = s.Origin.Clip(s.View)
}
