package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"chosenoffset.com/lantern/internal/world/maze"
)

var solve bool

var mazeCmd = &cobra.Command{
	Use:   "maze",
	Short: "Print a generated maze as text",
	Long: `Generate a maze with the current settings and print it. Stations show as 'o',
the end as 'E'. With --solve the path from the start is traced with '.'.`,
	RunE: runMaze,
}

func init() {
	mazeCmd.Flags().BoolVar(&solve, "solve", false, "trace the path from start to end")
}

func runMaze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	rng, used := maze.NewRand(cfg.Maze.Seed)
	grid, err := maze.Generate(maze.Config{Width: cfg.Maze.Width, Height: cfg.Maze.Height}, rng)
	if err != nil {
		return err
	}
	end := maze.MarkEnd(grid)
	if _, err := maze.PlaceStations(grid, cfg.Maze.Stations, rng); err != nil {
		return err
	}

	marks := map[maze.Point]rune{maze.Start: 'S'}
	if solve {
		for _, p := range maze.Solve(grid, maze.Start, end) {
			if grid.At(p.X, p.Y) == maze.Ground && p != maze.Start {
				marks[p] = '.'
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "seed %d\n", used)
	return grid.Render(cmd.OutOrStdout(), marks)
}
