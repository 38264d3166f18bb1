// Package main is the entry point for the lantern maze game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"chosenoffset.com/lantern/internal/config"
	"chosenoffset.com/lantern/internal/logger"
)

var (
	configPath string
	logLevel   string
	logFormat  string
	logFile    string

	seed     int64
	width    int
	height   int
	stations int
)

var rootCmd = &cobra.Command{
	Use:   "lantern",
	Short: "Escape a dark maze before your lantern burns out",
	Long: `Lantern generates a random perfect maze and drops you in its top-left corner.
Your lantern dims over time; yellow stations refuel it. Reach the blue cell in
the bottom-right corner to escape.`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runPlay,
}

func main() {
	err := rootCmd.Execute()
	// PersistentPostRunE is skipped when RunE fails
	logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a JSON config file")
	pf.StringVar(&logLevel, "log-level", "", "log level (defaults to $LOG_LEVEL, then info)")
	pf.StringVar(&logFormat, "log-format", "", "log format: text or json (defaults to $LOG_FORMAT)")
	pf.StringVar(&logFile, "log-file", "", "append logs to this file instead of stderr")
	pf.Int64Var(&seed, "seed", 0, "maze seed, 0 picks one from the clock")
	pf.IntVar(&width, "width", 0, "maze width in cells (odd)")
	pf.IntVar(&height, "height", 0, "maze height in cells (odd)")
	pf.IntVar(&stations, "stations", 0, "number of refuel stations")

	addPlayFlags(rootCmd.Flags())
	addPlayFlags(playCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(mazeCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	logger.Init(logLevel, logFormat)
	if logFile != "" {
		if err := logger.OpenFile(logFile); err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
	}
	logger.SetRunID(logger.NewRunID())
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if err := logger.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}

// loadConfig reads the config file and applies any flag overrides on top.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if flags.Changed("seed") {
		cfg.Maze.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Maze.Width = width
	}
	if flags.Changed("height") {
		cfg.Maze.Height = height
	}
	if flags.Changed("stations") {
		cfg.Maze.Stations = stations
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Component("config").WithField("path", configPath).Debug("config loaded")
	return cfg, nil
}
