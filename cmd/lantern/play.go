package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"chosenoffset.com/lantern/internal/game"
	"chosenoffset.com/lantern/internal/logger"
	"chosenoffset.com/lantern/internal/pkg/clock"
	"chosenoffset.com/lantern/internal/render"
	ebitenrender "chosenoffset.com/lantern/internal/render/ebiten"
	"chosenoffset.com/lantern/internal/render/terminal"
	"chosenoffset.com/lantern/internal/ui/hud"
)

var backend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round (default)",
	Long:  `Play one round in a window, or in the terminal with --backend terminal.`,
	RunE:  runPlay,
}

func addPlayFlags(fs *pflag.FlagSet) {
	fs.StringVar(&backend, "backend", "ebiten", "render backend: ebiten or terminal")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	var (
		renderer render.Renderer
		input    render.InputManager
		engine   render.Engine
	)
	switch backend {
	case "ebiten":
		renderer = ebitenrender.NewRenderer()
		input = ebitenrender.NewInputManager()
		engine = ebitenrender.NewEngine()
	case "terminal":
		if logFile == "" {
			// the terminal backend owns the screen
			logger.SetOutput(io.Discard)
		}
		te := terminal.NewEngine()
		renderer = te.Renderer()
		input = te.Input()
		engine = te
	default:
		return fmt.Errorf("unknown backend %q, want ebiten or terminal", backend)
	}

	g, err := game.New(cfg, renderer, input, clock.New())
	if err != nil {
		return err
	}

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetTPS(cfg.Loop.TPS)

	logger.Component("cli").WithField("backend", backend).Info("starting run")
	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	if st := g.State(); st.Phase == game.Finished {
		fmt.Fprintf(cmd.OutOrStdout(), "Escaped in %s (seed %d)\n", hud.FormatElapsed(st.Elapsed(st.FinishedAt)), st.Seed)
	}
	return nil
}
