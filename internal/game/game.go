package game

import (
	"time"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/lantern/internal/config"
	"chosenoffset.com/lantern/internal/logger"
	"chosenoffset.com/lantern/internal/pkg/clock"
	"chosenoffset.com/lantern/internal/render"
	"chosenoffset.com/lantern/internal/ui/hud"
)

// Game implements render.Game: it samples input, steps the controller on the
// clock and draws the latest frame.
type Game struct {
	ScreenWidth  int
	ScreenHeight int

	state      *State
	controller *Controller
	renderer   render.Renderer
	input      render.InputManager
	clock      clock.Clock
	hud        *hud.HUD
	winHold    time.Duration

	now time.Time
	log *logrus.Entry
}

// New builds a run from cfg. The maze is generated immediately and the run
// clock starts at clk.Now().
func New(cfg *config.Config, r render.Renderer, in render.InputManager, clk clock.Clock) (*Game, error) {
	now := clk.Now()
	state, err := NewState(cfg, now)
	if err != nil {
		return nil, err
	}

	g := &Game{
		ScreenWidth:  cfg.Window.Width,
		ScreenHeight: cfg.Window.Height,
		state:        state,
		controller:   NewController(state),
		renderer:     r,
		input:        in,
		clock:        clk,
		hud:          hud.New(cfg.HUD, cfg.Window.Width, cfg.Window.Height),
		winHold:      cfg.WinHold(),
		now:          now,
		log:          logger.Component("game").WithField("seed", state.Seed),
	}
	g.hud.SetStatus(state.Lantern.Fraction(now), 0)

	return g, nil
}

// State exposes the run state
func (g *Game) State() *State {
	return g.state
}

// Update handles game logic updates. It returns render.ErrQuit on Escape or
// once the win message has been shown for the configured hold.
func (g *Game) Update() error {
	if g.input.IsKeyJustPressed(render.KeyEscape) {
		g.log.Info("run abandoned")
		return render.ErrQuit
	}

	now := g.clock.Now()
	if g.state.Phase == Finished {
		if now.Sub(g.state.FinishedAt) >= g.winHold {
			return render.ErrQuit
		}
		return nil
	}

	g.controller.Step(g.readInput(), now)
	g.now = now
	g.hud.SetStatus(g.state.Lantern.Fraction(now), g.state.Elapsed(now))

	return nil
}

func (g *Game) readInput() Input {
	pressed := func(keys ...render.Key) bool {
		for _, k := range keys {
			if g.input.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}
	return Input{
		Up:    pressed(render.KeyUp, render.KeyW),
		Down:  pressed(render.KeyDown, render.KeyS),
		Left:  pressed(render.KeyLeft, render.KeyA),
		Right: pressed(render.KeyRight, render.KeyD),
	}
}

// Draw renders the latest frame.
func (g *Game) Draw(screen render.Image) {
	DrawFrame(screen, g.renderer, g.state.Frame(g.now), g.hud)
}

// Layout returns the game's logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenWidth, g.ScreenHeight
}
