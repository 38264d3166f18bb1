package terminal

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"chosenoffset.com/lantern/internal/logger"
	"chosenoffset.com/lantern/internal/render"
)

// Engine runs a render.Game inside a tcell screen at a fixed tick rate.
type Engine struct {
	width, height int
	title         string
	tps           int

	input     *Input
	renderer  *Renderer
	newScreen func() (tcell.Screen, error)
	log       *logrus.Entry
}

var _ render.Engine = (*Engine)(nil)

// NewEngine creates a terminal engine with a 60 TPS loop.
func NewEngine() *Engine {
	return &Engine{
		width:     400,
		height:    300,
		tps:       60,
		input:     NewInput(),
		renderer:  &Renderer{},
		newScreen: tcell.NewScreen,
		log:       logger.Component("terminal"),
	}
}

// Input returns the input manager fed by this engine's key events.
func (e *Engine) Input() render.InputManager {
	return e.input
}

// Renderer returns the renderer that draws onto this engine's canvas.
func (e *Engine) Renderer() render.Renderer {
	return e.renderer
}

// SetWindowSize sets the logical canvas size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	e.width, e.height = width, height
}

func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

func (e *Engine) SetTPS(tps int) {
	if tps > 0 {
		e.tps = tps
	}
}

// RunGame takes over the terminal until the game quits, the user presses
// Ctrl-C, or the process receives SIGINT/SIGTERM.
func (e *Engine) RunGame(game render.Game) error {
	screen, err := e.newScreen()
	if err != nil {
		return fmt.Errorf("failed to create terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize terminal screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	e.log.WithFields(logrus.Fields{"title": e.title, "tps": e.tps}).Info("terminal backend starting")
	defer e.log.Info("terminal backend stopped")

	return e.loop(ctx, stop, screen, game)
}

func (e *Engine) loop(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, game render.Game) error {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(e.tps))
	defer ticker.Stop()

	var frame *Canvas
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyCtrlC {
					cancel()
					continue
				}
				e.input.HandleEvent(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			e.input.Tick()
			if err := game.Update(); err != nil {
				if errors.Is(err, render.ErrQuit) {
					return nil
				}
				return err
			}

			w, h := game.Layout(e.width, e.height)
			if frame == nil || frame.Bounds().Dx() != w || frame.Bounds().Dy() != h {
				frame = NewCanvas(w, h)
			}
			frame.Clear()
			game.Draw(frame)
			Blit(screen, frame)
			screen.Show()
		}
	}
}
