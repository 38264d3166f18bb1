package terminal

import (
	"github.com/gdamore/tcell/v2"

	"chosenoffset.com/lantern/internal/render"
)

// DefaultHoldTicks is how long a key counts as held after its last key event.
// Terminals only report presses and auto-repeats, never releases.
const DefaultHoldTicks = 8

// Input implements render.InputManager on top of tcell key events by treating a
// key as held until HoldTicks ticks pass without another event for it.
type Input struct {
	HoldTicks uint64

	tick  uint64
	seen  map[render.Key]uint64
	fresh map[render.Key]bool
	just  map[render.Key]bool
}

var _ render.InputManager = (*Input)(nil)

// NewInput creates an input tracker with DefaultHoldTicks
func NewInput() *Input {
	return &Input{
		HoldTicks: DefaultHoldTicks,
		seen:      make(map[render.Key]uint64),
		fresh:     make(map[render.Key]bool),
		just:      make(map[render.Key]bool),
	}
}

// Press records a key event for key.
func (in *Input) Press(key render.Key) {
	if !in.IsKeyPressed(key) {
		in.fresh[key] = true
	}
	in.seen[key] = in.tick
}

// HandleEvent records ev if it maps to a game key.
func (in *Input) HandleEvent(ev *tcell.EventKey) {
	if key, ok := keyFromEvent(ev); ok {
		in.Press(key)
	}
}

// Tick closes the current tick. Keys pressed since the previous Tick become
// just-pressed for the tick that follows.
func (in *Input) Tick() {
	in.just = in.fresh
	in.fresh = make(map[render.Key]bool)
	in.tick++
}

func (in *Input) IsKeyPressed(key render.Key) bool {
	last, ok := in.seen[key]
	return ok && in.tick-last <= in.HoldTicks
}

func (in *Input) IsKeyJustPressed(key render.Key) bool {
	return in.just[key]
}

func keyFromEvent(ev *tcell.EventKey) (render.Key, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return render.KeyUp, true
	case tcell.KeyDown:
		return render.KeyDown, true
	case tcell.KeyLeft:
		return render.KeyLeft, true
	case tcell.KeyRight:
		return render.KeyRight, true
	case tcell.KeyEscape:
		return render.KeyEscape, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return render.KeyW, true
		case 'a', 'A':
			return render.KeyA, true
		case 's', 'S':
			return render.KeyS, true
		case 'd', 'D':
			return render.KeyD, true
		}
	}
	return 0, false
}
