package term

import (
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/input"
	"github.com/gdamore/tcell/v2"
)

// Look keys turn the view by the configured step per tick while held.
const (
	lookLeft  = 'j'
	lookRight = 'l'
	lookUp    = 'i'
	lookDown  = 'k'
)

// Source turns terminal events into input frames. Terminals report key
// repeats but no releases, so a key counts as held for HoldTicks ticks after
// its last event.
type Source struct {
	input.Frame

	HoldTicks int

	cfg      *config.InputConfig
	bindings Bindings
	held     [config.ActionCount]int
	look     [2]float32 // yaw and pitch pointer units queued by look keys
	lookHeld map[rune]int

	scroll float32

	mouseX, mouseY int
	mouseDown      bool
}

func NewSource(cfg *config.InputConfig) *Source {
	return &Source{
		HoldTicks: 8,
		cfg:       cfg,
		bindings:  NewBindings(cfg),
		lookHeld:  make(map[rune]int),
	}
}

// Handle records one terminal event.
func (s *Source) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			switch r := ev.Rune(); r {
			case lookLeft, lookRight, lookUp, lookDown:
				s.lookHeld[r] = s.HoldTicks
				return
			}
		}
		for _, a := range s.bindings[KeyName(ev)] {
			s.held[a] = s.HoldTicks
		}
	case *tcell.EventMouse:
		s.handleMouse(ev)
	}
}

// handleMouse turns drags with the primary button into pointer motion, one
// cell counting as ten pointer units.
func (s *Source) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	if down && s.mouseDown {
		s.look[0] += float32(x-s.mouseX) * 10
		s.look[1] += float32(y-s.mouseY) * 10
	}
	s.mouseX, s.mouseY, s.mouseDown = x, y, down
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		s.scroll++
	case ev.Buttons()&tcell.WheelDown != 0:
		s.scroll--
	}
}

// Next builds the frame for the coming tick and ages held keys.
func (s *Source) Next() *input.Frame {
	s.Frame.Advance()
	s.ScrollDelta, s.scroll = s.scroll, 0

	for a := range s.held {
		if s.held[a] > 0 {
			s.Current[a] = true
			s.held[a]--
		}
	}

	s.DX, s.DY = s.look[0], s.look[1]
	s.look = [2]float32{}
	step := s.cfg.KeyLookStep
	for r, n := range s.lookHeld {
		if n <= 0 {
			continue
		}
		switch r {
		case lookLeft:
			s.DX -= step / s.cfg.SensitivityX
		case lookRight:
			s.DX += step / s.cfg.SensitivityX
		case lookUp:
			s.DY -= step / s.cfg.SensitivityY
		case lookDown:
			s.DY += step / s.cfg.SensitivityY
		}
		s.lookHeld[r] = n - 1
	}
	return &s.Frame
}
