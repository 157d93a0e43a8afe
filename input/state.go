package input

import "github.com/automoto/goldenfps/config"

// ActionState is one action's held state plus its edges on this tick.
type ActionState struct {
	Pressed      bool
	JustPressed  bool // up last tick, down now
	JustReleased bool // down last tick, up now
}

// Frame stores the current and previous tick's pressed state for all actions
// plus the pointer motion gathered this tick. Front-ends fill it; it
// implements Source.
type Frame struct {
	Current  [config.ActionCount]bool
	Previous [config.ActionCount]bool

	DX, DY      float32
	ScrollDelta float32
}

// Advance starts a new tick: current becomes previous and motion is cleared.
func (f *Frame) Advance() {
	f.Previous = f.Current
	f.Current = [config.ActionCount]bool{}
	f.DX, f.DY, f.ScrollDelta = 0, 0, 0
}

// Action returns the temporal state of an action.
func (f *Frame) Action(a config.ActionID) ActionState {
	if a < 0 || a >= config.ActionCount {
		return ActionState{}
	}
	return ActionState{
		Pressed:      f.Current[a],
		JustPressed:  f.Current[a] && !f.Previous[a],
		JustReleased: !f.Current[a] && f.Previous[a],
	}
}

func (f *Frame) Pressed(a config.ActionID) bool {
	return f.Action(a).Pressed
}

func (f *Frame) JustPressed(a config.ActionID) bool {
	return f.Action(a).JustPressed
}

func (f *Frame) PointerDelta() (dx, dy float32) {
	return f.DX, f.DY
}

func (f *Frame) Scroll() float32 {
	return f.ScrollDelta
}
