package input

import (
	"testing"

	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/movement"
	"github.com/chewxy/math32"
)

func approxEqual(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v (tol %v)", field, got, want, tol)
	}
}

func press(f *Frame, actions ...config.ActionID) {
	for _, a := range actions {
		f.Current[a] = true
	}
}

func TestMapMovementAxes(t *testing.T) {
	tests := []struct {
		name    string
		actions []config.ActionID
		x, y    float32
	}{
		{"none", nil, 0, 0},
		{"forward", []config.ActionID{config.ActionMoveForward}, 0, 1},
		{"back", []config.ActionID{config.ActionMoveBack}, 0, -1},
		{"left", []config.ActionID{config.ActionMoveLeft}, -1, 0},
		{"right", []config.ActionID{config.ActionMoveRight}, 1, 0},
		{"opposed", []config.ActionID{config.ActionMoveLeft, config.ActionMoveRight}, 0, 0},
		{"diagonal", []config.ActionID{config.ActionMoveForward, config.ActionMoveRight}, 0.70710677, 0.70710677},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMapper(&config.Input)
			f := &Frame{}
			press(f, tt.actions...)
			var s movement.State
			in := m.Map(f, &s)
			approxEqual(t, in.Move.X(), tt.x, 1e-6, "move x")
			approxEqual(t, in.Move.Y(), tt.y, 1e-6, "move y")
			if in.Move.Len() > 1+1e-6 {
				t.Errorf("move length %v above 1", in.Move.Len())
			}
		})
	}
}

func TestMapButtons(t *testing.T) {
	m := NewMapper(&config.Input)
	f := &Frame{}
	press(f, config.ActionJump, config.ActionCrouch, config.ActionLeanLeft, config.ActionFlyUp, config.ActionToggleFly)
	var s movement.State
	in := m.Map(f, &s)
	if !in.Jump || !in.Crouch || !in.ToggleFly {
		t.Errorf("jump/crouch/toggle = %v/%v/%v", in.Jump, in.Crouch, in.ToggleFly)
	}
	if in.Lean != -1 || in.Fly != 1 {
		t.Errorf("lean = %v fly = %v", in.Lean, in.Fly)
	}

	// Held on the next tick: no longer a fresh toggle.
	f.Advance()
	press(f, config.ActionToggleFly)
	if in = m.Map(f, &s); in.ToggleFly {
		t.Error("held toggle reported again")
	}
}

func TestLookPitchClamped(t *testing.T) {
	cfg := config.Input
	m := NewMapper(&cfg)
	var s movement.State
	limit := math32.Pi/2 - cfg.PitchEpsilon

	m.Look(&s, 0, -1e6)
	approxEqual(t, s.Pitch, limit, 1e-6, "pitch up")
	m.Look(&s, 0, 1e6)
	approxEqual(t, s.Pitch, -limit, 1e-6, "pitch down")

	s.Pitch = 0
	m.Look(&s, 0, 100)
	approxEqual(t, s.Pitch, -100*cfg.SensitivityY, 1e-6, "pitch after small move")
}

func TestLookYawWraps(t *testing.T) {
	cfg := config.Input
	cfg.SensitivityX = 0.01
	m := NewMapper(&cfg)
	s := movement.State{Yaw: 3}

	// Turning left by 0.5 rad from 3 crosses -π.
	yawDelta, _ := m.Look(&s, -50, 0)
	approxEqual(t, s.Yaw, 3.5-2*math32.Pi, 1e-5, "yaw")
	approxEqual(t, yawDelta, 0.5, 1e-5, "yaw delta")

	for i := 0; i < 1000; i++ {
		m.Look(&s, -37, 0)
		if s.Yaw <= -math32.Pi || s.Yaw > math32.Pi {
			t.Fatalf("yaw %v outside (-π, π]", s.Yaw)
		}
	}
}

func TestScrollModifiersClamp(t *testing.T) {
	m := NewMapper(&config.Input)
	var s movement.State

	f := &Frame{ScrollDelta: 100}
	in := m.Map(f, &s)
	if in.LeanDegreeMod != 1 {
		t.Errorf("lean mod = %v, want clamped 1", in.LeanDegreeMod)
	}

	f = &Frame{ScrollDelta: -3}
	in = m.Map(f, &s)
	approxEqual(t, in.LeanDegreeMod, 1-3*config.Input.ScrollStep, 1e-6, "lean mod")
	if in.CrouchDegreeMod != 1 {
		t.Errorf("crouch mod = %v, want untouched 1", in.CrouchDegreeMod)
	}

	f = &Frame{ScrollDelta: -100}
	press(f, config.ActionCrouch)
	in = m.Map(f, &s)
	if in.CrouchDegreeMod != 0 {
		t.Errorf("crouch mod = %v, want clamped 0", in.CrouchDegreeMod)
	}
}

func TestDisabledMapperIsNeutral(t *testing.T) {
	m := NewMapper(&config.Input)
	m.SetEnabled(false)
	f := &Frame{DX: 500, DY: 500}
	press(f, config.ActionMoveForward, config.ActionJump)
	s := movement.State{Pitch: 0.2, Yaw: 1}

	in := m.Map(f, &s)
	if in.Move.Len() != 0 || in.Jump {
		t.Errorf("disabled input leaked: %+v", in)
	}
	if s.Pitch != 0.2 || s.Yaw != 1 {
		t.Errorf("view changed while disabled: pitch %v yaw %v", s.Pitch, s.Yaw)
	}
	if in.LeanDegreeMod != 1 || in.CrouchDegreeMod != 1 {
		t.Errorf("modifiers = %v/%v, want 1/1", in.LeanDegreeMod, in.CrouchDegreeMod)
	}
}

func TestFrameAction(t *testing.T) {
	f := &Frame{}
	press(f, config.ActionJump)
	if st := f.Action(config.ActionJump); !st.Pressed || !st.JustPressed || st.JustReleased {
		t.Errorf("first tick = %+v", st)
	}
	f.Advance()
	if st := f.Action(config.ActionJump); st.Pressed || !st.JustReleased {
		t.Errorf("release tick = %+v", st)
	}
	if st := f.Action(config.ActionCount); st != (ActionState{}) {
		t.Errorf("out of range action = %+v", st)
	}
}
