// Package input maps raw device state into the per-tick movement snapshot.
package input

import (
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/automoto/goldenfps/movement"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Source is the raw device state for one tick. Front-ends implement it.
type Source interface {
	Pressed(a config.ActionID) bool
	JustPressed(a config.ActionID) bool
	PointerDelta() (dx, dy float32)
	Scroll() float32
}

// Mapper turns a Source into a movement.Input and owns the scroll modifiers,
// which accumulate across ticks.
type Mapper struct {
	cfg     *config.InputConfig
	enabled bool

	LeanDegreeMod   float32
	CrouchDegreeMod float32
}

// NewMapper returns an enabled mapper with both modifiers at 1.
func NewMapper(cfg *config.InputConfig) *Mapper {
	return &Mapper{
		cfg:             cfg,
		enabled:         true,
		LeanDegreeMod:   1,
		CrouchDegreeMod: 1,
	}
}

// Enabled reports whether device input reaches the controller.
func (m *Mapper) Enabled() bool {
	return m.enabled
}

// SetEnabled gates device input, e.g. while the cursor is released.
func (m *Mapper) SetEnabled(enabled bool) {
	m.enabled = enabled
}

// Map reads the source, updates pitch and yaw on the state and returns the
// snapshot for this tick. A disabled mapper returns a neutral snapshot and
// leaves the view untouched.
func (m *Mapper) Map(src Source, s *movement.State) movement.Input {
	in := movement.Input{
		LeanDegreeMod:   m.LeanDegreeMod,
		CrouchDegreeMod: m.CrouchDegreeMod,
	}
	if !m.enabled || src == nil {
		return in
	}

	dx, dy := src.PointerDelta()
	yawDelta, pitchDelta := m.Look(s, dx, dy)
	in.Look = mgl32.Vec2{yawDelta, pitchDelta}

	in.Move = mathutil.ClampLength(mgl32.Vec2{
		axis(src, config.ActionMoveRight, config.ActionMoveLeft),
		axis(src, config.ActionMoveForward, config.ActionMoveBack),
	}, 1)
	in.Jump = src.Pressed(config.ActionJump)
	in.Crouch = src.Pressed(config.ActionCrouch)
	in.Lean = axis(src, config.ActionLeanRight, config.ActionLeanLeft)
	in.Fly = axis(src, config.ActionFlyUp, config.ActionFlyDown)
	in.ToggleFly = src.JustPressed(config.ActionToggleFly)

	if scroll := src.Scroll(); scroll != 0 {
		step := scroll * m.cfg.ScrollStep
		if in.Crouch {
			m.CrouchDegreeMod = mathutil.Saturate(m.CrouchDegreeMod + step)
		} else {
			m.LeanDegreeMod = mathutil.Saturate(m.LeanDegreeMod + step)
		}
		in.LeanDegreeMod = m.LeanDegreeMod
		in.CrouchDegreeMod = m.CrouchDegreeMod
	}
	return in
}

// Look applies a pointer delta to the state's view angles and returns the
// yaw and pitch change actually applied.
func (m *Mapper) Look(s *movement.State, dx, dy float32) (yawDelta, pitchDelta float32) {
	limit := math32.Pi/2 - m.cfg.PitchEpsilon
	pitch := mathutil.Clamp(s.Pitch-dy*m.cfg.SensitivityY, -limit, limit)
	yaw := mathutil.WrapAngle(s.Yaw - dx*m.cfg.SensitivityX)

	yawDelta, pitchDelta = mathutil.WrapAngle(yaw-s.Yaw), pitch-s.Pitch
	s.Pitch, s.Yaw = pitch, yaw
	return yawDelta, pitchDelta
}

func axis(src Source, positive, negative config.ActionID) float32 {
	var v float32
	if src.Pressed(positive) {
		v++
	}
	if src.Pressed(negative) {
		v--
	}
	return v
}
