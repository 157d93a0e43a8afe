package movement

import (
	"math"

	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/go-gl/mathgl/mgl32"
)

// Mode is the locomotion state the solver selected for a tick.
type Mode int

const (
	ModeAirborne Mode = iota
	ModeGrounded
	ModeSliding
	ModeFlying
)

func (m Mode) String() string {
	switch m {
	case ModeAirborne:
		return "airborne"
	case ModeGrounded:
		return "grounded"
	case ModeSliding:
		return "sliding"
	case ModeFlying:
		return "flying"
	}
	return "unknown"
}

// MaxGroundTick is where the grounded streak saturates.
const MaxGroundTick = math.MaxUint16

// State is the per-controller data that persists between ticks.
// Only Tick and the input mapper write to it.
type State struct {
	CrouchDegree float32 // 0 standing, 1 fully crouched
	LeanDegree   float32 // -1 full left, 1 full right
	GroundTick   uint16  // consecutive grounded ticks
	SinceJump    uint16  // ticks since the last jump
	Pitch        float32
	Yaw          float32
	Mode         Mode // mode solved on the previous tick
	Flying       bool
}

// NewState returns a standing, airborne state looking along pitch and yaw.
func NewState(c *config.Controller, pitch, yaw float32) State {
	return State{
		Pitch:     pitch,
		Yaw:       mathutil.WrapAngle(yaw),
		Mode:      ModeAirborne,
		Flying:    c.Capabilities.Fly && c.StartFlying,
		SinceJump: MaxGroundTick,
	}
}

// HalfHeight returns the collider half-height for this state's crouch degree.
func (s State) HalfHeight(c *config.Controller) float32 {
	return HalfHeightFor(c, s.CrouchDegree)
}

// HalfHeightFor maps a crouch degree to a collider half-height. It decreases
// monotonically from the standing half-height at 0 to CrouchHeightRatio of it at 1.
func HalfHeightFor(c *config.Controller, crouch float32) float32 {
	h := c.HalfHeight() * (1 - mathutil.Saturate(crouch)*(1-c.CrouchHeightRatio))
	if c.Collider == config.ColliderCapsule && h < c.Radius {
		h = c.Radius
	}
	return h
}

// Input is the per-tick command produced by the input mapper.
type Input struct {
	Move      mgl32.Vec2 // x right, y forward; length at most 1
	Look      mgl32.Vec2 // yaw and pitch change already applied to the state
	Jump      bool
	Crouch    bool
	Lean      float32 // -1 left, 1 right
	Fly       float32 // -1 down, 1 up
	ToggleFly bool

	LeanDegreeMod   float32 // scales the lean target, [0,1]
	CrouchDegreeMod float32 // crouch target while crouch is held, [0,1]
}

// sanitized clamps every field into its documented range.
func (in Input) sanitized() Input {
	in.Move = mathutil.ClampLength(in.Move, 1)
	in.Lean = mathutil.Clamp(in.Lean, -1, 1)
	in.Fly = mathutil.Clamp(in.Fly, -1, 1)
	in.LeanDegreeMod = mathutil.Saturate(in.LeanDegreeMod)
	in.CrouchDegreeMod = mathutil.Saturate(in.CrouchDegreeMod)
	return in
}

// Kinematics is the body data the solver reads.
type Kinematics struct {
	Velocity   mgl32.Vec3
	Mass       float32
	HalfHeight float32 // current collider half-height
}
