package config

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
)

// ErrInvalidConfig is returned when a controller config fails validation.
var ErrInvalidConfig = errors.New("invalid controller config")

// ColliderKind names the collision volume family a controller uses.
type ColliderKind string

const (
	ColliderCylinder ColliderKind = "cylinder"
	ColliderCapsule  ColliderKind = "capsule"
	ColliderCuboid   ColliderKind = "cuboid"
	ColliderSphere   ColliderKind = "sphere"
)

// DriveMode selects how the solver output reaches the body.
type DriveMode string

const (
	// DriveVelocity adds the velocity delta to the body directly.
	DriveVelocity DriveMode = "velocity"
	// DriveImpulse converts the velocity delta into an impulse scaled by mass.
	DriveImpulse DriveMode = "impulse"
)

// Capabilities is the feature set a controller preset enables.
type Capabilities struct {
	Lean   bool `yaml:"lean"`
	Crouch bool `yaml:"crouch"`
	Fly    bool `yaml:"fly"`
	Spring bool `yaml:"spring"`
}

// Controller contains all tuning values for one character controller.
// A Controller is set when the character is created and is never mutated afterwards.
type Controller struct {
	Name string `yaml:"name"`

	// Body
	Collider ColliderKind `yaml:"collider"`
	Radius   float32      `yaml:"radius"`
	Height   float32      `yaml:"height"`
	Mass     float32      `yaml:"mass"`
	Drive    DriveMode    `yaml:"drive"`

	Capabilities Capabilities `yaml:"capabilities"`

	// Speeds
	WalkSpeed         float32 `yaml:"walk_speed"`
	AirSpeed          float32 `yaml:"air_speed"`
	CrouchSpeedFactor float32 `yaml:"crouch_speed_factor"` // Walk speed multiplier at full crouch
	LeanSpeedFactor   float32 `yaml:"lean_speed_factor"`   // Walk speed multiplier at full lean
	FlySpeed          float32 `yaml:"fly_speed"`
	StartFlying       bool    `yaml:"start_flying"`

	// Acceleration
	Acceleration    float32 `yaml:"acceleration"`
	AirAcceleration float32 `yaml:"air_acceleration"`

	// Stop-speed friction applied by the solver itself (0 disables)
	Friction  float32 `yaml:"friction"`
	StopSpeed float32 `yaml:"stop_speed"`

	// Contact friction and velocity damping handed to the physics body
	GroundFriction float32 `yaml:"ground_friction"`
	GroundDamping  float32 `yaml:"ground_damping"`
	AirFriction    float32 `yaml:"air_friction"`
	AirDamping     float32 `yaml:"air_damping"`

	// Vertical
	Gravity       float32 `yaml:"gravity"`
	JumpSpeed     float32 `yaml:"jump_speed"`
	JumpGateTicks uint16  `yaml:"jump_gate_ticks"`

	// Ground probe
	TractionNormalCutoff   float32 `yaml:"traction_normal_cutoff"` // cos of the steepest walkable slope
	GroundedDistance       float32 `yaml:"grounded_distance"`
	GroundShrink           float32 `yaml:"ground_shrink"`
	LeanGroundCompensation float32 `yaml:"lean_ground_compensation"`

	// Wall probes
	WallProbeDistance   float32 `yaml:"wall_probe_distance"`
	WallCastHeightScale float32 `yaml:"wall_cast_height_scale"`

	// Lean
	LeaningSpeed    float32 `yaml:"leaning_speed"`
	LeanDeadzone    float32 `yaml:"lean_deadzone"`
	LeanSideImpulse float32 `yaml:"lean_side_impulse"`
	MaxLeanRoll     float32 `yaml:"max_lean_roll"` // radians at full lean
	LeanRollEase    string  `yaml:"lean_roll_ease"`

	// Crouch
	CrouchSpeed       float32 `yaml:"crouch_speed"`
	CrouchHeightRatio float32 `yaml:"crouch_height_ratio"` // height at full crouch / standing height
	ShapeEpsilon      float32 `yaml:"shape_epsilon"`

	// Ground spring
	SpringFrequency    float32 `yaml:"spring_frequency"`
	SpringDampingRatio float32 `yaml:"spring_damping_ratio"`
	SpringRestGap      float32 `yaml:"spring_rest_gap"`
}

// HalfHeight returns the standing collider half-height.
func (c *Controller) HalfHeight() float32 {
	return c.Height / 2
}

// MaxSlopeAngle returns the steepest walkable slope in radians.
func (c *Controller) MaxSlopeAngle() float32 {
	return math32.Acos(c.TractionNormalCutoff)
}

// Validate reports the first out-of-range value, wrapped in ErrInvalidConfig.
func (c *Controller) Validate() error {
	switch {
	case c.Radius <= 0:
		return fmt.Errorf("%w: radius %v must be positive", ErrInvalidConfig, c.Radius)
	case c.Height <= 2*c.Radius && c.Collider == ColliderCapsule:
		return fmt.Errorf("%w: capsule height %v must exceed its diameter", ErrInvalidConfig, c.Height)
	case c.Height <= 0:
		return fmt.Errorf("%w: height %v must be positive", ErrInvalidConfig, c.Height)
	case c.Mass <= 0:
		return fmt.Errorf("%w: mass %v must be positive", ErrInvalidConfig, c.Mass)
	case c.Drive != DriveVelocity && c.Drive != DriveImpulse:
		return fmt.Errorf("%w: unknown drive mode %q", ErrInvalidConfig, c.Drive)
	case c.GroundShrink < 0.7 || c.GroundShrink > 0.95:
		return fmt.Errorf("%w: ground shrink %v outside [0.7, 0.95]", ErrInvalidConfig, c.GroundShrink)
	case c.TractionNormalCutoff < 0 || c.TractionNormalCutoff >= 1:
		return fmt.Errorf("%w: traction cutoff %v outside [0, 1)", ErrInvalidConfig, c.TractionNormalCutoff)
	case c.GroundedDistance <= 0:
		return fmt.Errorf("%w: grounded distance %v must be positive", ErrInvalidConfig, c.GroundedDistance)
	case c.WallProbeDistance <= 0:
		return fmt.Errorf("%w: wall probe distance %v must be positive", ErrInvalidConfig, c.WallProbeDistance)
	case c.CrouchHeightRatio <= 0 || c.CrouchHeightRatio > 1:
		return fmt.Errorf("%w: crouch height ratio %v outside (0, 1]", ErrInvalidConfig, c.CrouchHeightRatio)
	case c.Capabilities.Spring && (c.SpringFrequency <= 0 || c.SpringDampingRatio <= 0):
		return fmt.Errorf("%w: spring needs positive frequency and damping ratio", ErrInvalidConfig)
	case c.Capabilities.Spring && c.SpringRestGap >= c.GroundedDistance:
		return fmt.Errorf("%w: spring rest gap %v must be below grounded distance %v",
			ErrInvalidConfig, c.SpringRestGap, c.GroundedDistance)
	}
	return nil
}
