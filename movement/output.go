package movement

import (
	"fmt"

	"github.com/automoto/goldenfps/config"
	"github.com/go-gl/mathgl/mgl32"
)

// Output is everything a tick asks the host to do to the body.
type Output struct {
	Mode Mode

	Velocity      mgl32.Vec3 // body velocity after this tick's changes
	VelocityDelta mgl32.Vec3
	Impulse       mgl32.Vec3 // VelocityDelta scaled by mass for impulse-driven bodies
	SpringForce   mgl32.Vec3
	LeanShift     mgl32.Vec3 // lateral translation from the lean change

	WishDirection mgl32.Vec3
	WishSpeed     float32

	HalfHeight float32
	Reshape    bool

	Friction      float32
	LinearDamping float32

	Rotation  mgl32.Quat // yaw with lean roll
	Kinematic bool

	Jumped bool
	Landed bool
}

// Actuator is the body a controller drives. The reference world's bodies
// implement it; other physics backends can too.
type Actuator interface {
	AddVelocity(dv mgl32.Vec3)
	ApplyImpulse(j mgl32.Vec3)
	SetVelocity(v mgl32.Vec3)
	Translate(d mgl32.Vec3)
	SetHalfHeight(h float32) error
	SetMaterial(friction, damping float32)
	SetRotation(q mgl32.Quat)
	SetKinematic(kinematic bool)
}

// Apply pushes a tick's output into the body, choosing velocity or impulse
// application from the config drive mode.
func Apply(c *config.Controller, out Output, a Actuator) error {
	if out.Reshape {
		if err := a.SetHalfHeight(out.HalfHeight); err != nil {
			return fmt.Errorf("resize collider: %w", err)
		}
	}

	a.SetKinematic(out.Kinematic)
	switch {
	case out.Kinematic:
		a.SetVelocity(out.Velocity)
	case c.Drive == config.DriveImpulse:
		a.ApplyImpulse(out.Impulse)
	default:
		a.AddVelocity(out.VelocityDelta)
	}

	if out.LeanShift != (mgl32.Vec3{}) {
		a.Translate(out.LeanShift)
	}
	a.SetMaterial(out.Friction, out.LinearDamping)
	a.SetRotation(out.Rotation)
	return nil
}
