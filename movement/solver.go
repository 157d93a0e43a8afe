// Package movement is the per-tick locomotion solver: it turns an input
// snapshot and probe results into velocity changes, collider resizes and
// orientation for one character controller.
package movement

import (
	"fmt"

	"github.com/automoto/goldenfps/collider"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/automoto/goldenfps/probe"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidCollider aliases the collider package sentinel so hosts can check
// it without importing collider.
var ErrInvalidCollider = collider.ErrInvalidCollider

var forwardAxis = mgl32.Vec3{0, 0, 1}

// Validate checks that a config can drive a controller. A wrong collider
// family is fatal: the probe geometry assumes an upright cylinder or capsule.
func Validate(c *config.Controller) error {
	if err := collider.Validate(collider.FromConfig(c)); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("controller %q: %w", c.Name, err)
	}
	return nil
}

// Classify picks the mode from the ground probe alone.
func Classify(c *config.Controller, ground probe.Hit, flying bool) Mode {
	switch {
	case flying && c.Capabilities.Fly:
		return ModeFlying
	case !ground.Hit:
		return ModeAirborne
	case ground.Walkable(c.TractionNormalCutoff):
		return ModeGrounded
	}
	return ModeSliding
}

// Tick advances one controller by dt. It is pure: the same arguments always
// produce the same state and output.
func Tick(c *config.Controller, s State, in Input, p probe.Result, k Kinematics, dt float32) (State, Output) {
	in = in.sanitized()
	next := s
	if next.SinceJump < MaxGroundTick {
		next.SinceJump++
	}
	mass := k.Mass
	if mass <= 0 {
		mass = c.Mass
	}

	if !c.Capabilities.Fly {
		next.Flying = false
	} else if in.ToggleFly {
		next.Flying = !next.Flying
	}

	mode := Classify(c, p.Bottom, next.Flying)
	out := Output{Mode: mode}

	next.LeanDegree = leanStep(c, s.LeanDegree, in, p, mode, dt)
	next.CrouchDegree = crouchStep(c, s.CrouchDegree, in, p, mode, dt)

	v := k.Velocity
	if mode == ModeFlying {
		v = flyVelocity(c, next, in)
		next.GroundTick = 0
		out.Kinematic = true
	} else {
		v = walkVelocity(c, s, &next, in, p, mode, v, mass, dt, &out)
	}

	// Lean peeks sideways and rolls the view about the forward axis.
	right := mathutil.Right(next.Yaw)
	out.LeanShift = right.Mul(c.LeanSideImpulse * (next.LeanDegree - s.LeanDegree) * dt)
	roll := -mathutil.Sign(next.LeanDegree) * easeUnit(Easing(c.LeanRollEase), math32.Abs(next.LeanDegree)) * c.MaxLeanRoll
	out.Rotation = mathutil.YawRotation(next.Yaw).Mul(mgl32.QuatRotate(roll, forwardAxis))

	out.HalfHeight = next.HalfHeight(c)
	out.Reshape = math32.Abs(out.HalfHeight-k.HalfHeight) > c.ShapeEpsilon

	// A jump leaves the ground this tick, so it gets the air material.
	if mode == ModeGrounded && !out.Jumped {
		out.Friction = c.GroundFriction
		out.LinearDamping = c.GroundDamping
	} else {
		out.Friction = c.AirFriction
		out.LinearDamping = c.AirDamping
	}

	out.Velocity = v
	out.VelocityDelta = v.Sub(k.Velocity)
	if c.Drive == config.DriveImpulse {
		out.Impulse = out.VelocityDelta.Mul(mass)
	}

	next.Mode = mode
	return next, out
}

// walkVelocity runs the acceleration, gravity, traction and spring steps for
// the non-flying modes.
func walkVelocity(c *config.Controller, prev State, next *State, in Input, p probe.Result,
	mode Mode, v mgl32.Vec3, mass, dt float32, out *Output) mgl32.Vec3 {
	grounded := mode == ModeGrounded

	dir, amount := WishDirection(next.Yaw, in.Move)
	maxSpeed := MaxSpeed(c, *next, mode)
	wishSpeed := math32.Min(amount*maxSpeed, maxSpeed)
	if mode == ModeSliding {
		dir = mathutil.NormalizeOrZero(mathutil.RemoveComponent(dir, p.Bottom.Normal))
	}
	out.WishDirection = dir
	out.WishSpeed = wishSpeed

	if grounded && c.Friction > 0 {
		v = ApplyFriction(v, c.Friction, c.StopSpeed, dt)
	}

	rate := c.AirAcceleration
	if grounded {
		rate = c.Acceleration
	}
	v = Accelerate(v, dir, wishSpeed, rate, dt)

	v = v.Sub(mathutil.Up.Mul(c.Gravity * dt))

	switch mode {
	case ModeAirborne:
		next.GroundTick = 0
		return v
	case ModeSliding:
		return v
	}

	n := p.Bottom.Normal
	landing := prev.Mode != ModeGrounded
	out.Landed = landing

	// Into-surface velocity is removed every grounded tick unless a spring owns
	// the vertical axis; any remaining bounce is removed on the landing tick.
	if vn := v.Dot(n); landing || (vn < 0 && !c.Capabilities.Spring) {
		v = v.Sub(n.Mul(vn))
	}

	if in.Jump && next.GroundTick >= c.JumpGateTicks {
		v = mgl32.Vec3{v.X(), c.JumpSpeed, v.Z()}
		next.GroundTick = 0
		next.SinceJump = 0
		out.Jumped = true
		return v
	}
	if next.GroundTick < MaxGroundTick {
		next.GroundTick++
	}

	// The spring stays off while a fresh jump is still inside probe range.
	if c.Capabilities.Spring && next.SinceJump > c.JumpGateTicks {
		f := SpringForce(c, p.Bottom.Distance, v.Y(), mass)
		out.SpringForce = mathutil.Up.Mul(f)
		v = v.Add(mathutil.Up.Mul(f / mass * dt))
	}
	return v
}

// flyVelocity returns the kinematic velocity for noclip flight: the wish
// direction follows pitch, and the fly axis moves along world up.
func flyVelocity(c *config.Controller, s State, in Input) mgl32.Vec3 {
	look := mathutil.YawRotation(s.Yaw).Mul(mgl32.QuatRotate(s.Pitch, mgl32.Vec3{1, 0, 0}))
	wish := look.Rotate(mgl32.Vec3{in.Move.X(), 0, -in.Move.Y()}).Add(mathutil.Up.Mul(in.Fly))
	amount := math32.Min(wish.Len(), 1)
	return mathutil.NormalizeOrZero(wish).Mul(amount * c.FlySpeed)
}

// WishDirection rotates the movement axes by yaw, forward mapping to -Z.
// It returns a unit direction and the input magnitude, or zero for both when
// the input is degenerate.
func WishDirection(yaw float32, move mgl32.Vec2) (mgl32.Vec3, float32) {
	world := mathutil.YawRotation(yaw).Rotate(mgl32.Vec3{move.X(), 0, -move.Y()})
	l := world.Len()
	if l <= mathutil.Epsilon {
		return mgl32.Vec3{}, 0
	}
	return world.Mul(1 / l), math32.Min(l, 1)
}

// MaxSpeed is the wish speed cap for the mode, lowered by crouch and lean.
func MaxSpeed(c *config.Controller, s State, mode Mode) float32 {
	base := c.AirSpeed
	if mode == ModeGrounded {
		base = c.WalkSpeed
	}
	crouch := 1 - s.CrouchDegree*(1-c.CrouchSpeedFactor)
	lean := 1 - math32.Abs(s.LeanDegree)*(1-c.LeanSpeedFactor)
	return base * crouch * lean
}

// Accelerate adds speed along wishdir without exceeding wishSpeed along it.
func Accelerate(v, wishdir mgl32.Vec3, wishSpeed, rate, dt float32) mgl32.Vec3 {
	add := wishSpeed - v.Dot(wishdir)
	if add <= 0 {
		return v
	}
	accel := math32.Min(rate*wishSpeed*dt, add)
	return v.Add(wishdir.Mul(accel))
}

// ApplyFriction slows horizontal velocity; speeds below stopSpeed lose speed
// as if moving at stopSpeed.
func ApplyFriction(v mgl32.Vec3, friction, stopSpeed, dt float32) mgl32.Vec3 {
	h := mathutil.Horizontal(v)
	speed := h.Len()
	if speed <= mathutil.Epsilon {
		return mgl32.Vec3{0, v.Y(), 0}
	}
	control := math32.Max(speed, stopSpeed)
	drop := control * friction * dt
	scale := math32.Max(speed-drop, 0) / speed
	return mgl32.Vec3{v.X() * scale, v.Y(), v.Z() * scale}
}

// SpringForce is the vertical force holding the body SpringRestGap above
// the ground: a damped spring plus gravity compensation.
func SpringForce(c *config.Controller, distance, verticalVelocity, mass float32) float32 {
	omega := 2 * math32.Pi * c.SpringFrequency
	k := mass * omega * omega
	damping := 2 * mass * c.SpringDampingRatio * omega
	return k*(c.SpringRestGap-distance) - damping*verticalVelocity + mass*c.Gravity
}

// leanStep moves the lean degree toward the input target, limited by how
// much room the wall probes report on each side.
func leanStep(c *config.Controller, lean float32, in Input, p probe.Result, mode Mode, dt float32) float32 {
	target := float32(0)
	if c.Capabilities.Lean && mode != ModeFlying {
		target = in.Lean * in.LeanDegreeMod
	}

	maxLeft, maxRight := float32(1), float32(1)
	if p.Left.Hit {
		maxLeft = mathutil.Saturate(p.Left.Distance / c.WallProbeDistance)
	}
	if p.Right.Hit {
		maxRight = mathutil.Saturate(p.Right.Distance / c.WallProbeDistance)
	}
	target = mathutil.Clamp(target, -maxLeft, maxRight)

	if diff := target - lean; math32.Abs(diff) > c.LeanDeadzone {
		lean += diff * math32.Min(1, c.LeaningSpeed*dt)
	} else {
		lean = target
	}
	return mathutil.Clamp(lean, -maxLeft, maxRight)
}

// crouchStep moves the crouch degree toward the input target at CrouchSpeed.
// Standing up is refused while the ceiling probe reports less room than the
// taller collider needs.
func crouchStep(c *config.Controller, crouch float32, in Input, p probe.Result, mode Mode, dt float32) float32 {
	target := float32(0)
	if c.Capabilities.Crouch && in.Crouch && mode != ModeFlying {
		target = in.CrouchDegreeMod
	}

	want := mathutil.MoveToward(crouch, target, c.CrouchSpeed*dt)
	if want < crouch && p.Top.Hit {
		// The collider grows upward with its feet anchored.
		growth := 2 * (HalfHeightFor(c, want) - HalfHeightFor(c, crouch))
		if p.Top.Distance < growth {
			return mathutil.Saturate(crouch)
		}
	}
	return mathutil.Saturate(want)
}
