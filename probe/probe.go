// Package probe issues the four per-tick shape-casts a controller needs:
// ground below, ceiling above and walls on either side.
package probe

import (
	"github.com/automoto/goldenfps/collider"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Contact is the first surface a cast touches.
type Contact struct {
	Distance float32
	Normal   mgl32.Vec3
	Body     collider.BodyID
}

// Caster sweeps a shape through the world and reports the first contact.
// Bodies matching exclude are ignored.
type Caster interface {
	Cast(shape collider.Shape, origin mgl32.Vec3, rot mgl32.Quat, dir mgl32.Vec3,
		maxDist float32, exclude collider.BodyID) (Contact, bool)
}

// Hit is one direction's report. A miss always carries a zero normal.
type Hit struct {
	Hit      bool
	Distance float32
	Normal   mgl32.Vec3
}

// Miss is the report for a cast that touched nothing.
var Miss = Hit{}

// Walkable reports whether the hit is a contact whose normal is within the
// traction cutoff.
func (h Hit) Walkable(cutoff float32) bool {
	return h.Hit && h.Normal.Dot(mathutil.Up) > cutoff
}

// Result holds the four reports for one tick. It has no memory of earlier ticks.
type Result struct {
	Bottom Hit
	Top    Hit
	Left   Hit
	Right  Hit
}

// Pose is where and what the controller body is this tick.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Shape    collider.Shape
	Body     collider.BodyID
}

// Prober runs the casts against a Caster.
type Prober struct {
	Caster Caster
}

// Probe casts down, up, left and right from the pose. Yaw orients the wall
// probes and lean widens the ground probe.
func (p Prober) Probe(c *config.Controller, pose Pose, yaw, lean float32) Result {
	footprint := pose.Shape.Scaled(c.GroundShrink, 1)
	side := pose.Shape.Scaled(1, c.WallCastHeightScale)
	right := mathutil.Right(yaw)

	return Result{
		Bottom: p.cast(footprint, pose, mgl32.Vec3{0, -1, 0}, c.GroundedDistance+c.LeanGroundCompensation*math32.Abs(lean)),
		Top:    p.cast(footprint, pose, mathutil.Up, c.Height),
		Left:   p.cast(side, pose, right.Mul(-1), c.WallProbeDistance),
		Right:  p.cast(side, pose, right, c.WallProbeDistance),
	}
}

func (p Prober) cast(shape collider.Shape, pose Pose, dir mgl32.Vec3, maxDist float32) Hit {
	if p.Caster == nil || maxDist <= 0 {
		return Miss
	}
	contact, ok := p.Caster.Cast(shape, pose.Position, pose.Rotation, dir, maxDist, pose.Body)
	if !ok || contact.Distance > maxDist {
		return Miss
	}
	return Hit{
		Hit:      true,
		Distance: math32.Max(contact.Distance, 0),
		Normal:   contact.Normal,
	}
}
