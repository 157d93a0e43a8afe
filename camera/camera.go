// Package camera projects a controller's logical body transform into the
// transform a renderer draws from.
package camera

import (
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/go-gl/mathgl/mgl32"
)

var pitchAxis = mgl32.Vec3{1, 0, 0}

// Transform is a position and orientation in world space.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Identity is the transform at the origin looking down -Z.
var Identity = Transform{Rotation: mgl32.QuatIdent()}

// Sync returns the eye transform for a body. The eye sits on top of the
// collider, so it follows crouch, shifted by the configured height offset.
// The body rotation already carries yaw and lean roll; pitch is added here.
func Sync(body Transform, halfHeight, pitch float32, cfg *config.CameraConfig) Transform {
	offset := halfHeight + cfg.HeightOffset
	return Transform{
		Position: body.Position.Add(mathutil.Up.Mul(offset)),
		Rotation: body.Rotation.Mul(mgl32.QuatRotate(pitch, pitchAxis)).Normalize(),
	}
}

// Forward is the direction the transform looks along.
func (t Transform) Forward() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{0, 0, -1})
}

// Up is the transform's local up axis.
func (t Transform) Up() mgl32.Vec3 {
	return t.Rotation.Rotate(mathutil.Up)
}

// Right is the transform's local right axis.
func (t Transform) Right() mgl32.Vec3 {
	return t.Rotation.Rotate(mgl32.Vec3{1, 0, 0})
}

// View returns the world-to-eye matrix.
func (t Transform) View() mgl32.Mat4 {
	eye := t.Position
	return mgl32.LookAtV(eye, eye.Add(t.Forward()), t.Up())
}
