// Package mathutil holds small float32 helpers shared by the controller packages.
package mathutil

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the float32 machine epsilon used as the degenerate-vector threshold.
const Epsilon float32 = 1.1920929e-07

// Up is the world up axis.
var Up = mgl32.Vec3{0, 1, 0}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Saturate restricts v to [0, 1].
func Saturate(v float32) float32 {
	return Clamp(v, 0, 1)
}

// Sign returns -1, 0 or 1.
func Sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// WrapAngle wraps an angle into (-π, π]. Angles already inside are returned unchanged.
func WrapAngle(a float32) float32 {
	if a == -math32.Pi {
		return math32.Pi
	}
	if math32.Abs(a) <= math32.Pi {
		return a
	}
	a = math32.Mod(a+math32.Pi, 2*math32.Pi)
	if a <= 0 {
		a += 2 * math32.Pi
	}
	return a - math32.Pi
}

// MoveToward steps current toward target by at most step.
func MoveToward(current, target, step float32) float32 {
	if current < target {
		return math32.Min(current+step, target)
	}
	return math32.Max(current-step, target)
}

// NormalizeOrZero returns v normalized, or the zero vector when its length is
// at or below Epsilon.
func NormalizeOrZero(v mgl32.Vec3) mgl32.Vec3 {
	l := v.Len()
	if l <= Epsilon {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / l)
}

// ClampLength scales v down so its length does not exceed max.
func ClampLength(v mgl32.Vec2, max float32) mgl32.Vec2 {
	l := v.Len()
	if l <= max || l <= Epsilon {
		return v
	}
	return v.Mul(max / l)
}

// Horizontal drops the vertical component.
func Horizontal(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{v.X(), 0, v.Z()}
}

// RemoveComponent removes the part of v along the unit axis n.
func RemoveComponent(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(v.Dot(n)))
}

// YawRotation returns the rotation about +Y by yaw radians.
func YawRotation(yaw float32) mgl32.Quat {
	return mgl32.QuatRotate(yaw, Up)
}

// Forward returns the horizontal forward vector for a yaw (-Z at yaw 0).
func Forward(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{-math32.Sin(yaw), 0, -math32.Cos(yaw)}
}

// Right returns the horizontal right vector for a yaw (+X at yaw 0).
func Right(yaw float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(yaw), 0, -math32.Sin(yaw)}
}

// ApproxEqual reports whether a and b differ by at most tol.
func ApproxEqual(a, b, tol float32) bool {
	return math32.Abs(a-b) <= tol
}
