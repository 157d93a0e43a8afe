// Package collider describes the collision volumes controllers are built from.
package collider

import (
	"errors"
	"fmt"

	"github.com/automoto/goldenfps/config"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidCollider is returned when a controller is given a shape other
// than an upright cylinder or capsule.
var ErrInvalidCollider = errors.New("controller collider must be a cylinder or capsule")

// BodyID identifies a body in the collision world. Zero means no body.
type BodyID uint32

// Shape is an upright collision volume centred on its body position.
type Shape struct {
	Kind       config.ColliderKind
	Radius     float32
	HalfHeight float32 // half the total height, caps included
}

// FromConfig builds the standing shape for a controller config.
func FromConfig(c *config.Controller) Shape {
	return Shape{
		Kind:       c.Collider,
		Radius:     c.Radius,
		HalfHeight: c.HalfHeight(),
	}
}

// Validate rejects shapes the probe geometry does not support.
func Validate(s Shape) error {
	switch s.Kind {
	case config.ColliderCylinder, config.ColliderCapsule:
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidCollider, s.Kind)
	}
	if s.Radius <= 0 || s.HalfHeight <= 0 {
		return fmt.Errorf("%w: radius %v half-height %v", ErrInvalidCollider, s.Radius, s.HalfHeight)
	}
	if s.Kind == config.ColliderCapsule && s.HalfHeight < s.Radius {
		return fmt.Errorf("%w: capsule half-height %v below radius %v", ErrInvalidCollider, s.HalfHeight, s.Radius)
	}
	return nil
}

// Scaled returns the shape shrunk or grown laterally and vertically.
func (s Shape) Scaled(lateral, vertical float32) Shape {
	s.Radius *= lateral
	s.HalfHeight *= vertical
	return s
}

// WithHalfHeight returns the shape with a new half-height.
func (s Shape) WithHalfHeight(h float32) Shape {
	s.HalfHeight = h
	return s
}

// HalfExtents returns the half size of the shape's axis-aligned bounds.
func (s Shape) HalfExtents() mgl32.Vec3 {
	return mgl32.Vec3{s.Radius, s.HalfHeight, s.Radius}
}

// Height returns the full height of the shape.
func (s Shape) Height() float32 {
	return 2 * s.HalfHeight
}
