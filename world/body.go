package world

import (
	"github.com/automoto/goldenfps/collider"
	"github.com/automoto/goldenfps/movement"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

var _ movement.Actuator = (*Body)(nil)

// Body is an upright dynamic body. It implements movement.Actuator.
type Body struct {
	ID collider.BodyID

	shape    collider.Shape
	position mgl32.Vec3 // centre of the shape
	velocity mgl32.Vec3
	rotation mgl32.Quat

	mass          float32
	gravityScale  float32
	friction      float32
	linearDamping float32
	kinematic     bool

	support collider.BodyID // box or body found under the body on the last step

	space *Space
}

// Box returns the body's current bounds.
func (b *Body) Box() cube.BBox {
	he := b.shape.HalfExtents()
	lo, hi := b.position.Sub(he), b.position.Add(he)
	return cube.Box(lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
}

func (b *Body) Position() mgl32.Vec3  { return b.position }
func (b *Body) Velocity() mgl32.Vec3  { return b.velocity }
func (b *Body) Rotation() mgl32.Quat  { return b.rotation }
func (b *Body) Shape() collider.Shape { return b.shape }
func (b *Body) Mass() float32         { return b.mass }
func (b *Body) Kinematic() bool       { return b.kinematic }

// BodyID returns the id casts use to exclude the body.
func (b *Body) BodyID() collider.BodyID { return b.ID }

// Feet returns the bottom centre of the body.
func (b *Body) Feet() mgl32.Vec3 {
	return b.position.Sub(mgl32.Vec3{0, b.shape.HalfHeight, 0})
}

// Support returns what the body stood on after the last step, if anything.
func (b *Body) Support() (collider.BodyID, bool) {
	return b.support, b.support != 0
}

func (b *Body) SetMass(mass float32) {
	b.mass = mass
}

// SetGravityScale scales world gravity for this body. Controllers whose
// solver owns gravity use 0.
func (b *Body) SetGravityScale(scale float32) {
	b.gravityScale = scale
}

// Teleport places the body without sweeping and clears its velocity.
func (b *Body) Teleport(pos mgl32.Vec3) {
	b.position = pos
	b.velocity = mgl32.Vec3{}
	b.support = 0
	b.space.refresh(b)
}

func (b *Body) AddVelocity(dv mgl32.Vec3) {
	b.velocity = b.velocity.Add(dv)
}

func (b *Body) ApplyImpulse(j mgl32.Vec3) {
	if b.mass <= 0 {
		b.velocity = b.velocity.Add(j)
		return
	}
	b.velocity = b.velocity.Add(j.Mul(1 / b.mass))
}

func (b *Body) SetVelocity(v mgl32.Vec3) {
	b.velocity = v
}

// Translate moves the body by d, stopping at anything in the way unless the
// body is kinematic.
func (b *Body) Translate(d mgl32.Vec3) {
	if b.kinematic {
		b.position = b.position.Add(d)
		b.space.refresh(b)
		return
	}
	b.space.move(b, d)
}

// SetHalfHeight resizes the body keeping its feet where they are.
func (b *Body) SetHalfHeight(h float32) error {
	return b.SetShape(b.shape.WithHalfHeight(h))
}

// SetShape swaps the collision volume keeping the feet where they are.
func (b *Body) SetShape(shape collider.Shape) error {
	if err := collider.Validate(shape); err != nil {
		return err
	}
	b.position = b.position.Add(mgl32.Vec3{0, shape.HalfHeight - b.shape.HalfHeight, 0})
	b.shape = shape
	b.space.refresh(b)
	return nil
}

func (b *Body) SetMaterial(friction, damping float32) {
	b.friction = friction
	b.linearDamping = damping
}

func (b *Body) SetRotation(q mgl32.Quat) {
	b.rotation = q
}

func (b *Body) SetKinematic(kinematic bool) {
	b.kinematic = kinematic
}
