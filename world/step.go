package world

import (
	"github.com/automoto/goldenfps/collider"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const supportShrink = 0.9

var down = mgl32.Vec3{0, -1, 0}

// Step advances movers, then bodies, by dt. Entities update in the order
// they were added.
func (s *Space) Step(dt float32) {
	if dt <= 0 {
		return
	}
	for _, id := range s.order {
		if e := s.entities[id]; e.mover != nil {
			s.stepMover(e, dt)
		}
	}
	for _, id := range s.order {
		if e := s.entities[id]; e.body != nil {
			s.stepBody(e.body, dt)
		}
	}
	s.separate()
}

// stepMover advances a moving box and carries whatever rides on it. Riders
// move first so a rising box never swallows them.
func (s *Space) stepMover(e *entity, dt float32) {
	y, _, _ := e.mover.seq.Update(dt)
	delta := y - e.box.Min().Y()
	e.mover.delta = delta
	if delta == 0 {
		return
	}
	for _, id := range s.order {
		o := s.entities[id]
		if o.body != nil && !o.body.kinematic && s.riding(o.body.Box(), e.box) {
			s.move(o.body, mgl32.Vec3{0, delta, 0}, e.id)
		}
	}
	e.box = e.box.Translate(mgl32.Vec3{0, delta, 0})
}

// riding reports whether a body box rests on top of a platform box, within
// the ride distance.
func (s *Space) riding(body, platform cube.BBox) bool {
	blo, bhi := body.Min(), body.Max()
	plo, phi := platform.Min(), platform.Max()
	gap := blo.Y() - phi.Y()
	if gap < -s.cfg.Skin || gap > s.cfg.RideDistance {
		return false
	}
	return bhi.X() > plo.X() && blo.X() < phi.X() && bhi.Z() > plo.Z() && blo.Z() < phi.Z()
}

func (s *Space) stepBody(b *Body, dt float32) {
	if b.kinematic {
		b.position = b.position.Add(b.velocity.Mul(dt))
		b.support = 0
		s.refresh(b)
		return
	}

	v := b.velocity
	if b.gravityScale != 0 {
		v = v.Sub(mathutil.Up.Mul(s.cfg.Gravity * b.gravityScale * dt))
	}
	_, blocked := s.move(b, v.Mul(dt))
	for i, hit := range blocked {
		if hit {
			v[i] = 0
		}
	}
	if b.linearDamping > 0 {
		v = v.Mul(1 / (1 + dt*b.linearDamping))
	}

	b.support = 0
	shape := b.shape.Scaled(supportShrink, 1)
	if c, ok := s.Cast(shape, b.position, b.rotation, down, s.cfg.RideDistance, b.ID); ok && c.Normal.Y() > 0 {
		b.support = c.Body
		if b.friction > 0 {
			v = coulomb(v, b.friction*s.cfg.Gravity*dt)
		}
	}
	b.velocity = v
}

// coulomb removes up to drop from the horizontal speed.
func coulomb(v mgl32.Vec3, drop float32) mgl32.Vec3 {
	speed := mathutil.Horizontal(v).Len()
	if speed <= mathutil.Epsilon {
		return mgl32.Vec3{0, v.Y(), 0}
	}
	scale := math32.Max(speed-drop, 0) / speed
	return mgl32.Vec3{v.X() * scale, v.Y(), v.Z() * scale}
}

// move sweeps b by d one axis at a time, vertical first, clipping against
// solids and other bodies. It returns the displacement applied and which
// axes were cut short.
func (s *Space) move(b *Body, d mgl32.Vec3, exclude ...collider.BodyID) (mgl32.Vec3, [3]bool) {
	var (
		moved   mgl32.Vec3
		blocked [3]bool
	)
	if d == (mgl32.Vec3{}) {
		return moved, blocked
	}

	box := b.Box()
	others := s.nearby(box.Extend(d).Grow(s.cfg.Skin), append(exclude, b.ID)...)
	boxes := make([]cube.BBox, 0, len(others))
	for _, e := range others {
		if e.body != nil && e.body.kinematic {
			continue
		}
		boxes = append(boxes, e.box)
	}

	for _, axis := range [3]int{1, 0, 2} {
		got := clipAxis(boxes, box, axis, d[axis], s.cfg.Skin)
		blocked[axis] = got != d[axis]
		var step mgl32.Vec3
		step[axis] = got
		box = box.Translate(step)
		moved[axis] = got
	}

	b.position = b.position.Add(moved)
	s.refresh(b)
	return moved, blocked
}

// clipAxis shortens a move of the box along one axis so it stops at the
// first box in the way. Boxes merely touching on another axis do not block.
func clipAxis(boxes []cube.BBox, moving cube.BBox, axis int, d, skin float32) float32 {
	if d == 0 {
		return 0
	}
	a1, a2 := (axis+1)%3, (axis+2)%3
	lo, hi := moving.Min(), moving.Max()
	for _, o := range boxes {
		olo, ohi := o.Min(), o.Max()
		if hi[a1] <= olo[a1]+skin || lo[a1] >= ohi[a1]-skin ||
			hi[a2] <= olo[a2]+skin || lo[a2] >= ohi[a2]-skin {
			continue
		}
		switch {
		case d > 0 && hi[axis] <= olo[axis]+skin:
			d = math32.Min(d, olo[axis]-hi[axis])
		case d < 0 && lo[axis] >= ohi[axis]-skin:
			d = math32.Max(d, ohi[axis]-lo[axis])
		}
	}
	return d
}

// separate pushes overlapping bodies apart along the horizontal axis of
// least overlap.
func (s *Space) separate() {
	strength := s.cfg.PushStrength
	if strength <= 0 {
		return
	}
	for _, id := range s.order {
		e := s.entities[id]
		if e.body == nil || e.body.kinematic {
			continue
		}
		for _, o := range s.nearby(e.box, id) {
			if o.body == nil || o.body.kinematic || o.id < id {
				continue
			}
			axis, pen := overlap(e.box, o.box)
			if pen <= s.cfg.Skin {
				continue
			}
			sign := float32(1)
			if e.body.position[axis] < o.body.position[axis] {
				sign = -1
			}
			var push mgl32.Vec3
			push[axis] = sign * pen * strength / 2
			e.body.position = e.body.position.Add(push)
			o.body.position = o.body.position.Sub(push)
			s.refresh(e.body)
			s.refresh(o.body)
		}
	}
}

// overlap returns the horizontal axis with the smaller penetration of two
// boxes, or zero penetration when they are apart on any axis.
func overlap(a, b cube.BBox) (int, float32) {
	alo, ahi := a.Min(), a.Max()
	blo, bhi := b.Min(), b.Max()
	var pen [3]float32
	for i := 0; i < 3; i++ {
		pen[i] = math32.Min(ahi[i], bhi[i]) - math32.Max(alo[i], blo[i])
		if pen[i] <= 0 {
			return 0, 0
		}
	}
	if pen[0] < pen[2] {
		return 0, pen[0]
	}
	return 2, pen[2]
}

func (s *Space) refresh(b *Body) {
	e, ok := s.entities[b.ID]
	if !ok {
		return
	}
	e.box = b.Box()
	s.sync(e)
}
