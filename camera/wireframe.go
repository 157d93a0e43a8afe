package camera

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	nearPlane = 0.05
	farPlane  = 500
)

// Segment is a line in screen pixels.
type Segment struct {
	A, B mgl32.Vec2
}

// boxEdges indexes corner pairs; corner bit 0 is x, bit 1 is y, bit 2 is z.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7},
	{0, 2}, {1, 3}, {4, 6}, {5, 7},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Wireframe projects the edges of boxes seen from the transform onto a
// width by height screen with the given vertical field of view. Edges are
// clipped against the near plane; anything behind the eye is dropped.
func (t Transform) Wireframe(boxes []cube.BBox, fov float32, width, height int) []Segment {
	if width <= 0 || height <= 0 {
		return nil
	}
	view := t.View()
	proj := mgl32.Perspective(fov, float32(width)/float32(height), nearPlane, farPlane)
	toScreen := func(v mgl32.Vec3) mgl32.Vec2 {
		clip := proj.Mul4x1(v.Vec4(1))
		ndc := clip.Vec3().Mul(1 / clip.W())
		return mgl32.Vec2{(ndc.X() + 1) / 2 * float32(width), (1 - ndc.Y()) / 2 * float32(height)}
	}

	segs := make([]Segment, 0, len(boxes)*len(boxEdges))
	for _, box := range boxes {
		lo, hi := box.Min(), box.Max()
		var corners [8]mgl32.Vec3
		for i := range corners {
			c := lo
			if i&1 != 0 {
				c[0] = hi[0]
			}
			if i&2 != 0 {
				c[1] = hi[1]
			}
			if i&4 != 0 {
				c[2] = hi[2]
			}
			corners[i] = view.Mul4x1(c.Vec4(1)).Vec3()
		}
		for _, e := range boxEdges {
			a, b, ok := clipNear(corners[e[0]], corners[e[1]])
			if !ok {
				continue
			}
			segs = append(segs, Segment{toScreen(a), toScreen(b)})
		}
	}
	return segs
}

// clipNear trims an eye-space segment to the part in front of the near plane.
func clipNear(a, b mgl32.Vec3) (mgl32.Vec3, mgl32.Vec3, bool) {
	const z = -nearPlane
	aIn, bIn := a.Z() <= z, b.Z() <= z
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	}
	t := (z - a.Z()) / (b.Z() - a.Z())
	p := a.Add(b.Sub(a).Mul(t))
	if aIn {
		return a, p, true
	}
	return p, b, true
}
