package world

import (
	"github.com/automoto/goldenfps/collider"
	"github.com/automoto/goldenfps/mathutil"
	"github.com/automoto/goldenfps/probe"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
)

var _ probe.Caster = (*Space)(nil)

// Cast sweeps shape from origin along dir and reports the nearest box or
// body it touches within maxDist. Shapes are swept as their axis-aligned
// bounds, so the rotation of an upright shape does not change the result.
// Kinematic bodies and anything already overlapping the shape at the start
// are ignored.
func (s *Space) Cast(shape collider.Shape, origin mgl32.Vec3, _ mgl32.Quat, dir mgl32.Vec3,
	maxDist float32, exclude collider.BodyID) (probe.Contact, bool) {
	dir = mathutil.NormalizeOrZero(dir)
	if dir == (mgl32.Vec3{}) || maxDist <= 0 {
		return probe.Contact{}, false
	}

	skin := s.cfg.Skin
	he := shape.HalfExtents()
	start := origin.Sub(dir.Mul(skin))
	end := origin.Add(dir.Mul(maxDist))
	region := boxAt(origin, he).Extend(dir.Mul(maxDist)).Grow(skin)

	var (
		best  probe.Contact
		found bool
	)
	for _, e := range s.nearby(region, exclude) {
		if e.body != nil && e.body.kinematic {
			continue
		}
		expanded := e.box.GrowVec3(he)
		if strictlyInside(expanded, start) {
			continue
		}
		res, ok := trace.BBoxIntercept(expanded, start, end)
		if !ok {
			continue
		}
		hit := res.Position()
		dist := math32.Max(hit.Sub(start).Len()-skin, 0)
		if dist > maxDist || (found && dist >= best.Distance) {
			continue
		}
		best = probe.Contact{Distance: dist, Normal: faceNormal(expanded, hit, dir), Body: e.id}
		found = true
	}
	return best, found
}

func boxAt(center, halfExtents mgl32.Vec3) cube.BBox {
	lo, hi := center.Sub(halfExtents), center.Add(halfExtents)
	return cube.Box(lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
}

func strictlyInside(bb cube.BBox, p mgl32.Vec3) bool {
	lo, hi := bb.Min(), bb.Max()
	for i := 0; i < 3; i++ {
		if p[i] <= lo[i] || p[i] >= hi[i] {
			return false
		}
	}
	return true
}

// faceNormal picks the face of bb that hit lies on, considering only faces
// that oppose dir.
func faceNormal(bb cube.BBox, hit, dir mgl32.Vec3) mgl32.Vec3 {
	lo, hi := bb.Min(), bb.Max()
	best := float32(math32.MaxFloat32)
	normal := dir.Mul(-1)
	for i := 0; i < 3; i++ {
		var d, sign float32
		switch {
		case dir[i] > 0:
			d, sign = math32.Abs(hit[i]-lo[i]), -1
		case dir[i] < 0:
			d, sign = math32.Abs(hit[i]-hi[i]), 1
		default:
			continue
		}
		if d < best {
			best = d
			normal = mgl32.Vec3{}
			normal[i] = sign
		}
	}
	return normal
}
