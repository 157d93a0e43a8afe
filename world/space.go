// Package world is the reference collision world controllers run in: static
// and moving boxes plus upright bodies, a swept shape-cast query and a fixed
// step integrator.
package world

import (
	"math"
	"sort"

	"github.com/automoto/goldenfps/collider"
	"github.com/automoto/goldenfps/config"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	tagSolid = "solid"
	tagMover = "mover"
	tagBody  = "body"
	tagQuery = "query"
)

// entity is anything a cast or a clip can touch.
type entity struct {
	id    collider.BodyID
	box   cube.BBox
	obj   *resolv.Object
	body  *Body  // nil for boxes
	mover *mover // nil unless the box moves
}

type mover struct {
	seq   *gween.Sequence
	delta float32 // Y change of the last step
}

// Space owns every entity and the XZ broadphase grid over them.
type Space struct {
	cfg    *config.WorldConfig
	grid   *resolv.Space
	offset mgl32.Vec2 // world XZ to grid coordinates
	bounds cube.BBox

	entities map[collider.BodyID]*entity
	order    []collider.BodyID
	nextID   collider.BodyID
}

// NewSpace returns an empty space covering bounds plus the configured margin.
// Entities outside the covered area are still simulated but lose broadphase
// culling.
func NewSpace(bounds cube.BBox, cfg *config.WorldConfig) *Space {
	margin := cfg.Margin
	lo, hi := bounds.Min(), bounds.Max()
	width := int(math.Ceil(float64(hi.X()-lo.X()+2*margin))) + 1
	depth := int(math.Ceil(float64(hi.Z()-lo.Z()+2*margin))) + 1
	cell := cfg.CellSize
	if cell <= 0 {
		cell = 4
	}

	return &Space{
		cfg:      cfg,
		grid:     resolv.NewSpace(width, depth, cell, cell),
		offset:   mgl32.Vec2{margin - lo.X(), margin - lo.Z()},
		bounds:   bounds,
		entities: make(map[collider.BodyID]*entity),
		nextID:   1,
	}
}

// Bounds returns the area the space was built for.
func (s *Space) Bounds() cube.BBox {
	return s.bounds
}

// AddSolid adds a static box.
func (s *Space) AddSolid(box cube.BBox) collider.BodyID {
	return s.add(&entity{box: box}, tagSolid)
}

// AddMover adds a box that travels up by rise and back down again over
// period seconds, eased in and out.
func (s *Space) AddMover(box cube.BBox, rise, period float32) collider.BodyID {
	base := box.Min().Y()
	half := period / 2
	if half <= 0 {
		half = 1
	}
	seq := gween.NewSequence(
		gween.New(base, base+rise, half, ease.InOutSine),
		gween.New(base+rise, base, half, ease.InOutSine),
	)
	seq.SetLoop(-1)
	return s.add(&entity{box: box, mover: &mover{seq: seq}}, tagSolid, tagMover)
}

// AddBody adds an upright body standing with its centre at pos.
func (s *Space) AddBody(shape collider.Shape, pos mgl32.Vec3, mass float32) *Body {
	b := &Body{
		shape:        shape,
		position:     pos,
		rotation:     mgl32.QuatIdent(),
		mass:         mass,
		gravityScale: 1,
		space:        s,
	}
	e := &entity{box: b.Box(), body: b}
	b.ID = s.add(e, tagBody)
	return b
}

// Body returns the body with the given id.
func (s *Space) Body(id collider.BodyID) (*Body, bool) {
	e, ok := s.entities[id]
	if !ok || e.body == nil {
		return nil, false
	}
	return e.body, true
}

// Box returns the current box of any entity.
func (s *Space) Box(id collider.BodyID) (cube.BBox, bool) {
	e, ok := s.entities[id]
	if !ok {
		return cube.BBox{}, false
	}
	return e.box, true
}

// Remove deletes an entity. Unknown ids are ignored.
func (s *Space) Remove(id collider.BodyID) {
	e, ok := s.entities[id]
	if !ok {
		return
	}
	s.grid.Remove(e.obj)
	delete(s.entities, id)
	for i, o := range s.order {
		if o == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of entities.
func (s *Space) Len() int {
	return len(s.entities)
}

func (s *Space) add(e *entity, tags ...string) collider.BodyID {
	e.id = s.nextID
	s.nextID++

	x, z, w, d := s.footprint(e.box)
	e.obj = resolv.NewObject(x, z, w, d, tags...)
	e.obj.Data = e
	s.grid.Add(e.obj)

	s.entities[e.id] = e
	s.order = append(s.order, e.id)
	return e.id
}

// footprint maps a box onto the XZ grid.
func (s *Space) footprint(box cube.BBox) (x, z, w, d float64) {
	lo, hi := box.Min(), box.Max()
	x = float64(lo.X() + s.offset.X())
	z = float64(lo.Z() + s.offset.Y())
	w = math.Max(float64(hi.X()-lo.X()), 1e-3)
	d = math.Max(float64(hi.Z()-lo.Z()), 1e-3)
	return x, z, w, d
}

// sync moves an entity's grid object after its box changed.
func (s *Space) sync(e *entity) {
	x, z, w, d := s.footprint(e.box)
	e.obj.X, e.obj.Y, e.obj.W, e.obj.H = x, z, w, d
	e.obj.Update()
}

// nearby returns the entities whose grid cells overlap region, sorted by id,
// minus the excluded ones.
func (s *Space) nearby(region cube.BBox, exclude ...collider.BodyID) []*entity {
	x, z, w, d := s.footprint(region)
	q := resolv.NewObject(x, z, w, d, tagQuery)
	s.grid.Add(q)
	col := q.Check(0, 0, tagSolid, tagBody)
	s.grid.Remove(q)
	if col == nil {
		return nil
	}

	found := make([]*entity, 0, len(col.Objects))
	seen := make(map[collider.BodyID]bool, len(col.Objects))
	for _, o := range col.Objects {
		e, ok := o.Data.(*entity)
		if !ok || seen[e.id] || excluded(e.id, exclude) {
			continue
		}
		seen[e.id] = true
		found = append(found, e)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].id < found[j].id })
	return found
}

func excluded(id collider.BodyID, ids []collider.BodyID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

// Overlapping returns the ids of the entities whose boxes intersect region,
// in id order.
func (s *Space) Overlapping(region cube.BBox) []collider.BodyID {
	var ids []collider.BodyID
	for _, e := range s.nearby(region) {
		if e.box.IntersectsWith(region) {
			ids = append(ids, e.id)
		}
	}
	return ids
}
