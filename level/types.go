// Package level describes the static scene a controller runs in and loads
// it from Tiled TMX files.
package level

import (
	"errors"
	"fmt"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// ErrNoSpawn is returned when a level has no spawn point to place a
// controller at.
var ErrNoSpawn = errors.New("level has no spawn point")

// Level holds everything parsed from a scene file. Coordinates are metres;
// one TMX tile is one metre on the XZ plane.
type Level struct {
	Name   string
	Solids []cube.BBox
	Movers []Mover
	Spawns []Spawn
}

// Mover is a box that rises and falls.
type Mover struct {
	Box    cube.BBox
	Rise   float32 // metres travelled up from Box
	Period float32 // seconds for a full up and down cycle
}

// Spawn is where a controller starts. Position is the feet point.
type Spawn struct {
	Position mgl32.Vec3
	Yaw      float32 // radians
	Pitch    float32 // radians
	Preset   string  // empty for the default preset
	Index    int
}

// Spawn returns the spawn with the given index, wrapping around.
func (l *Level) Spawn(i int) (Spawn, error) {
	if len(l.Spawns) == 0 {
		return Spawn{}, fmt.Errorf("%s: %w", l.Name, ErrNoSpawn)
	}
	if i < 0 {
		i = -i
	}
	return l.Spawns[i%len(l.Spawns)], nil
}

// Bounds returns the box enclosing every solid, mover travel and spawn.
func (l *Level) Bounds() cube.BBox {
	var lo, hi mgl32.Vec3
	first := true
	grow := func(p mgl32.Vec3) {
		if first {
			lo, hi, first = p, p, false
			return
		}
		for i := 0; i < 3; i++ {
			lo[i] = min(lo[i], p[i])
			hi[i] = max(hi[i], p[i])
		}
	}
	for _, s := range l.Solids {
		grow(s.Min())
		grow(s.Max())
	}
	for _, m := range l.Movers {
		grow(m.Box.Min())
		grow(m.Box.Max().Add(mgl32.Vec3{0, m.Rise, 0}))
	}
	for _, s := range l.Spawns {
		grow(s.Position)
	}
	return cube.Box(lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())
}
