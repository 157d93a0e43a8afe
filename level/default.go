package level

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

const tau = 2 * math32.Pi

// DefaultName is the name of the built-in arena.
const DefaultName = "arena"

// Default returns the built-in arena: a 100 by 100 floor with its top at
// y = 0 and a one metre cube.
func Default() *Level {
	return &Level{
		Name: DefaultName,
		Solids: []cube.BBox{
			cube.Box(-50, -1, -50, 50, 0, 50),
			cube.Box(2, 0, -6, 3, 1, -5),
		},
		Spawns: []Spawn{{
			Position: mgl32.Vec3{0, 0, 0},
			Yaw:      5 * tau / 8,
			Pitch:    -tau / 12,
		}},
	}
}
