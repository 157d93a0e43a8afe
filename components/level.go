package components

import (
	"github.com/automoto/goldenfps/level"
	"github.com/automoto/goldenfps/world"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level *level.Level
	Space *world.Space
	Boxes []cube.BBox // scratch buffer reused by the renderer
}

var Level = donburi.NewComponentType[LevelData]()
