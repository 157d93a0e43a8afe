package factory

import (
	"github.com/automoto/goldenfps/archetypes"
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/level"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision world for lvl.
func CreateLevel(ecs *ecs.ECS, lvl *level.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		Level: lvl,
		Space: lvl.NewSpace(&config.World),
	})
	return entry
}
