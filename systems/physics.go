package systems

import (
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps the collision world and respawns players that fell out
// of the level. Must run AFTER UpdatePlayer.
func UpdatePhysics(e *ecs.ECS) {
	settings := GetSettings(e)
	levelEntry, ok := tags.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry)
	lvl.Space.Step(settings.DT)

	bounds := lvl.Space.Bounds()
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if !player.Controller.Fallen(bounds) {
			return
		}
		player.Spawn++
		spawn, err := lvl.Level.Spawn(player.Spawn)
		if err == nil {
			err = player.Controller.Respawn(spawn)
		}
		if err != nil {
			logger(settings).WithError(err).Error("respawn failed")
			return
		}
		logger(settings).WithField("spawn", spawn.Index).Info("fell out of the level, respawned")
	})
}
