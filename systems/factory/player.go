package factory

import (
	"github.com/automoto/goldenfps/archetypes"
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/controller"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a controller at the level's spawn with the given
// index. The spawn's own preset wins over preset.
func CreatePlayer(ecs *ecs.ECS, levelEntry *donburi.Entry, spawnIndex int, preset string, log *logrus.Logger) (*donburi.Entry, error) {
	lvl := components.Level.Get(levelEntry)
	spawn, err := lvl.Level.Spawn(spawnIndex)
	if err != nil {
		return nil, err
	}
	c, err := controller.SpawnPreset(lvl.Space, spawn, preset, log)
	if err != nil {
		return nil, err
	}

	player := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(player, components.PlayerData{
		Controller: c,
		Spawn:      spawnIndex,
	})
	components.Camera.SetValue(player, components.CameraData{
		Eye: c.View(),
		FOV: config.Camera.FOV,
	})
	return player, nil
}
