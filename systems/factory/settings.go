package factory

import (
	"github.com/automoto/goldenfps/archetypes"
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/launch"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings stores the session the systems log and save through.
func CreateSettings(ecs *ecs.ECS, session *launch.Session) *donburi.Entry {
	entry := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(entry, components.SettingsData{
		Session:  session,
		ShowHUD:  true,
		DT:       config.C.DeltaTime(),
		TickRate: config.C.TPS,
	})
	return entry
}
