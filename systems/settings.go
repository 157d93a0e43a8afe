package systems

import (
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/config"
	"github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// GetSettings returns the singleton Settings component, creating it if needed.
func GetSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			ShowHUD:  true,
			DT:       config.C.DeltaTime(),
			TickRate: config.C.TPS,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

func logger(s *components.SettingsData) logrus.FieldLogger {
	if s.Session == nil {
		return logrus.StandardLogger()
	}
	return s.Session.Log
}
