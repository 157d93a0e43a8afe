package systems

import (
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/controller"
	"github.com/automoto/goldenfps/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer runs one controller tick per player: input mapping, probes,
// the solver and applying its output to the body.
func UpdatePlayer(e *ecs.ECS) {
	settings := GetSettings(e)
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		in := components.Input.Get(entry)
		c := player.Controller

		c.Input.SetEnabled(in.Captured)
		if in.Frame.JustPressed(config.ActionCyclePreset) {
			cyclePreset(c, settings)
		}
		if _, err := c.Tick(&in.Frame, settings.DT); err != nil {
			logger(settings).WithError(err).Error("controller tick failed")
		}
	})
}

func cyclePreset(c *controller.Controller, settings *components.SettingsData) {
	next := config.NextPreset(c.Config().Name)
	cfg, err := config.Preset(next)
	if err == nil {
		err = c.SwitchPreset(cfg)
	}
	if err != nil {
		logger(settings).WithError(err).WithField("preset", next).Warn("preset switch failed")
		return
	}
	if settings.Session != nil {
		settings.Session.Save(next)
	}
}
