package systems

import (
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera copies each player's eye transform for the renderers.
func UpdateCamera(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		cam := components.Camera.Get(entry)
		cam.Eye = player.Controller.View()
		cam.FOV = config.Camera.FOV
	})
}
