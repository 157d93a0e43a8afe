package components

import (
	"github.com/automoto/goldenfps/controller"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Controller *controller.Controller
	Spawn      int // index of the spawn used last
}

var Player = donburi.NewComponentType[PlayerData]()
