package components

import (
	"github.com/automoto/goldenfps/camera"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Eye camera.Transform
	FOV float32
}

var Camera = donburi.NewComponentType[CameraData]()
