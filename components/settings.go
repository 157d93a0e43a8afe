package components

import (
	"github.com/automoto/goldenfps/launch"
	"github.com/yohamta/donburi"
)

// SettingsData holds session-wide toggles.
type SettingsData struct {
	Session  *launch.Session
	ShowHUD  bool
	DT       float32
	TickRate int
}

var Settings = donburi.NewComponentType[SettingsData]()
