package components

import (
	"github.com/automoto/goldenfps/input"
	"github.com/yohamta/donburi"
)

// InputData stores the action frame for one player plus the pointer state
// needed to turn cursor positions into deltas.
type InputData struct {
	Frame input.Frame

	Captured     bool // cursor captured; look input only flows while captured
	LastX, LastY int
	HasLast      bool // LastX/LastY hold a real position
}

var Input = donburi.NewComponentType[InputData]()
