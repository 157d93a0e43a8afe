package systems

import (
	"image/color"

	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const crosshairSize = 6

var (
	boxColor       = color.RGBA{200, 200, 200, 255}
	crosshairColor = color.RGBA{40, 220, 40, 255}
)

// DrawLevel renders every box in the level as a wireframe seen from the
// first player's eye, then a crosshair.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := tags.Level.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry)
	player := components.Player.Get(playerEntry)
	cam := components.Camera.Get(playerEntry)

	self := player.Controller.Body().BodyID()
	lvl.Boxes = lvl.Boxes[:0]
	for _, id := range lvl.Space.Overlapping(lvl.Space.Bounds()) {
		if id == self {
			continue
		}
		if box, ok := lvl.Space.Box(id); ok {
			lvl.Boxes = append(lvl.Boxes, box)
		}
	}

	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	for _, s := range cam.Eye.Wireframe(lvl.Boxes, cam.FOV, width, height) {
		vector.StrokeLine(screen, s.A.X(), s.A.Y(), s.B.X(), s.B.Y(), 1, boxColor, true)
	}

	cx, cy := float32(width)/2, float32(height)/2
	vector.StrokeLine(screen, cx-crosshairSize, cy, cx+crosshairSize, cy, 1, crosshairColor, false)
	vector.StrokeLine(screen, cx, cy-crosshairSize, cx, cy+crosshairSize, 1, crosshairColor, false)
}
