package systems

import (
	"image/color"

	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/hud"
	"github.com/automoto/goldenfps/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin    = 8
	hudBarWidth  = 130
	hudBarHeight = 6
	hudLineH     = 16
)

var (
	hudBarBack  = color.RGBA{40, 40, 40, 255}
	hudBarFront = color.RGBA{40, 220, 40, 255}
)

// DrawHUD prints the first player's controller readout and crouch and lean
// bars in the top-left corner. F3 hides it.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetSettings(e)
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(playerEntry)
	if !in.Captured {
		ebitenutil.DebugPrintAt(screen, "click to capture the mouse, Escape to release",
			hudMargin, screen.Bounds().Dy()-hudLineH-hudMargin)
	}
	if !settings.ShowHUD {
		return
	}

	snap := components.Player.Get(playerEntry).Controller.Snapshot()
	lines := hud.Build(snap, &config.HUD)
	ebitenutil.DebugPrintAt(screen, hud.Text(lines), hudMargin, hudMargin)

	y := float32(hudMargin + lines.Len()*hudLineH + hudMargin)
	drawBar(screen, y, snap.State.CrouchDegree)
	drawBar(screen, y+hudBarHeight+4, (snap.State.LeanDegree+1)/2)
}

func drawBar(screen *ebiten.Image, y, ratio float32) {
	vector.DrawFilledRect(screen, hudMargin, y, hudBarWidth, hudBarHeight, hudBarBack, false)
	vector.DrawFilledRect(screen, hudMargin, y, hudBarWidth*ratio, hudBarHeight, hudBarFront, false)
}
