package systems

import (
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	bindings         [config.ActionCount][]ebiten.Key
	bindingsResolved bool
)

// UpdateInput polls keyboard and mouse into each player's input frame.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(e *ecs.ECS) {
	settings := GetSettings(e)
	if !bindingsResolved {
		var unknown []string
		bindings, unknown = resolveBindings(&config.Input)
		for _, name := range unknown {
			logger(settings).WithField("key", name).Warn("unknown key name in bindings")
		}
		bindingsResolved = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		settings.ShowHUD = !settings.ShowHUD
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		in := components.Input.Get(entry)

		// Swap buffers: current becomes previous, then zero out current
		in.Frame.Advance()
		for id, keys := range bindings {
			for _, k := range keys {
				if ebiten.IsKeyPressed(k) {
					in.Frame.Current[id] = true
				}
			}
		}

		if in.Frame.JustPressed(config.ActionReleaseCursor) && in.Captured {
			setCaptured(in, false)
		} else if !in.Captured && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			setCaptured(in, true)
		}

		x, y := ebiten.CursorPosition()
		if in.Captured && in.HasLast {
			in.Frame.DX = float32(x - in.LastX)
			in.Frame.DY = float32(y - in.LastY)
		}
		in.LastX, in.LastY, in.HasLast = x, y, true

		_, wheel := ebiten.Wheel()
		in.Frame.ScrollDelta = float32(wheel)
	})
}

func setCaptured(in *components.InputData, captured bool) {
	if captured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	in.Captured = captured
	in.HasLast = false
}
