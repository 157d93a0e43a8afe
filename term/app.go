// Package term is the terminal front-end: it drives one controller from
// tcell key and mouse events and draws the HUD plus an overhead map.
package term

import (
	"fmt"

	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/controller"
	"github.com/automoto/goldenfps/hud"
	"github.com/automoto/goldenfps/level"
	"github.com/automoto/goldenfps/world"
	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
)

// App owns the screen, the world and the controller for one session.
type App struct {
	screen tcell.Screen
	level  *level.Level
	space  *world.Space
	ctrl   *controller.Controller
	source *Source
	log    *logrus.Logger

	dt     float32
	spawn  int
	quit   bool
	events chan tcell.Event
}

// NewApp builds the world for lvl and spawns a controller at its first spawn.
func NewApp(screen tcell.Screen, lvl *level.Level, preset string, log *logrus.Logger) (*App, error) {
	spawn, err := lvl.Spawn(0)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	space := lvl.NewSpace(&config.World)
	ctrl, err := controller.SpawnPreset(space, spawn, preset, log)
	if err != nil {
		return nil, err
	}
	return &App{
		screen: screen,
		level:  lvl,
		space:  space,
		ctrl:   ctrl,
		source: NewSource(&config.Input),
		log:    log,
		dt:     config.C.DeltaTime(),
		events: make(chan tcell.Event, 100),
	}, nil
}

// Controller returns the driven controller.
func (a *App) Controller() *controller.Controller {
	return a.ctrl
}

// Run polls terminal events in the background and ticks until the user quits.
func (a *App) Run() {
	a.screen.EnableMouse()
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			a.events <- ev
		}
	}()
	NewGameLoop(a.Tick, config.C.TPS, a.log).Run()
}

// Handle applies one terminal event.
func (a *App) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			a.quit = true
			return
		}
	case *tcell.EventResize:
		a.screen.Sync()
		return
	}
	a.source.Handle(ev)
}

// Tick runs one fixed step and redraws. It returns false once the user quit.
func (a *App) Tick() bool {
	for drained := false; !drained; {
		select {
		case ev := <-a.events:
			a.Handle(ev)
		default:
			drained = true
		}
	}
	if a.quit {
		return false
	}

	frame := a.source.Next()
	if frame.JustPressed(config.ActionReleaseCursor) {
		a.ctrl.Input.SetEnabled(!a.ctrl.Input.Enabled())
		a.log.WithField("enabled", a.ctrl.Input.Enabled()).Debug("input toggled")
	}
	if frame.JustPressed(config.ActionCyclePreset) {
		a.cyclePreset()
	}

	if _, err := a.ctrl.Tick(frame, a.dt); err != nil {
		a.log.WithError(err).Error("controller tick failed")
	}
	a.space.Step(a.dt)
	a.respawnIfFallen()

	a.Draw()
	return true
}

func (a *App) cyclePreset() {
	next := config.NextPreset(a.ctrl.Config().Name)
	cfg, err := config.Preset(next)
	if err == nil {
		err = a.ctrl.SwitchPreset(cfg)
	}
	if err != nil {
		a.log.WithError(err).WithField("preset", next).Warn("preset switch failed")
	}
}

func (a *App) respawnIfFallen() {
	if !a.ctrl.Fallen(a.space.Bounds()) {
		return
	}
	a.spawn++
	spawn, err := a.level.Spawn(a.spawn)
	if err == nil {
		err = a.ctrl.Respawn(spawn)
	}
	if err != nil {
		a.log.WithError(err).Error("respawn failed")
		return
	}
	a.log.WithField("spawn", spawn.Index).Info("fell out of the level, respawned")
}

// Draw renders the HUD on the left and the overhead map on the right.
func (a *App) Draw() {
	a.screen.Clear()
	snap := a.ctrl.Snapshot()
	rows := hud.Draw(a.screen, 0, 0, hud.Build(snap, &config.HUD))
	if !a.ctrl.Input.Enabled() {
		drawText(a.screen, 0, rows+1, "input released, Escape to capture", hintStyle)
	}
	DrawMap(a.screen, a.space, a.ctrl, config.HUD.MapLeft, config.HUD.MapScale)
	a.screen.Show()
}
