package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/launch"
	"github.com/automoto/goldenfps/scenes"
	"github.com/getsentry/sentry-go"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(session *launch.Session) *Game {
	return &Game{scene: scenes.NewSandboxScene(session)}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	var flags launch.Flags
	flags.Register(flag.CommandLine)
	flag.Parse()

	session, err := launch.Start(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer session.Close()
	defer sentry.Recover()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("goldenfps")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(session)
	if err := ebiten.RunGame(game); err != nil {
		session.Log.WithError(err).Error("game stopped")
	}
	if scene, ok := game.scene.(*scenes.SandboxScene); ok {
		session.Save(scene.Preset())
	}
}
