package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/goldenfps/archetypes"
	"github.com/automoto/goldenfps/components"
	"github.com/automoto/goldenfps/launch"
	"github.com/automoto/goldenfps/systems"
	"github.com/automoto/goldenfps/systems/factory"
	"github.com/automoto/goldenfps/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SandboxScene is one level with one player walking around it.
type SandboxScene struct {
	ecs     *ecs.ECS
	session *launch.Session
	once    sync.Once
	err     error
}

func NewSandboxScene(session *launch.Session) *SandboxScene {
	return &SandboxScene{session: session}
}

// Update runs one fixed tick. The first call builds the world and returns
// its error if the player could not be spawned.
func (s *SandboxScene) Update() error {
	s.once.Do(s.configure)
	if s.err != nil {
		return s.err
	}
	s.ecs.Update()
	return nil
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

// Preset returns the name of the player's current preset, or the session's
// preset before the first tick.
func (s *SandboxScene) Preset() string {
	if s.ecs != nil {
		if entry, ok := tags.Player.First(s.ecs.World); ok {
			return components.Player.Get(entry).Controller.Config().Name
		}
	}
	return s.session.Preset
}

func (s *SandboxScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: input feeds the controller, the controller drives the
	// bodies before the world steps, the camera reads the stepped pose.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePlayer)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(archetypes.LayerWorld, systems.DrawLevel)
	ecs.AddRenderer(archetypes.LayerHUD, systems.DrawHUD)

	s.ecs = ecs

	factory.CreateSettings(s.ecs, s.session)
	level := factory.CreateLevel(s.ecs, s.session.Level)
	if _, err := factory.CreatePlayer(s.ecs, level, 0, s.session.Preset, s.session.Log); err != nil {
		s.session.Log.WithError(err).Error("could not spawn the player")
		s.err = err
	}
}
