package controller

import (
	"fmt"

	"github.com/automoto/goldenfps/collider"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/level"
	"github.com/automoto/goldenfps/movement"
	"github.com/automoto/goldenfps/world"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Spawn adds a body for cfg to the space and returns its controller. The
// solver owns gravity, so the body ignores world gravity.
func Spawn(space *world.Space, cfg config.Controller, spawn level.Spawn, log *logrus.Logger) (*Controller, error) {
	if err := movement.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("spawn controller: %w", err)
	}
	shape := collider.FromConfig(&cfg)
	body := space.AddBody(shape, spawn.Position.Add(mgl32.Vec3{0, shape.HalfHeight, 0}), cfg.Mass)
	body.SetGravityScale(0)

	c, err := New(cfg, body, space, spawn, log)
	if err != nil {
		space.Remove(body.ID)
		return nil, err
	}
	return c, nil
}

// SpawnPreset resolves a spawn's preset, falling back to fallback when the
// spawn does not name one, and spawns a controller for it.
func SpawnPreset(space *world.Space, spawn level.Spawn, fallback string, log *logrus.Logger) (*Controller, error) {
	name := spawn.Preset
	if name == "" {
		name = fallback
	}
	cfg, err := config.Preset(name)
	if err != nil {
		return nil, err
	}
	return Spawn(space, cfg, spawn, log)
}
