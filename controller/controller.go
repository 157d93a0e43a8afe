// Package controller wires the input mapper, the probes, the movement solver
// and the render sync together for one character.
package controller

import (
	"fmt"

	"github.com/automoto/goldenfps/camera"
	"github.com/automoto/goldenfps/collider"
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/input"
	"github.com/automoto/goldenfps/level"
	"github.com/automoto/goldenfps/movement"
	"github.com/automoto/goldenfps/probe"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Body is the physics body a controller drives and reads back.
type Body interface {
	movement.Actuator
	BodyID() collider.BodyID
	Position() mgl32.Vec3
	Velocity() mgl32.Vec3
	Rotation() mgl32.Quat
	Shape() collider.Shape
	Mass() float32
	SetShape(shape collider.Shape) error
	SetMass(mass float32)
	Teleport(pos mgl32.Vec3)
}

// Snapshot is what the last tick saw and decided, for HUDs and logs.
type Snapshot struct {
	Preset   string
	Input    movement.Input
	Probes   probe.Result
	Output   movement.Output
	State    movement.State
	Position mgl32.Vec3
	Velocity mgl32.Vec3
}

// Controller is one character: immutable tuning, persistent locomotion state
// and the body it drives.
type Controller struct {
	Input *input.Mapper

	cfg    config.Controller
	state  movement.State
	body   Body
	prober probe.Prober
	log    *logrus.Logger

	last Snapshot
}

// New validates cfg and places body at the spawn. It fails with
// movement.ErrInvalidCollider when cfg asks for an unsupported shape.
func New(cfg config.Controller, body Body, caster probe.Caster, spawn level.Spawn, log *logrus.Logger) (*Controller, error) {
	if err := movement.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("new controller: %w", err)
	}
	if log == nil {
		log = logrus.New()
	}

	c := &Controller{
		Input:  input.NewMapper(&config.Input),
		cfg:    cfg,
		body:   body,
		prober: probe.Prober{Caster: caster},
		log:    log,
	}
	if err := c.reset(spawn); err != nil {
		return nil, err
	}
	return c, nil
}

// Config returns the controller's tuning.
func (c *Controller) Config() config.Controller {
	return c.cfg
}

// State returns the locomotion state after the last tick.
func (c *Controller) State() movement.State {
	return c.state
}

// Body returns the driven body.
func (c *Controller) Body() Body {
	return c.body
}

// Snapshot returns the data of the last tick.
func (c *Controller) Snapshot() Snapshot {
	return c.last
}

// Tick runs input, probes, solver and output application once. The host
// steps the physics world afterwards.
func (c *Controller) Tick(src input.Source, dt float32) (movement.Output, error) {
	in := c.Input.Map(src, &c.state)
	probes := c.Probe()

	kin := movement.Kinematics{
		Velocity:   c.body.Velocity(),
		Mass:       c.body.Mass(),
		HalfHeight: c.body.Shape().HalfHeight,
	}
	next, out := movement.Tick(&c.cfg, c.state, in, probes, kin, dt)
	if err := movement.Apply(&c.cfg, out, c.body); err != nil {
		return out, fmt.Errorf("controller %s: %w", c.cfg.Name, err)
	}
	c.logTransitions(c.state, next, out)
	c.state = next

	c.last = Snapshot{
		Preset:   c.cfg.Name,
		Input:    in,
		Probes:   probes,
		Output:   out,
		State:    next,
		Position: c.body.Position(),
		Velocity: c.body.Velocity(),
	}
	return out, nil
}

// Probe runs the four casts from the body's current pose.
func (c *Controller) Probe() probe.Result {
	pose := probe.Pose{
		Position: c.body.Position(),
		Rotation: c.body.Rotation(),
		Shape:    c.body.Shape(),
		Body:     c.body.BodyID(),
	}
	return c.prober.Probe(&c.cfg, pose, c.state.Yaw, c.state.LeanDegree)
}

// View returns the eye transform for rendering.
func (c *Controller) View() camera.Transform {
	body := camera.Transform{Position: c.body.Position(), Rotation: c.body.Rotation()}
	return camera.Sync(body, c.body.Shape().HalfHeight, c.state.Pitch, &config.Camera)
}

// SwitchPreset swaps the tuning in place, keeping position, view angles and
// the crouch degree. The new preset stands up through its own ceiling check.
func (c *Controller) SwitchPreset(cfg config.Controller) error {
	if err := movement.Validate(&cfg); err != nil {
		return fmt.Errorf("switch preset: %w", err)
	}
	crouch := c.state.CrouchDegree
	shape := collider.FromConfig(&cfg).WithHalfHeight(movement.HalfHeightFor(&cfg, crouch))
	if err := c.body.SetShape(shape); err != nil {
		return fmt.Errorf("switch preset %s: %w", cfg.Name, err)
	}
	c.body.SetMass(cfg.Mass)

	pitch, yaw := c.state.Pitch, c.state.Yaw
	c.cfg = cfg
	c.state = movement.NewState(&c.cfg, pitch, yaw)
	c.state.CrouchDegree = crouch
	c.log.WithField("preset", cfg.Name).Info("controller preset switched")
	return nil
}

// FallDepth is how far below a level's bounds a body may drop before the
// front-ends respawn it.
const FallDepth = 20

// Fallen reports whether the body dropped FallDepth below bounds.
func (c *Controller) Fallen(bounds cube.BBox) bool {
	return c.body.Position().Y() < bounds.Min().Y()-FallDepth
}

// Respawn puts the controller back at a spawn with a fresh state.
func (c *Controller) Respawn(spawn level.Spawn) error {
	return c.reset(spawn)
}

func (c *Controller) reset(spawn level.Spawn) error {
	if err := c.body.SetShape(collider.FromConfig(&c.cfg)); err != nil {
		return fmt.Errorf("controller %s: %w", c.cfg.Name, err)
	}
	c.body.SetMass(c.cfg.Mass)
	c.body.Teleport(spawn.Position.Add(mgl32.Vec3{0, c.cfg.HalfHeight(), 0}))
	c.state = movement.NewState(&c.cfg, spawn.Pitch, spawn.Yaw)
	c.last = Snapshot{Preset: c.cfg.Name, State: c.state, Position: c.body.Position()}
	return nil
}

func (c *Controller) logTransitions(prev, next movement.State, out movement.Output) {
	if !c.log.IsLevelEnabled(logrus.DebugLevel) {
		return
	}
	entry := c.log.WithField("preset", c.cfg.Name)
	if out.Mode != prev.Mode {
		entry.WithFields(logrus.Fields{"from": prev.Mode, "to": out.Mode}).Debug("mode changed")
	}
	if out.Landed {
		entry.WithField("velocity", c.body.Velocity()).Debug("landed")
	}
	if out.Jumped {
		entry.Debug("jumped")
	}
	if prev.Flying != next.Flying {
		entry.WithField("flying", next.Flying).Debug("fly toggled")
	}
}
