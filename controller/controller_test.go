package controller

import (
	"errors"
	"io"
	"testing"

	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/input"
	"github.com/automoto/goldenfps/level"
	"github.com/automoto/goldenfps/movement"
	"github.com/automoto/goldenfps/world"
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

const dt = float32(1.0 / 64)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.DebugLevel)
	return log
}

func approxEqual(t *testing.T, got, want, tol float32, field string) {
	t.Helper()
	if math32.Abs(got-want) > tol {
		t.Fatalf("%s = %v, want %v (tol %v)", field, got, want, tol)
	}
}

func preset(t *testing.T, name string) config.Controller {
	t.Helper()
	c, err := config.Preset(name)
	if err != nil {
		t.Fatalf("Preset(%q): %v", name, err)
	}
	return c
}

// arena returns the default arena's space and a spawn at the origin facing -Z.
func arena(t *testing.T) (*world.Space, level.Spawn) {
	t.Helper()
	cfg := config.World
	return level.Default().NewSpace(&cfg), level.Spawn{}
}

func run(t *testing.T, c *Controller, s *world.Space, src input.Source, ticks int) {
	t.Helper()
	for i := 0; i < ticks; i++ {
		if _, err := c.Tick(src, dt); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		s.Step(dt)
	}
}

func hold(actions ...config.ActionID) *input.Frame {
	f := &input.Frame{}
	for _, a := range actions {
		f.Current[a] = true
	}
	return f
}

func TestSpawnRejectsUnsupportedCollider(t *testing.T) {
	s, spawn := arena(t)
	cfg := preset(t, config.PresetGolden)
	cfg.Collider = config.ColliderCuboid

	before := s.Len()
	_, err := Spawn(s, cfg, spawn, quietLogger())
	if !errors.Is(err, movement.ErrInvalidCollider) {
		t.Fatalf("Spawn = %v, want ErrInvalidCollider", err)
	}
	if s.Len() != before {
		t.Errorf("space has %d entities after a failed spawn, want %d", s.Len(), before)
	}
}

func TestSpawnPlacesFeetAtSpawn(t *testing.T) {
	s, _ := arena(t)
	spawn := level.Spawn{Position: mgl32.Vec3{4, 0, 4}, Yaw: 1, Pitch: -0.2}
	c, err := Spawn(s, preset(t, config.PresetQuake), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	pos := c.Body().Position()
	if pos != (mgl32.Vec3{4, 1.5, 4}) {
		t.Errorf("body centre = %v, want (4, 1.5, 4)", pos)
	}
	if st := c.State(); st.Yaw != 1 || st.Pitch != -0.2 || st.Mode != movement.ModeAirborne {
		t.Errorf("state = %+v", st)
	}
}

func TestQuakeWalksForward(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetQuake), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	run(t, c, s, hold(config.ActionMoveForward), 64)

	pos := c.Body().Position()
	if pos.Z() > -5 {
		t.Errorf("z = %v after a second of forward input, want < -5", pos.Z())
	}
	approxEqual(t, pos.X(), 0, 1e-4, "x")
	approxEqual(t, pos.Y(), 1.5, 0.01, "centre height")
	if snap := c.Snapshot(); snap.Output.Mode != movement.ModeGrounded {
		t.Errorf("mode = %v, want grounded", snap.Output.Mode)
	}

	speed := c.Body().Velocity().Len()
	if speed > c.Config().WalkSpeed+1e-3 {
		t.Errorf("speed %v exceeds walk speed %v", speed, c.Config().WalkSpeed)
	}
}

func TestGoldenHoversAtRestGap(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetGolden), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	run(t, c, s, nil, 256)

	feet := c.Body().Position().Y() - c.Body().Shape().HalfHeight
	approxEqual(t, feet, c.Config().SpringRestGap, 0.01, "feet")
	if c.State().Mode != movement.ModeGrounded {
		t.Errorf("mode = %v, want grounded", c.State().Mode)
	}
}

func TestGoldenCrouchShrinksBody(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetGolden), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	run(t, c, s, nil, 64)

	run(t, c, s, hold(config.ActionCrouch), 32)
	cfg := c.Config()
	if c.State().CrouchDegree != 1 {
		t.Fatalf("crouch degree = %v, want 1", c.State().CrouchDegree)
	}
	approxEqual(t, c.Body().Shape().HalfHeight, movement.HalfHeightFor(&cfg, 1), 1e-5, "half-height")

	run(t, c, s, nil, 32)
	approxEqual(t, c.Body().Shape().HalfHeight, cfg.HalfHeight(), 1e-5, "half-height after standing")
}

func TestViewFollowsBody(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetQuake), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	run(t, c, s, nil, 1)

	eye := c.View()
	want := c.Body().Position().Y() + c.Body().Shape().HalfHeight + config.Camera.HeightOffset
	approxEqual(t, eye.Position.Y(), want, 1e-5, "eye height")
}

func TestDisabledInputIgnoresKeys(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetQuake), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	c.Input.SetEnabled(false)
	run(t, c, s, hold(config.ActionMoveForward), 32)

	pos := c.Body().Position()
	approxEqual(t, pos.Z(), 0, 1e-4, "z")
}

func TestNoclipFliesThroughFloor(t *testing.T) {
	s, spawn := arena(t)
	spawn.Position = mgl32.Vec3{0, 3, 0}
	c, err := Spawn(s, preset(t, config.PresetNoclip), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	run(t, c, s, hold(config.ActionFlyDown), 64)

	cfg := c.Config()
	want := 3 + cfg.HalfHeight() - cfg.FlySpeed
	approxEqual(t, c.Body().Position().Y(), want, 1e-3, "centre height")
	if !c.State().Flying {
		t.Error("noclip controller not flying")
	}
}

func TestSwitchPresetKeepsView(t *testing.T) {
	s, spawn := arena(t)
	spawn.Yaw, spawn.Pitch = 0.7, 0.1
	c, err := Spawn(s, preset(t, config.PresetGolden), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	run(t, c, s, nil, 8)

	if err := c.SwitchPreset(preset(t, config.PresetNoclip)); err != nil {
		t.Fatalf("SwitchPreset: %v", err)
	}
	st := c.State()
	if st.Yaw != 0.7 || st.Pitch != 0.1 {
		t.Errorf("view = %v/%v, want 0.7/0.1", st.Yaw, st.Pitch)
	}
	if !st.Flying || c.Config().Name != config.PresetNoclip {
		t.Errorf("switched state = %+v name %q", st, c.Config().Name)
	}

	bad := preset(t, config.PresetQuake)
	bad.Collider = config.ColliderSphere
	if err := c.SwitchPreset(bad); !errors.Is(err, movement.ErrInvalidCollider) {
		t.Errorf("SwitchPreset(sphere) = %v, want ErrInvalidCollider", err)
	}
	if c.Config().Name != config.PresetNoclip {
		t.Errorf("failed switch changed preset to %q", c.Config().Name)
	}
}

func TestRespawn(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetQuake), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	run(t, c, s, hold(config.ActionMoveForward), 16)

	if err := c.Respawn(level.Spawn{Position: mgl32.Vec3{1, 0, 1}}); err != nil {
		t.Fatalf("Respawn: %v", err)
	}
	if c.Body().Position() != (mgl32.Vec3{1, 1.5, 1}) || c.Body().Velocity().Len() != 0 {
		t.Errorf("after respawn: pos %v vel %v", c.Body().Position(), c.Body().Velocity())
	}
	if c.State().GroundTick != 0 {
		t.Errorf("ground tick = %d after respawn", c.State().GroundTick)
	}
}

func TestSpawnPreset(t *testing.T) {
	s, spawn := arena(t)

	spawn.Preset = "nope"
	if _, err := SpawnPreset(s, spawn, config.PresetGolden, quietLogger()); !errors.Is(err, config.ErrUnknownPreset) {
		t.Fatalf("SpawnPreset(nope) = %v, want ErrUnknownPreset", err)
	}

	spawn.Preset = ""
	c, err := SpawnPreset(s, spawn, config.PresetQuake, quietLogger())
	if err != nil {
		t.Fatalf("SpawnPreset: %v", err)
	}
	if c.Config().Name != config.PresetQuake {
		t.Errorf("preset = %q, want fallback %q", c.Config().Name, config.PresetQuake)
	}
}

func TestFallen(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetQuake), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if c.Fallen(s.Bounds()) {
		t.Error("standing body reported fallen")
	}
	c.Body().Teleport(mgl32.Vec3{0, s.Bounds().Min().Y() - FallDepth - 1, 0})
	if !c.Fallen(s.Bounds()) {
		t.Error("body below the level not reported fallen")
	}
}

func TestHeldJumpFiresOnce(t *testing.T) {
	for _, name := range []string{config.PresetGolden, config.PresetQuake} {
		t.Run(name, func(t *testing.T) {
			s, spawn := arena(t)
			c, err := Spawn(s, preset(t, name), spawn, quietLogger())
			if err != nil {
				t.Fatalf("Spawn: %v", err)
			}
			run(t, c, s, nil, 128)

			jumps := 0
			src := hold(config.ActionJump)
			for i := 0; i < 20; i++ {
				out, err := c.Tick(src, dt)
				if err != nil {
					t.Fatalf("tick %d: %v", i, err)
				}
				if out.Jumped {
					jumps++
				}
				s.Step(dt)
			}
			if jumps != 1 {
				t.Errorf("jumped %d times while holding jump, want 1", jumps)
			}
		})
	}
}

func TestGoldenJumpKeepsTakeOffSpeed(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetGolden), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	run(t, c, s, nil, 128)

	run(t, c, s, hold(config.ActionJump), 1)
	cfg := c.Config()
	want := cfg.JumpSpeed / (1 + dt*cfg.AirDamping)
	approxEqual(t, c.Body().Velocity().Y(), want, 1e-3, "vertical velocity after take-off")
}

func TestSwitchPresetUnderCeilingStaysCrouched(t *testing.T) {
	s, spawn := arena(t)
	c, err := Spawn(s, preset(t, config.PresetGolden), spawn, quietLogger())
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	run(t, c, s, nil, 64)
	run(t, c, s, hold(config.ActionCrouch), 32)
	if c.State().CrouchDegree != 1 {
		t.Fatalf("crouch degree = %v, want 1", c.State().CrouchDegree)
	}

	const roof = 2
	s.AddSolid(cube.Box(-5, roof, -5, 5, roof+1, 5))
	top := func() float32 {
		return c.Body().Position().Y() + c.Body().Shape().HalfHeight
	}

	if err := c.SwitchPreset(preset(t, config.PresetQuake)); err != nil {
		t.Fatalf("SwitchPreset: %v", err)
	}
	if c.State().CrouchDegree != 1 {
		t.Errorf("crouch degree after switch = %v, want 1", c.State().CrouchDegree)
	}
	if top() > roof {
		t.Fatalf("collider top %v above the ceiling at %v after switch", top(), roof)
	}

	run(t, c, s, nil, 64)
	if top() > roof+1e-3 {
		t.Errorf("collider top %v grew into the ceiling at %v", top(), roof)
	}
	if c.State().CrouchDegree == 0 {
		t.Error("stood up fully under a low ceiling")
	}
}
