package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// snapshot restores the package config after a test mutates it.
func snapshot(t *testing.T) {
	t.Helper()
	input := Input
	bindings := make(map[ActionID]InputBinding, len(Input.Bindings))
	for k, v := range Input.Bindings {
		bindings[k] = v
	}
	camera, world, debug, hud := Camera, World, Debug, HUD
	preset := DefaultPreset
	presets := Presets.Copy()
	t.Cleanup(func() {
		Input = input
		Input.Bindings = bindings
		Camera, World, Debug, HUD = camera, world, debug, hud
		DefaultPreset = preset
		Presets = presets
	})
}

func TestBuiltinPresetsValidate(t *testing.T) {
	for _, name := range Presets.Keys() {
		c, err := Preset(name)
		if err != nil {
			t.Fatalf("Preset(%q): %v", name, err)
		}
		if err := c.Validate(); err != nil {
			t.Errorf("preset %q: %v", name, err)
		}
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("walljump")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestNextPresetWraps(t *testing.T) {
	keys := Presets.Keys()
	if got := NextPreset(keys[len(keys)-1]); got != keys[0] {
		t.Errorf("NextPreset(last) = %q, want %q", got, keys[0])
	}
	if got := NextPreset(keys[0]); got != keys[1] {
		t.Errorf("NextPreset(first) = %q, want %q", got, keys[1])
	}
	if got := NextPreset("missing"); got != keys[0] {
		t.Errorf("NextPreset(missing) = %q, want %q", got, keys[0])
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Controller)
	}{
		{"zero radius", func(c *Controller) { c.Radius = 0 }},
		{"negative height", func(c *Controller) { c.Height = -1 }},
		{"short capsule", func(c *Controller) { c.Collider = ColliderCapsule; c.Height = 0.8 }},
		{"zero mass", func(c *Controller) { c.Mass = 0 }},
		{"unknown drive", func(c *Controller) { c.Drive = "teleport" }},
		{"shrink too small", func(c *Controller) { c.GroundShrink = 0.5 }},
		{"shrink too large", func(c *Controller) { c.GroundShrink = 0.99 }},
		{"cutoff of one", func(c *Controller) { c.TractionNormalCutoff = 1 }},
		{"no grounded distance", func(c *Controller) { c.GroundedDistance = 0 }},
		{"no wall probe", func(c *Controller) { c.WallProbeDistance = 0 }},
		{"crouch ratio zero", func(c *Controller) { c.CrouchHeightRatio = 0 }},
		{"spring without frequency", func(c *Controller) { c.Capabilities.Spring = true; c.SpringFrequency = 0 }},
		{"spring gap above probe", func(c *Controller) { c.Capabilities.Spring = true; c.SpringRestGap = 0.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := baseController()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	snapshot(t)

	data := []byte(`preset: quake
presets:
  quake:
    walk_speed: 12
  moon:
    gravity: 1.6
    capabilities:
      lean: true
input:
  sensitivity_x: 0.01
bindings:
  jump: [J]
world:
  cell_size: 8
debug:
  log_level: debug
`)
	if err := Apply(data); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	quake, _ := Preset(PresetQuake)
	if quake.WalkSpeed != 12 {
		t.Errorf("quake walk speed = %v, want 12", quake.WalkSpeed)
	}
	if quake.Friction != 6 {
		t.Errorf("quake friction = %v, want untouched 6", quake.Friction)
	}

	moon, err := Preset("moon")
	if err != nil {
		t.Fatalf("moon preset not registered: %v", err)
	}
	if moon.Gravity != 1.6 || !moon.Capabilities.Lean {
		t.Errorf("moon = gravity %v lean %v, want 1.6 true", moon.Gravity, moon.Capabilities.Lean)
	}
	if moon.Radius != 0.5 {
		t.Errorf("moon radius = %v, want base 0.5", moon.Radius)
	}

	if DefaultPreset != PresetQuake {
		t.Errorf("DefaultPreset = %q, want quake", DefaultPreset)
	}
	if Input.SensitivityX != 0.01 {
		t.Errorf("SensitivityX = %v, want 0.01", Input.SensitivityX)
	}
	if Input.SensitivityY != 0.002 {
		t.Errorf("SensitivityY = %v, want untouched 0.002", Input.SensitivityY)
	}
	if keys := Input.Bindings[ActionJump].Keys; len(keys) != 1 || keys[0] != "J" {
		t.Errorf("jump keys = %v, want [J]", keys)
	}
	if len(Input.Bindings[ActionMoveForward].Keys) == 0 {
		t.Error("forward binding lost after override")
	}
	if World.CellSize != 8 {
		t.Errorf("World.CellSize = %d, want 8", World.CellSize)
	}
	if Debug.LogLevel != "debug" {
		t.Errorf("Debug.LogLevel = %q, want debug", Debug.LogLevel)
	}
}

func TestApplyErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"unknown preset", "preset: sprint\n", ErrUnknownPreset},
		{"unknown action", "bindings:\n  dance: [X]\n", ErrInvalidConfig},
		{"invalid preset values", "presets:\n  golden:\n    radius: -1\n", ErrInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot(t)
			if err := Apply([]byte(tt.content)); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	snapshot(t)

	path := filepath.Join(t.TempDir(), "goldenfps.yaml")
	if err := os.WriteFile(path, []byte("camera:\n  height_offset: -0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if Camera.HeightOffset != -0.25 {
		t.Errorf("HeightOffset = %v, want -0.25", Camera.HeightOffset)
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile(missing) returned nil error")
	}
}

func TestActionByName(t *testing.T) {
	for id := ActionNone; id < ActionCount; id++ {
		got, ok := ActionByName(id.String())
		if !ok || got != id {
			t.Errorf("ActionByName(%q) = %v, %v", id.String(), got, ok)
		}
	}
	if _, ok := ActionByName("dance"); ok {
		t.Error("ActionByName(dance) resolved")
	}
}
