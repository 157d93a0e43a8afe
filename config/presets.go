package config

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"
	"github.com/elliotchance/orderedmap/v2"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("unknown controller preset")

const (
	PresetGolden = "golden"
	PresetQuake  = "quake"
	PresetNoclip = "noclip"
)

// Presets holds every registered controller preset in cycling order.
var Presets *orderedmap.OrderedMap[string, Controller]

// Preset returns a copy of the named preset.
func Preset(name string) (Controller, error) {
	c, ok := Presets.Get(name)
	if !ok {
		return Controller{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return c, nil
}

// RegisterPreset adds or replaces a preset after validating it.
func RegisterPreset(c Controller) error {
	if c.Name == "" {
		return fmt.Errorf("%w: preset needs a name", ErrInvalidConfig)
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("preset %q: %w", c.Name, err)
	}
	Presets.Set(c.Name, c)
	return nil
}

// NextPreset returns the preset registered after name, wrapping around.
func NextPreset(name string) string {
	keys := Presets.Keys()
	if len(keys) == 0 {
		return name
	}
	for i, k := range keys {
		if k == name {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

// baseController is the shared body and probe tuning every preset starts from.
func baseController() Controller {
	return Controller{
		Collider: ColliderCylinder,
		Radius:   0.5,
		Height:   3.0,
		Mass:     1.0,
		Drive:    DriveVelocity,

		WalkSpeed:         7.0,
		AirSpeed:          7.0,
		CrouchSpeedFactor: 0.5,
		LeanSpeedFactor:   0.6,
		FlySpeed:          12.0,

		Acceleration:    10.0,
		AirAcceleration: 80.0,

		GroundFriction: 0.99,
		GroundDamping:  10.0,
		AirFriction:    0.0,
		AirDamping:     0.1,

		Gravity:       9.81,
		JumpSpeed:     7.0,
		JumpGateTicks: 4,

		TractionNormalCutoff:   math32.Cos(math32.Pi * 0.45),
		GroundedDistance:       0.2,
		GroundShrink:           0.9,
		LeanGroundCompensation: 0.1,

		WallProbeDistance:   1.0,
		WallCastHeightScale: 0.8,

		LeaningSpeed:    8.0,
		LeanDeadzone:    0.001,
		LeanSideImpulse: 40.0,
		MaxLeanRoll:     0.26,
		LeanRollEase:    "outCubic",

		CrouchSpeed:       4.0,
		CrouchHeightRatio: 0.5,
		ShapeEpsilon:      0.001,

		SpringFrequency:    4.0,
		SpringDampingRatio: 1.0,
		SpringRestGap:      0.1,
	}
}

func init() {
	Presets = orderedmap.NewOrderedMap[string, Controller]()

	// Golden: spring-grounded body with lean and crouch, driven by impulses
	golden := baseController()
	golden.Name = PresetGolden
	golden.Drive = DriveImpulse
	golden.Capabilities = Capabilities{Lean: true, Crouch: true, Fly: true, Spring: true}
	Presets.Set(golden.Name, golden)

	// Quake: id-style acceleration with stop-speed friction, one Quake unit is 1/32 m
	quake := baseController()
	quake.Name = PresetQuake
	quake.WalkSpeed = 320.0 / 32
	quake.AirSpeed = 320.0 / 32
	quake.Acceleration = 10.0
	quake.AirAcceleration = 0.7
	quake.Friction = 6.0
	quake.StopSpeed = 100.0 / 32
	quake.Gravity = 800.0 / 32
	quake.JumpSpeed = 270.0 / 32
	quake.JumpGateTicks = 2
	quake.GroundShrink = 0.95
	quake.GroundFriction = 0
	quake.GroundDamping = 0
	quake.AirDamping = 0
	Presets.Set(quake.Name, quake)

	// Noclip: kinematic flight
	noclip := baseController()
	noclip.Name = PresetNoclip
	noclip.Capabilities = Capabilities{Fly: true}
	noclip.StartFlying = true
	Presets.Set(noclip.Name, noclip)
}
