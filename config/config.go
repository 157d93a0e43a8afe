package config

import "math"

// Config holds window and timing values shared by the front-ends.
type Config struct {
	Width  int
	Height int
	TPS    int // fixed ticks per second, dt = 1/TPS
}

// CameraConfig contains presentation values for the render transform.
type CameraConfig struct {
	HeightOffset float32 `yaml:"height_offset"` // added on top of the collider top
	FOV          float32 `yaml:"fov"`
}

// WorldConfig contains values for the reference collision world.
type WorldConfig struct {
	CellSize     int     `yaml:"cell_size"`     // broadphase grid cell in world units
	Margin       float32 `yaml:"margin"`        // extra space around level bounds
	Skin         float32 `yaml:"skin"`          // contact tolerance for casts and clipping
	PushStrength float32 `yaml:"push_strength"` // share of an overlap resolved per step between bodies
	Gravity      float32 `yaml:"gravity"`       // for bodies with a non-zero gravity scale
	RideDistance float32 `yaml:"ride_distance"` // support probe below bodies for friction and movers
}

// DebugConfig toggles developer helpers.
type DebugConfig struct {
	Enabled   bool   `yaml:"enabled"`
	LogLevel  string `yaml:"log_level"`
	StatsView bool   `yaml:"stats_view"`
	SentryDSN string `yaml:"sentry_dsn"`
}

// HUDConfig contains layout values for the HUD overlay.
type HUDConfig struct {
	GaugeWidth int     `yaml:"gauge_width"`
	Precision  int     `yaml:"precision"`
	MapScale   float32 `yaml:"map_scale"` // metres per terminal column on the overhead map
	MapLeft    int     `yaml:"map_left"`  // first terminal column of the overhead map
}

var C *Config
var Camera CameraConfig
var World WorldConfig
var Debug DebugConfig
var HUD HUDConfig

// DefaultPreset is the preset selected when nothing else is requested.
var DefaultPreset = PresetGolden

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    64,
	}

	Camera = CameraConfig{
		HeightOffset: -0.5,
		FOV:          2 * math.Pi / 5,
	}

	World = WorldConfig{
		CellSize:     4,
		Margin:       16,
		Skin:         0.001,
		PushStrength: 0.5,
		Gravity:      9.81,
		RideDistance: 0.3,
	}

	Debug = DebugConfig{
		LogLevel: "info",
	}

	HUD = HUDConfig{
		GaugeWidth: 20,
		Precision:  2,
		MapScale:   0.5,
		MapLeft:    44,
	}
}

// DeltaTime returns the fixed tick length in seconds.
func (c *Config) DeltaTime() float32 {
	if c.TPS <= 0 {
		return 1.0 / 64
	}
	return 1 / float32(c.TPS)
}
