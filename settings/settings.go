// Package settings persists the player's choices between sessions: look
// sensitivity, the last preset and the last level.
package settings

import (
	"encoding/json"
	"fmt"

	"github.com/automoto/goldenfps/config"
	"github.com/quasilyte/gdata"
	"github.com/sirupsen/logrus"
)

const settingsKey = "settings"

// Saved represents the settings data stored on disk
type Saved struct {
	SensitivityX float32 `json:"sensitivityX"`
	SensitivityY float32 `json:"sensitivityY"`
	Preset       string  `json:"preset"`
	Level        string  `json:"level"`
}

// items is the part of gdata.Manager the store needs.
type items interface {
	LoadItem(name string) ([]byte, error)
	SaveItem(name string, data []byte) error
}

// Store loads and saves Saved. A store without a backend does nothing, so
// sessions still run where no data directory is available.
type Store struct {
	items items
	log   logrus.FieldLogger
}

// Open opens the gdata store for appName. On failure it logs a warning and
// returns a store that keeps nothing.
func Open(appName string, log logrus.FieldLogger) *Store {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.WithError(err).Warn("could not initialize persistence")
		return &Store{log: log}
	}
	return &Store{items: m, log: log}
}

// Load returns the saved settings, or nil when none were saved yet.
func (s *Store) Load() (*Saved, error) {
	if s.items == nil {
		return nil, nil
	}
	data, err := s.items.LoadItem(settingsKey)
	if err != nil {
		s.log.WithError(err).Warn("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var saved Saved
	if err := json.Unmarshal(data, &saved); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &saved, nil
}

// Save writes the settings.
func (s *Store) Save(saved *Saved) error {
	if s.items == nil {
		return nil
	}
	data, err := json.Marshal(saved)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := s.items.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.log.WithFields(logrus.Fields{"preset": saved.Preset, "level": saved.Level}).Debug("settings saved")
	return nil
}

// Current captures the live settings.
func Current(in *config.InputConfig, preset, level string) *Saved {
	return &Saved{
		SensitivityX: in.SensitivityX,
		SensitivityY: in.SensitivityY,
		Preset:       preset,
		Level:        level,
	}
}

// Apply copies saved sensitivities into the input config and returns the
// saved preset and level, keeping the given defaults for anything unset or
// no longer valid.
func Apply(saved *Saved, in *config.InputConfig, preset, level string) (string, string) {
	if saved == nil {
		return preset, level
	}
	if saved.SensitivityX > 0 {
		in.SensitivityX = saved.SensitivityX
	}
	if saved.SensitivityY > 0 {
		in.SensitivityY = saved.SensitivityY
	}
	if _, err := config.Preset(saved.Preset); err == nil {
		preset = saved.Preset
	}
	if saved.Level != "" {
		level = saved.Level
	}
	return preset, level
}
