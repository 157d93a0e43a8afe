package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// File is the on-disk override layout. Every section is optional; values
// not present keep their built-in defaults.
type File struct {
	Preset   string               `yaml:"preset"`
	Presets  map[string]yaml.Node `yaml:"presets"`
	Bindings map[string][]string  `yaml:"bindings"`
	Input    yaml.Node            `yaml:"input"`
	Camera   yaml.Node            `yaml:"camera"`
	World    yaml.Node            `yaml:"world"`
	Debug    yaml.Node            `yaml:"debug"`
	HUD      yaml.Node            `yaml:"hud"`
}

// LoadFile reads a YAML override file and applies it to the package config.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return Apply(data)
}

// Apply decodes YAML overrides and applies them to the package config.
// Presets named in the file start from the registered preset of the same
// name, or from the base tuning when the name is new.
func Apply(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	sections := []struct {
		node *yaml.Node
		dst  any
		name string
	}{
		{&f.Input, &Input, "input"},
		{&f.Camera, &Camera, "camera"},
		{&f.World, &World, "world"},
		{&f.Debug, &Debug, "debug"},
		{&f.HUD, &HUD, "hud"},
	}
	for _, s := range sections {
		if s.node.Kind == 0 {
			continue
		}
		if err := s.node.Decode(s.dst); err != nil {
			return fmt.Errorf("decode %s: %w", s.name, err)
		}
	}

	for name, keys := range f.Bindings {
		id, ok := ActionByName(name)
		if !ok {
			return fmt.Errorf("%w: unknown action %q in bindings", ErrInvalidConfig, name)
		}
		Input.Bindings[id] = InputBinding{Keys: keys}
	}

	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c, ok := Presets.Get(name)
		if !ok {
			c = baseController()
		}
		node := f.Presets[name]
		if err := node.Decode(&c); err != nil {
			return fmt.Errorf("decode preset %q: %w", name, err)
		}
		c.Name = name
		if err := RegisterPreset(c); err != nil {
			return err
		}
	}

	if f.Preset != "" {
		if _, ok := Presets.Get(f.Preset); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownPreset, f.Preset)
		}
		DefaultPreset = f.Preset
	}
	return nil
}
