// Package assets embeds the bundled scene files.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/goldenfps/level"
)

// LevelsDir is the directory holding the bundled TMX files.
const LevelsDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS returns the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadLevels parses every bundled level.
func LoadLevels() (map[string]*level.Level, []string, error) {
	return level.LoadAll(assetFS, LevelsDir)
}

// LoadLevel resolves a level by name: the built-in arena for an empty name
// or level.DefaultName, otherwise a bundled TMX file.
func LoadLevel(name string) (*level.Level, error) {
	if name == "" || name == level.DefaultName {
		return level.Default(), nil
	}
	l, err := level.Load(assetFS, fmt.Sprintf("%s/%s.tmx", LevelsDir, name))
	if err != nil {
		return nil, fmt.Errorf("bundled level %q: %w", name, err)
	}
	return l, nil
}
