package systems

import (
	"github.com/automoto/goldenfps/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// keyByName resolves the names used in bindings, which are ebiten's own key
// names ("W", "ArrowUp", "ShiftLeft").
var keyByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[k.String()] = k
	}
	return m
}()

// resolveBindings maps every action to its keys. Unknown names are skipped
// and returned so they can be reported once.
func resolveBindings(cfg *config.InputConfig) (keys [config.ActionCount][]ebiten.Key, unknown []string) {
	for id := config.ActionID(0); id < config.ActionCount; id++ {
		for _, name := range cfg.Bindings[id].Keys {
			k, ok := keyByName[name]
			if !ok {
				unknown = append(unknown, name)
				continue
			}
			keys[id] = append(keys[id], k)
		}
	}
	return keys, unknown
}
