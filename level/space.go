package level

import (
	"github.com/automoto/goldenfps/config"
	"github.com/automoto/goldenfps/world"
)

// NewSpace builds a collision world holding the level's solids and movers.
func (l *Level) NewSpace(cfg *config.WorldConfig) *world.Space {
	s := world.NewSpace(l.Bounds(), cfg)
	for _, b := range l.Solids {
		s.AddSolid(b)
	}
	for _, m := range l.Movers {
		s.AddMover(m.Box, m.Rise, m.Period)
	}
	return s
}
