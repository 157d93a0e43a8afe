package term

import (
	"time"

	"github.com/sirupsen/logrus"
)

// GameLoop calls a tick function at a fixed rate until the tick asks to quit.
type GameLoop struct {
	tick     func() bool
	tickRate int
	log      logrus.FieldLogger
}

func NewGameLoop(tick func() bool, tickRate int, log logrus.FieldLogger) *GameLoop {
	if tickRate <= 0 {
		tickRate = 64
	}
	return &GameLoop{
		tick:     tick,
		tickRate: tickRate,
		log:      log,
	}
}

// Run blocks until a tick returns false.
func (g *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	g.log.WithField("tps", g.tickRate).Debug("game loop started")

	for range ticker.C {
		if !g.tick() {
			g.log.Debug("game loop finished")
			return
		}
	}
}
