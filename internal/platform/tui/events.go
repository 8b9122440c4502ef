package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// EventLogger returns a listener that writes simulation events to logger.
// Reskins are frequent and cosmetic, so they go to debug.
func EventLogger(logger *log.Logger) breakout.Listener {
	return func(ev breakout.Event) {
		switch ev.Kind {
		case breakout.EventScore:
			logger.Info("brick destroyed", "tick", ev.Tick, "score", ev.Value)
		case breakout.EventLives:
			logger.Info("ball lost", "tick", ev.Tick, "lives", ev.Value)
		case breakout.EventReskin:
			logger.Debug("reskin", "tick", ev.Tick, "index", ev.Value)
		case breakout.EventOutcome:
			logger.Info("session over", "tick", ev.Tick, "outcome", ev.Outcome)
		}
	}
}
