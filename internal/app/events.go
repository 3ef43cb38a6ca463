// internal/app/events.go
package app

import (
	"log"

	"go-colony-defense/internal/colony"
	"go-colony-defense/internal/event"
)

// EventLogger writes a line per game event.
type EventLogger struct {
	Logger *log.Logger
}

// NewEventLogger subscribes a logger to every event the colony emits.
func NewEventLogger(d *event.Dispatcher, logger *log.Logger) *EventLogger {
	if logger == nil {
		logger = log.Default()
	}
	l := &EventLogger{Logger: logger}
	d.SubscribeAll(l,
		event.AntDeployed,
		event.AntRemoved,
		event.InsectExpired,
		event.BeesReleased,
		event.NotEnoughFood,
		event.GameOver,
	)
	return l
}

func (l *EventLogger) OnEvent(e event.Event) {
	switch e.Type {
	case event.AntDeployed:
		if a, ok := e.Data.(colony.Ant); ok {
			l.Logger.Printf("[%d] deployed %s", e.Tick, a)
		}
	case event.AntRemoved:
		if a, ok := e.Data.(colony.Ant); ok {
			l.Logger.Printf("[%d] removed %s", e.Tick, a.Name())
		}
	case event.InsectExpired:
		if i, ok := e.Data.(colony.Insect); ok {
			l.Logger.Printf("[%d] %s expired", e.Tick, i.Name())
		}
	case event.BeesReleased:
		l.Logger.Printf("[%d] %v bees released", e.Tick, e.Data)
	case event.NotEnoughFood:
		l.Logger.Printf("[%d] cannot afford %v", e.Tick, e.Data)
	case event.GameOver:
		l.Logger.Printf("[%d] game over: %v", e.Tick, e.Data)
	}
}
