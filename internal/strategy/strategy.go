// internal/strategy/strategy.go
package strategy

import (
	"errors"
	"log"

	"go-colony-defense/internal/colony"
	"go-colony-defense/internal/defs"
)

// None never deploys anything.
func None(*colony.Colony) error { return nil }

// Scripted replays the orders of def on their ticks. Orders the colony cannot
// afford are skipped; any other failure stops the game.
func Scripted(def *defs.StrategyDefinition) colony.Strategy {
	byTick := make(map[int][]defs.OrderDefinition)
	for _, o := range def.Orders {
		byTick[o.Tick] = append(byTick[o.Tick], o)
	}
	return func(c *colony.Colony) error {
		for _, o := range byTick[c.Time()] {
			if err := apply(c, o.Place, o.Deploy, o.Remove); err != nil {
				if errors.Is(err, colony.ErrNotEnoughFood) {
					continue
				}
				return err
			}
		}
		return nil
	}
}

// Command is a single operator request.
type Command struct {
	Place  string
	Deploy string
	Remove bool
}

// Queue collects operator commands between turns and applies them when the
// colony asks for its strategy. A rejected command is reported through
// OnError and the rest still run.
type Queue struct {
	pending []Command
	OnError func(cmd Command, err error)
}

func NewQueue() *Queue {
	return &Queue{
		OnError: func(cmd Command, err error) {
			log.Printf("Command %+v rejected: %v", cmd, err)
		},
	}
}

// Push appends a command for the next turn.
func (q *Queue) Push(cmd Command) {
	q.pending = append(q.pending, cmd)
}

// Pending returns how many commands wait for the next turn.
func (q *Queue) Pending() int { return len(q.pending) }

// Strategy drains the queue into the colony.
func (q *Queue) Strategy(c *colony.Colony) error {
	cmds := q.pending
	q.pending = nil
	for _, cmd := range cmds {
		if err := apply(c, cmd.Place, cmd.Deploy, cmd.Remove); err != nil && q.OnError != nil {
			q.OnError(cmd, err)
		}
	}
	return nil
}

func apply(c *colony.Colony, place, deploy string, remove bool) error {
	if remove {
		return c.RemoveAnt(place)
	}
	_, err := c.DeployAnt(place, deploy)
	return err
}
