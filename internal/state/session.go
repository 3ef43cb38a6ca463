// internal/state/session.go
package state

import (
	"go-colony-defense/internal/colony"
	"go-colony-defense/internal/strategy"
)

// Session is one game: the colony and the queue the operator's clicks go to.
// The colony's strategy must drain Queue.
type Session struct {
	Colony *colony.Colony
	Queue  *strategy.Queue
}

// SessionFactory starts a fresh game. Restarting calls it again.
type SessionFactory func() (*Session, error)
