// internal/colony/roster.go
package colony

import "go-colony-defense/internal/config"

// AntConstructor builds an ant for a colony.
type AntConstructor func(c *Colony) Ant

// RosterEntry pairs an ant type with its food cost.
type RosterEntry struct {
	Name string
	Cost int
	New  AntConstructor
}

// Roster is the ordered set of ant types a colony may deploy.
type Roster struct {
	entries []RosterEntry
	index   map[string]int
}

func NewRoster() *Roster {
	return &Roster{index: make(map[string]int)}
}

// Register adds an ant type. Registering a name again replaces the entry
// but keeps its position.
func (r *Roster) Register(name string, cost int, ctor AntConstructor) *Roster {
	entry := RosterEntry{Name: name, Cost: cost, New: ctor}
	if i, ok := r.index[name]; ok {
		r.entries[i] = entry
		return r
	}
	r.index[name] = len(r.entries)
	r.entries = append(r.entries, entry)
	return r
}

// Lookup finds an ant type by name.
func (r *Roster) Lookup(name string) (RosterEntry, bool) {
	i, ok := r.index[name]
	if !ok {
		return RosterEntry{}, false
	}
	return r.entries[i], true
}

// Entries returns the ant types in registration order.
func (r *Roster) Entries() []RosterEntry {
	out := make([]RosterEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Roster) Len() int { return len(r.entries) }

// DefaultRoster registers every playable ant.
func DefaultRoster() *Roster {
	return NewRoster().
		Register("Harvester", config.CostHarvester, func(*Colony) Ant { return NewHarvesterAnt() }).
		Register("Thrower", config.CostThrower, func(*Colony) Ant { return NewThrowerAnt() }).
		Register("Long", config.CostLong, func(*Colony) Ant { return NewLongThrower() }).
		Register("Short", config.CostShort, func(*Colony) Ant { return NewShortThrower() }).
		Register("Scuba", config.CostScuba, func(*Colony) Ant { return NewScubaThrower() }).
		Register("Fire", config.CostFire, func(*Colony) Ant { return NewFireAnt() }).
		Register("Wall", config.CostWall, func(*Colony) Ant { return NewWallAnt() }).
		Register("Ninja", config.CostNinja, func(*Colony) Ant { return NewNinjaAnt() }).
		Register("Hungry", config.CostHungry, func(*Colony) Ant { return NewHungryAnt() }).
		Register("Bodyguard", config.CostBodyguard, func(*Colony) Ant { return NewBodyguardAnt() }).
		Register("Tank", config.CostTank, func(*Colony) Ant { return NewTankAnt() }).
		Register("Queen", config.CostQueen, func(c *Colony) Ant { return NewQueenAnt(c) }).
		Register("Slow", config.CostSlow, func(*Colony) Ant { return NewSlowThrower() }).
		Register("Stun", config.CostStun, func(*Colony) Ant { return NewStunThrower() })
}
