// internal/colony/place.go
package colony

import (
	"fmt"
	"slices"
)

type placeKind int

const (
	kindTunnel placeKind = iota
	kindWater
	kindGoal
	kindHive
)

// Place is a node of the tunnel network. It holds any number of bees and at
// most one ant, or two when one of them is a container.
type Place struct {
	name     string
	kind     placeKind
	exit     *Place
	entrance *Place
	ant      Ant
	bees     []*Bee
	colony   *Colony
}

// NewPlace creates a dry tunnel place. If exit is not nil, the exit's entrance
// is pointed back at the new place.
func NewPlace(name string, exit *Place) *Place {
	return newPlace(name, kindTunnel, exit)
}

// NewWater creates a place that drowns every insect that is not water-safe.
func NewWater(name string, exit *Place) *Place {
	return newPlace(name, kindWater, exit)
}

// NewGoal creates the queen's place. A bee entering it ends the game.
func NewGoal(name string) *Place {
	return newPlace(name, kindGoal, nil)
}

func newPlace(name string, kind placeKind, exit *Place) *Place {
	p := &Place{name: name, kind: kind, exit: exit}
	if exit != nil {
		exit.entrance = p
	}
	return p
}

func (p *Place) Name() string     { return p.name }
func (p *Place) Exit() *Place     { return p.exit }
func (p *Place) Entrance() *Place { return p.entrance }
func (p *Place) IsWater() bool    { return p.kind == kindWater }
func (p *Place) IsGoal() bool     { return p.kind == kindGoal }
func (p *Place) IsHive() bool     { return p.kind == kindHive }

// Ant returns the primary ant, which is the container when two ants share the place.
func (p *Place) Ant() Ant { return p.ant }

// Bees returns a snapshot of the bees in the place, in arrival order.
func (p *Place) Bees() []*Bee { return slices.Clone(p.bees) }

// HasBees reports whether at least one bee is in the place.
func (p *Place) HasBees() bool { return len(p.bees) > 0 }

func (p *Place) String() string { return p.name }

// AddInsect puts an insect into the place.
func (p *Place) AddInsect(i Insect) error {
	switch p.kind {
	case kindGoal:
		if _, ok := i.(*Bee); ok {
			return ErrBeesWin
		}
		return fmt.Errorf("%w: cannot add %s to %s", ErrAntNotAllowed, i.Name(), p)
	case kindHive:
		if _, ok := i.(*Bee); !ok {
			return fmt.Errorf("%w: cannot add %s to %s", ErrAntNotAllowed, i.Name(), p)
		}
	}

	if err := p.add(i); err != nil {
		return err
	}
	if p.kind == kindWater && !i.WaterSafe() {
		return i.ReduceArmor(i.Armor())
	}
	return nil
}

func (p *Place) add(i Insect) error {
	switch v := i.(type) {
	case *Bee:
		p.bees = append(p.bees, v)
	case Ant:
		if err := p.addAnt(v); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported insect %T", i)
	}
	i.setPlace(p)
	return nil
}

func (p *Place) addAnt(a Ant) error {
	switch {
	case p.ant == nil:
		p.ant = a
	case p.ant.CanContain(a):
		p.ant.(container).setContained(a)
	case a.CanContain(p.ant):
		a.(container).setContained(p.ant)
		p.ant = a
	default:
		return fmt.Errorf("%w: %s and %s in %s", ErrTwoAnts, p.ant.Name(), a.Name(), p)
	}
	return nil
}

// RemoveInsect takes an insect out of the place. The true queen cannot be
// removed while she has armor left; the call is then a no-op.
func (p *Place) RemoveInsect(i Insect) error {
	switch v := i.(type) {
	case *Bee:
		idx := slices.Index(p.bees, v)
		if idx < 0 {
			return fmt.Errorf("%w: %s not in %s", ErrNotInPlace, v, p)
		}
		p.bees = slices.Delete(p.bees, idx, idx+1)
	case Ant:
		if protected(v) {
			return nil
		}
		if err := p.removeAnt(v); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported insect %T", i)
	}
	i.setPlace(nil)
	return nil
}

func (p *Place) removeAnt(a Ant) error {
	if p.ant != nil && p.ant == a {
		if c, ok := a.(container); ok {
			p.ant = c.Contained()
			c.setContained(nil)
		} else {
			p.ant = nil
		}
		return nil
	}
	if p.ant != nil && p.ant.Contained() != nil && p.ant.Contained() == a {
		p.ant.(container).setContained(nil)
		return nil
	}
	return fmt.Errorf("%w: %s not in %s", ErrNotInPlace, a.Name(), p)
}

// insertBee restores b at position idx. Used to roll back a failed move.
func (p *Place) insertBee(idx int, b *Bee) {
	if idx < 0 || idx > len(p.bees) {
		idx = len(p.bees)
	}
	p.bees = slices.Insert(p.bees, idx, b)
	b.setPlace(p)
}

func protected(a Ant) bool {
	q, ok := a.(*QueenAnt)
	return ok && q.IsTrue() && q.Armor() > 0
}
