// internal/colony/insect.go
package colony

import (
	"fmt"
	"strconv"
)

// Insect is anything that occupies a Place: ants and bees.
type Insect interface {
	Name() string
	Armor() float64
	Damage() float64
	Place() *Place
	WaterSafe() bool
	// ReduceArmor applies damage and takes the insect off the board when its
	// armor runs out.
	ReduceArmor(amount float64) error
	// Action is the insect's move for one turn.
	Action(c *Colony) error

	setPlace(p *Place)
}

// insect holds the attributes every ant and bee share.
type insect struct {
	name   string
	armor  float64
	damage float64
	place  *Place
}

func (i *insect) Name() string      { return i.name }
func (i *insect) Armor() float64    { return i.armor }
func (i *insect) Damage() float64   { return i.damage }
func (i *insect) Place() *Place     { return i.place }
func (i *insect) setPlace(p *Place) { i.place = p }
func (i *insect) doubleDamage()     { i.damage *= 2 }
func (i *insect) describe() string {
	return fmt.Sprintf("%s(%s, %v)", i.name, strconv.FormatFloat(i.armor, 'g', -1, 64), i.place)
}

// reduceArmor is the shared damage rule. self is the outer value stored in the
// place, base its attributes. Removal happens only on the hit that crosses
// zero, so an insect leaves its place exactly once.
func reduceArmor(self Insect, base *insect, amount float64) error {
	wasAlive := base.armor > 0
	base.armor -= amount
	if !wasAlive || base.armor > 0 || base.place == nil {
		return nil
	}
	place := base.place
	if err := place.RemoveInsect(self); err != nil {
		return err
	}
	if place.colony != nil && self.Place() == nil {
		place.colony.expired(self)
	}
	return nil
}

// damageAll hits every bee in p once. The bee list is snapshotted first since
// bees leave the place as they die.
func damageAll(p *Place, amount float64) error {
	if p == nil {
		return nil
	}
	for _, b := range p.Bees() {
		if err := b.ReduceArmor(amount); err != nil {
			return err
		}
	}
	return nil
}
