// internal/colony/bee.go
package colony

import (
	"slices"

	"go-colony-defense/internal/component"
	"go-colony-defense/internal/config"
)

// Bee is an attacker. Variants are not subtypes: each constructor picks the
// damage and the capabilities the variant has.
type Bee struct {
	insect
	actions     int     // base actions per turn
	unblockable bool    // never stopped by ants
	immune      bool    // rejects status effects
	damageCap   float64 // 0 means uncapped
	effect      *component.StatusEffect
}

// BeeConstructor builds a bee with the given armor.
type BeeConstructor func(armor float64) *Bee

func newBee(name string, armor, damage float64) *Bee {
	return &Bee{
		insect:  insect{name: name, armor: armor, damage: damage},
		actions: 1,
	}
}

func NewBee(armor float64) *Bee {
	return newBee("Bee", armor, 1)
}

// NewWasp stings harder.
func NewWasp(armor float64) *Bee {
	return newBee("Wasp", armor, config.WaspDamage)
}

// NewHornet acts twice per turn with weak stings and ignores status effects.
func NewHornet(armor float64) *Bee {
	b := newBee("Hornet", armor, config.HornetDamage)
	b.actions = 2
	b.immune = true
	return b
}

// NewNinjaBee is never blocked.
func NewNinjaBee(armor float64) *Bee {
	b := newBee("NinjaBee", armor, 1)
	b.unblockable = true
	return b
}

// NewBoss stings like a wasp, ignores status effects like a hornet and caps
// the damage of each hit it takes.
func NewBoss(armor float64) *Bee {
	b := newBee("Boss", armor, config.WaspDamage)
	b.immune = true
	b.damageCap = config.BossDamageCap
	return b
}

// BeeConstructors maps variant names to constructors.
var BeeConstructors = map[string]BeeConstructor{
	"Bee":      NewBee,
	"Wasp":     NewWasp,
	"Hornet":   NewHornet,
	"NinjaBee": NewNinjaBee,
	"Boss":     NewBoss,
}

func (b *Bee) WaterSafe() bool    { return true }
func (b *Bee) Immune() bool       { return b.immune }
func (b *Bee) Unblockable() bool  { return b.unblockable }
func (b *Bee) DamageCap() float64 { return b.damageCap }
func (b *Bee) String() string     { return b.describe() }

// Effect returns a copy of the active status effect, if any.
func (b *Bee) Effect() (component.StatusEffect, bool) {
	if !b.effect.Active() {
		return component.StatusEffect{}, false
	}
	return *b.effect, true
}

// DamageModifier returns the damage a hit of amount actually deals.
// With a cap c the result is amount*c/(c+amount).
func (b *Bee) DamageModifier(amount float64) float64 {
	if b.damageCap <= 0 {
		return amount
	}
	return amount * b.damageCap / (b.damageCap + amount)
}

func (b *Bee) ReduceArmor(amount float64) error {
	return reduceArmor(b, &b.insect, b.DamageModifier(amount))
}

// Blocked reports whether an ant in the bee's place stops it.
func (b *Bee) Blocked() bool {
	if b.unblockable || b.place == nil || b.place.ant == nil {
		return false
	}
	return b.place.ant.BlocksPath()
}

// Sting damages ant by the bee's damage.
func (b *Bee) Sting(a Ant) error {
	return a.ReduceArmor(b.damage)
}

// MoveTo moves the bee from its place to dest. If dest refuses the bee, it is
// put back where it was, at its old position.
func (b *Bee) MoveTo(dest *Place) error {
	from := b.place
	idx := -1
	if from != nil {
		idx = slices.Index(from.bees, b)
		if err := from.RemoveInsect(b); err != nil {
			return err
		}
	}
	if err := dest.AddInsect(b); err != nil {
		if from != nil && b.place == nil {
			from.insertBee(idx, b)
		}
		return err
	}
	return nil
}

// Action runs the status effect in place of the base action while it lasts.
func (b *Bee) Action(c *Colony) error {
	if b.effect.Active() {
		b.effect.Remaining--
		switch b.effect.Kind {
		case component.EffectSlow:
			if c.time%2 == 0 {
				return b.baseAction()
			}
		case component.EffectStun:
		}
		return nil
	}
	b.effect = nil
	return b.baseAction()
}

func (b *Bee) baseAction() error {
	for n := 0; n < b.actions && b.armor > 0; n++ {
		if err := b.step(); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bee) step() error {
	if b.Blocked() {
		return b.Sting(b.place.ant)
	}
	if b.armor > 0 && b.place != nil && b.place.exit != nil {
		return b.MoveTo(b.place.exit)
	}
	return nil
}
