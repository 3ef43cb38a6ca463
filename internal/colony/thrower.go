// internal/colony/thrower.go
package colony

import (
	"math"

	"go-colony-defense/internal/component"
	"go-colony-defense/internal/config"
)

// ThrowerAnt throws at the nearest bee whose distance lies in [MinRange, MaxRange].
// Slow and Stun throwers carry an effect instead of dealing damage.
type ThrowerAnt struct {
	antBase
	minRange       int
	maxRange       int
	effect         component.EffectKind
	effectDuration int
}

func newThrower(name string, damage float64, minRange, maxRange int) *ThrowerAnt {
	t := &ThrowerAnt{
		antBase:  newAntBase(name, 1, damage),
		minRange: minRange,
		maxRange: maxRange,
	}
	t.bind(t)
	return t
}

func NewThrowerAnt() *ThrowerAnt {
	return newThrower("Thrower", 1, 0, config.ThrowerMaxRange)
}

// NewLongThrower only reaches bees at least LongThrowerMinRange places away.
func NewLongThrower() *ThrowerAnt {
	return newThrower("Long", 1, config.LongThrowerMinRange, math.MaxInt)
}

// NewShortThrower only reaches bees at most ShortThrowerMaxRange places away.
func NewShortThrower() *ThrowerAnt {
	return newThrower("Short", 1, 0, config.ShortThrowerMaxRange)
}

// NewScubaThrower survives water.
func NewScubaThrower() *ThrowerAnt {
	t := newThrower("Scuba", 1, 0, config.ThrowerMaxRange)
	t.waterSafe = true
	return t
}

func NewSlowThrower() *ThrowerAnt {
	t := newThrower("Slow", 0, 0, config.ThrowerMaxRange)
	t.effect = component.EffectSlow
	t.effectDuration = config.SlowDuration
	return t
}

func NewStunThrower() *ThrowerAnt {
	t := newThrower("Stun", 0, 0, config.ThrowerMaxRange)
	t.effect = component.EffectStun
	t.effectDuration = config.StunDuration
	return t
}

func (t *ThrowerAnt) MinRange() int { return t.minRange }
func (t *ThrowerAnt) MaxRange() int { return t.maxRange }

// NearestBee walks from the ant's place towards the hive, one hop per step,
// and returns a random bee of the first occupied place in range. The hive
// itself is never searched. The only random draw is over that one place.
func (t *ThrowerAnt) NearestBee(c *Colony) *Bee {
	distance := 0
	for spot := t.place; spot != nil && !spot.IsHive(); spot = spot.entrance {
		if distance > t.maxRange {
			break
		}
		if len(spot.bees) > 0 && distance >= t.minRange {
			return spot.bees[c.rng.ChooseIndex(len(spot.bees))]
		}
		distance++
	}
	return nil
}

// ThrowAt hits target with a leaf or with the thrower's effect.
func (t *ThrowerAnt) ThrowAt(target *Bee) error {
	if target == nil {
		return nil
	}
	if t.effect != component.EffectNone {
		ApplyEffect(target, t.effect, t.effectDuration)
		return nil
	}
	return target.ReduceArmor(t.damage)
}

func (t *ThrowerAnt) Action(c *Colony) error {
	return t.ThrowAt(t.NearestBee(c))
}
