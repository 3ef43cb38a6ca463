// internal/colony/ant.go
package colony

import "go-colony-defense/internal/config"

// Ant is a defender. Variants differ in what they do each turn and in the
// capabilities below.
type Ant interface {
	Insect
	// BlocksPath reports whether bees in the same place are stopped.
	BlocksPath() bool
	// IsContainer reports whether the ant can shelter another ant.
	IsContainer() bool
	// CanContain reports whether other may be sheltered right now.
	CanContain(other Ant) bool
	// Contained returns the sheltered ant, if any.
	Contained() Ant

	doubleDamage()
}

// container is implemented by ants that shelter another ant.
type container interface {
	Ant
	setContained(a Ant)
}

// antBase carries the defaults: blocks the path, holds nothing, does nothing.
type antBase struct {
	insect
	self      Ant
	blocks    bool
	waterSafe bool
}

func newAntBase(name string, armor, damage float64) antBase {
	return antBase{
		insect: insect{name: name, armor: armor, damage: damage},
		blocks: true,
	}
}

// bind records the outer value so shared methods act on it.
func (a *antBase) bind(self Ant) { a.self = self }

func (a *antBase) BlocksPath() bool     { return a.blocks }
func (a *antBase) WaterSafe() bool      { return a.waterSafe }
func (a *antBase) IsContainer() bool    { return false }
func (a *antBase) CanContain(Ant) bool  { return false }
func (a *antBase) Contained() Ant       { return nil }
func (a *antBase) Action(*Colony) error { return nil }
func (a *antBase) String() string       { return a.describe() }
func (a *antBase) ReduceArmor(amount float64) error {
	return reduceArmor(a.self, &a.insect, amount)
}

// HarvesterAnt produces one food per turn.
type HarvesterAnt struct {
	antBase
}

func NewHarvesterAnt() *HarvesterAnt {
	h := &HarvesterAnt{antBase: newAntBase("Harvester", 1, 0)}
	h.bind(h)
	return h
}

func (h *HarvesterAnt) Action(c *Colony) error {
	c.food++
	return nil
}

// WallAnt only soaks damage.
type WallAnt struct {
	antBase
}

func NewWallAnt() *WallAnt {
	w := &WallAnt{antBase: newAntBase("Wall", config.WallArmor, 0)}
	w.bind(w)
	return w
}

// FireAnt burns every bee in its place when it dies.
type FireAnt struct {
	antBase
}

func NewFireAnt() *FireAnt {
	f := &FireAnt{antBase: newAntBase("Fire", 1, config.FireDamage)}
	f.bind(f)
	return f
}

// ReduceArmor deals the fire damage before the ant itself is removed.
func (f *FireAnt) ReduceArmor(amount float64) error {
	if f.armor > 0 && f.armor-amount <= 0 {
		if err := damageAll(f.place, f.damage); err != nil {
			return err
		}
	}
	return reduceArmor(f, &f.insect, amount)
}

// NinjaAnt lets bees pass and hits all of them every turn.
type NinjaAnt struct {
	antBase
}

func NewNinjaAnt() *NinjaAnt {
	n := &NinjaAnt{antBase: newAntBase("Ninja", 1, 1)}
	n.blocks = false
	n.bind(n)
	return n
}

func (n *NinjaAnt) Action(*Colony) error {
	return damageAll(n.place, n.damage)
}

// HungryAnt swallows a random bee in its place, then digests for a few turns.
type HungryAnt struct {
	antBase
	digestTime int
	digesting  int
}

func NewHungryAnt() *HungryAnt {
	h := &HungryAnt{
		antBase:    newAntBase("Hungry", 1, 0),
		digestTime: config.HungryDigestTime,
	}
	h.bind(h)
	return h
}

// Digesting returns the turns left before the ant can eat again.
func (h *HungryAnt) Digesting() int { return h.digesting }

func (h *HungryAnt) Action(c *Colony) error {
	if h.digesting > 0 {
		h.digesting--
		return nil
	}
	if h.place == nil || !h.place.HasBees() {
		return nil
	}
	bee := h.place.bees[c.rng.ChooseIndex(len(h.place.bees))]
	h.digesting = h.digestTime
	return bee.ReduceArmor(bee.Armor())
}

// BodyguardAnt shelters one non-container ant and acts on its behalf.
type BodyguardAnt struct {
	antBase
	contained Ant
}

func NewBodyguardAnt() *BodyguardAnt {
	b := &BodyguardAnt{antBase: newAntBase("Bodyguard", config.ContainerArmor, 0)}
	b.bind(b)
	return b
}

func (b *BodyguardAnt) IsContainer() bool  { return true }
func (b *BodyguardAnt) Contained() Ant     { return b.contained }
func (b *BodyguardAnt) setContained(a Ant) { b.contained = a }
func (b *BodyguardAnt) CanContain(other Ant) bool {
	return b.contained == nil && other != nil && !other.IsContainer()
}

func (b *BodyguardAnt) Action(c *Colony) error {
	if b.contained != nil {
		return b.contained.Action(c)
	}
	return nil
}

// TankAnt is a bodyguard that also hits every bee in its place.
type TankAnt struct {
	BodyguardAnt
}

func NewTankAnt() *TankAnt {
	t := &TankAnt{BodyguardAnt: BodyguardAnt{antBase: newAntBase("Tank", config.ContainerArmor, 1)}}
	t.bind(t)
	return t
}

func (t *TankAnt) Action(c *Colony) error {
	if err := t.BodyguardAnt.Action(c); err != nil {
		return err
	}
	return damageAll(t.place, t.damage)
}
