// internal/colony/hive.go
package colony

import (
	"fmt"
	"sort"

	"go-colony-defense/internal/defs"
	"go-colony-defense/internal/event"
)

// AssaultPlan maps a turn to the bees entering the colony on that turn.
type AssaultPlan map[int][]*Bee

// AddWave schedules count bees built by ctor with the given armor at tick.
func (p AssaultPlan) AddWave(ctor BeeConstructor, armor float64, tick, count int) AssaultPlan {
	for i := 0; i < count; i++ {
		p[tick] = append(p[tick], ctor(armor))
	}
	return p
}

// Get returns the bees scheduled for tick, or nil.
func (p AssaultPlan) Get(tick int) []*Bee {
	return p[tick]
}

// AllBees lists every scheduled bee, earliest wave first.
func (p AssaultPlan) AllBees() []*Bee {
	ticks := make([]int, 0, len(p))
	for t := range p {
		ticks = append(ticks, t)
	}
	sort.Ints(ticks)
	var bees []*Bee
	for _, t := range ticks {
		bees = append(bees, p[t]...)
	}
	return bees
}

// BuildAssaultPlan turns a plan definition into bees.
func BuildAssaultPlan(def defs.PlanDefinition) (AssaultPlan, error) {
	plan := AssaultPlan{}
	for i, wave := range def.Waves {
		ctor, ok := BeeConstructors[wave.Bee]
		if !ok {
			return nil, fmt.Errorf("wave %d: unknown bee type %q", i, wave.Bee)
		}
		for _, tick := range wave.Ticks() {
			plan.AddWave(ctor, wave.Armor, tick, wave.Count)
		}
	}
	return plan, nil
}

// Hive is the place bees wait in before they are released.
type Hive struct {
	place *Place
	plan  AssaultPlan
}

// NewHive puts every bee of plan into a fresh hive place.
func NewHive(plan AssaultPlan) *Hive {
	h := &Hive{place: newPlace("Hive", kindHive, nil), plan: plan}
	for _, b := range plan.AllBees() {
		h.place.bees = append(h.place.bees, b)
		b.setPlace(h.place)
	}
	return h
}

func (h *Hive) Place() *Place     { return h.place }
func (h *Hive) Plan() AssaultPlan { return h.plan }

// Release sends the bees scheduled for the colony's current turn into
// randomly chosen entrances and marks them active.
func (h *Hive) Release(c *Colony) error {
	wave := h.plan.Get(c.time)
	if len(wave) == 0 {
		return nil
	}
	if len(c.entrances) == 0 {
		return ErrNoEntrances
	}
	for _, b := range wave {
		dest := c.entrances[c.rng.ChooseIndex(len(c.entrances))]
		if err := b.MoveTo(dest); err != nil {
			return err
		}
		c.activeBees = append(c.activeBees, b)
	}
	c.dispatch(event.BeesReleased, len(wave))
	return nil
}
