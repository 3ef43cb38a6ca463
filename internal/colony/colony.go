// internal/colony/colony.go
package colony

import (
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"

	"github.com/google/uuid"

	"go-colony-defense/internal/event"
	"go-colony-defense/internal/utils"
)

// LayoutFunc builds the tunnels leading to goal and registers every place,
// telling whether bees enter the colony there.
type LayoutFunc func(goal *Place, register func(p *Place, entrance bool))

// Strategy deploys ants. It is called once per turn.
type Strategy func(c *Colony) error

// Outcome is the state of the turn loop.
type Outcome int

const (
	Running Outcome = iota
	AntsWin         // every bee is gone
	BeesWin         // a bee reached the goal or the true queen fell
)

func (o Outcome) String() string {
	switch o {
	case AntsWin:
		return "ants_win"
	case BeesWin:
		return "bees_win"
	default:
		return "running"
	}
}

// MarshalText lets results carry the outcome by name.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Config holds everything needed to set up a colony.
type Config struct {
	Strategy   Strategy
	Hive       *Hive
	Roster     *Roster
	Layout     LayoutFunc
	Food       int
	Seed       int64
	Dispatcher *event.Dispatcher
	GoalName   string
}

// Stats counts what happened during a run.
type Stats struct {
	AntsDeployed int `json:"ants_deployed"`
	AntsLost     int `json:"ants_lost"`
	BeesKilled   int `json:"bees_killed"`
}

// Colony owns the board and runs the turn loop. A colony is not safe for
// concurrent use; separate colonies share nothing.
type Colony struct {
	RunID uuid.UUID

	time      int
	food      int
	strategy  Strategy
	hive      *Hive
	roster    *Roster
	goal      *Place
	places    []*Place
	byName    map[string]*Place
	entrances []*Place

	activeBees []*Bee
	remaining  int
	started    bool
	outcome    Outcome

	queen  *QueenAnt
	rng    *utils.PRNGService
	events *event.Dispatcher
	stats  Stats
}

// NewColony registers the hive and the layout's places.
func NewColony(cfg Config) (*Colony, error) {
	if cfg.Hive == nil {
		cfg.Hive = NewHive(AssaultPlan{})
	}
	if cfg.Roster == nil {
		cfg.Roster = DefaultRoster()
	}
	if cfg.Dispatcher == nil {
		cfg.Dispatcher = event.NewDispatcher()
	}
	if cfg.GoalName == "" {
		cfg.GoalName = "AntQueen"
	}
	c := &Colony{
		RunID:    uuid.New(),
		food:     cfg.Food,
		strategy: cfg.Strategy,
		hive:     cfg.Hive,
		roster:   cfg.Roster,
		goal:     NewGoal(cfg.GoalName),
		byName:   make(map[string]*Place),
		rng:      utils.NewPRNGService(cfg.Seed),
		events:   cfg.Dispatcher,
	}
	c.goal.colony = c

	var regErr error
	register := func(p *Place, entrance bool) {
		if regErr != nil {
			return
		}
		if _, dup := c.byName[p.name]; dup {
			regErr = fmt.Errorf("%w: %s", ErrDuplicatePlace, p.name)
			return
		}
		p.colony = c
		c.places = append(c.places, p)
		c.byName[p.name] = p
		if entrance {
			p.entrance = c.hive.place
			c.entrances = append(c.entrances, p)
		}
	}
	register(c.hive.place, false)
	if cfg.Layout != nil {
		cfg.Layout(c.goal, register)
	}
	if regErr != nil {
		return nil, regErr
	}
	return c, nil
}

func (c *Colony) Time() int                     { return c.time }
func (c *Colony) Food() int                     { return c.food }
func (c *Colony) SetFood(food int)              { c.food = food }
func (c *Colony) Goal() *Place                  { return c.goal }
func (c *Colony) Hive() *Hive                   { return c.hive }
func (c *Colony) Roster() *Roster               { return c.roster }
func (c *Colony) Queen() *QueenAnt              { return c.queen }
func (c *Colony) Rand() *utils.PRNGService      { return c.rng }
func (c *Colony) Events() *event.Dispatcher     { return c.events }
func (c *Colony) Outcome() Outcome              { return c.outcome }
func (c *Colony) Stats() Stats                  { return c.stats }
func (c *Colony) SetStrategy(strategy Strategy) { c.strategy = strategy }

// Places returns every registered place in registration order, hive first.
func (c *Colony) Places() []*Place { return slices.Clone(c.places) }

// Entrances returns the places bees enter through.
func (c *Colony) Entrances() []*Place { return slices.Clone(c.entrances) }

// Place looks a place up by name.
func (c *Colony) Place(name string) (*Place, bool) {
	p, ok := c.byName[name]
	return p, ok
}

// ActiveBees returns the bees released into the colony that are still tracked.
func (c *Colony) ActiveBees() []*Bee { return slices.Clone(c.activeBees) }

// Ants returns the primary ant of every place in registry order.
func (c *Colony) Ants() []Ant {
	var ants []Ant
	for _, p := range c.places {
		if p.ant != nil {
			ants = append(ants, p.ant)
		}
	}
	return ants
}

// Bees returns every bee on the board, the hive included.
func (c *Colony) Bees() []*Bee {
	var bees []*Bee
	for _, p := range c.places {
		bees = append(bees, p.bees...)
	}
	return bees
}

// DeployAnt places a new ant of antType in the named place if the colony can
// pay for it. Lack of food is reported and returns ErrNotEnoughFood.
func (c *Colony) DeployAnt(placeName, antType string) (Ant, error) {
	entry, ok := c.roster.Lookup(antType)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAnt, antType)
	}
	place, ok := c.byName[placeName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlace, placeName)
	}
	if c.food < entry.Cost {
		log.Printf("Not enough food remains to place %s", antType)
		c.dispatch(event.NotEnoughFood, antType)
		return nil, fmt.Errorf("%w: %s costs %d, have %d", ErrNotEnoughFood, antType, entry.Cost, c.food)
	}
	ant := entry.New(c)
	if err := place.AddInsect(ant); err != nil {
		c.disown(ant)
		return nil, err
	}
	c.food -= entry.Cost
	c.stats.AntsDeployed++
	c.dispatch(event.AntDeployed, ant)
	return ant, nil
}

// RemoveAnt takes the primary ant out of the named place. The true queen stays.
func (c *Colony) RemoveAnt(placeName string) error {
	place, ok := c.byName[placeName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPlace, placeName)
	}
	ant := place.ant
	if ant == nil {
		return nil
	}
	if err := place.RemoveInsect(ant); err != nil {
		return err
	}
	if ant.Place() == nil {
		c.dispatch(event.AntRemoved, ant)
	}
	return nil
}

// Step plays one turn. Once the game is over it only reports the outcome.
// An error means a broken invariant and leaves the colony unusable.
func (c *Colony) Step() (Outcome, error) {
	if c.outcome != Running {
		return c.outcome, nil
	}
	if !c.started {
		c.started = true
		c.remaining = len(c.Bees())
	}
	err := c.turn()
	switch {
	case err == nil:
		return Running, nil
	case errors.Is(err, errAntsWin):
		c.finish(AntsWin)
	case errors.Is(err, ErrBeesWin):
		c.finish(BeesWin)
	default:
		return Running, fmt.Errorf("turn %d: %w", c.time, err)
	}
	return c.outcome, nil
}

func (c *Colony) turn() error {
	if err := c.hive.Release(c); err != nil {
		return err
	}
	if c.strategy != nil {
		if err := c.strategy(c); err != nil {
			return err
		}
	}
	for _, ant := range c.Ants() {
		if ant.Armor() > 0 {
			if err := ant.Action(c); err != nil {
				return err
			}
		}
	}
	for _, bee := range c.ActiveBees() {
		if bee.Armor() > 0 {
			if err := bee.Action(c); err != nil {
				return err
			}
		}
		if bee.Armor() <= 0 {
			c.remaining--
			if i := slices.Index(c.activeBees, bee); i >= 0 {
				c.activeBees = slices.Delete(c.activeBees, i, i+1)
			}
		}
	}
	if c.remaining <= 0 {
		return errAntsWin
	}
	c.time++
	return nil
}

// Simulate plays until one side wins.
func (c *Colony) Simulate() (Result, error) {
	for {
		outcome, err := c.Step()
		if err != nil {
			return c.Result(), err
		}
		if outcome != Running {
			return c.Result(), nil
		}
	}
}

// disown gives up the true queen slot claimed by an ant that never made it
// onto the board.
func (c *Colony) disown(a Ant) {
	if q, ok := a.(*QueenAnt); ok && q == c.queen {
		q.isTrue = false
		c.queen = nil
	}
}

func (c *Colony) finish(o Outcome) {
	c.outcome = o
	c.dispatch(event.GameOver, o)
}

// expired is called once for every insect whose armor ran out on the board.
func (c *Colony) expired(i Insect) {
	if _, ok := i.(*Bee); ok {
		c.stats.BeesKilled++
	} else {
		c.stats.AntsLost++
	}
	c.dispatch(event.InsectExpired, i)
}

func (c *Colony) dispatch(t event.EventType, data interface{}) {
	c.events.Dispatch(event.Event{Type: t, Tick: c.time, Data: data})
}

func (c *Colony) String() string {
	var parts []string
	for _, a := range c.Ants() {
		parts = append(parts, fmt.Sprint(a))
	}
	for _, b := range c.Bees() {
		parts = append(parts, b.String())
	}
	return fmt.Sprintf("[%s] (Food: %d, Time: %d)", strings.Join(parts, ", "), c.food, c.time)
}
