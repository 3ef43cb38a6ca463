package colony

import (
	"errors"
	"strings"
	"testing"

	"go-colony-defense/internal/event"
)

func TestUndefendedLaneFalls(t *testing.T) {
	plan := AssaultPlan{}.AddWave(NewBee, 3, 2, 1)
	c := newTestColony(t, tunnels(1, 5), plan, 0)
	calls := 0
	c.SetStrategy(func(*Colony) error {
		calls++
		return nil
	})

	res, err := c.Simulate()
	if err != nil {
		t.Fatal(err)
	}
	// released into tunnel_0_4 at tick 2, one move per tick: goal reached on tick 6
	if res.Outcome != BeesWin || c.Time() != 6 {
		t.Errorf("outcome %v at time %d, want bees_win at 6", res.Outcome, c.Time())
	}
	if calls != 7 {
		t.Errorf("strategy called %d times, want 7", calls)
	}

	again, err := c.Step()
	if err != nil || again != BeesWin || c.Time() != 6 {
		t.Errorf("step after game over: %v %v time %d", again, err, c.Time())
	}
}

func TestThrowerHoldsLane(t *testing.T) {
	plan := AssaultPlan{}.AddWave(NewBee, 1, 2, 1)
	c := newTestColony(t, tunnels(1, 5), plan, 4)
	if _, err := c.DeployAnt("tunnel_0_3", "Thrower"); err != nil {
		t.Fatal(err)
	}
	if c.Food() != 0 {
		t.Errorf("food = %d, want 0", c.Food())
	}

	res, err := c.Simulate()
	if err != nil {
		t.Fatal(err)
	}
	if res.Outcome != AntsWin || res.Ticks != 2 {
		t.Errorf("outcome %v at tick %d, want ants_win at 2", res.Outcome, res.Ticks)
	}
	if res.Stats.BeesKilled != 1 || res.Stats.AntsDeployed != 1 {
		t.Errorf("stats = %+v", res.Stats)
	}
}

func TestNoBeesMeansAntsWin(t *testing.T) {
	c := newTestColony(t, tunnels(1, 3), nil, 0)
	outcome, err := c.Step()
	if err != nil || outcome != AntsWin || c.Time() != 0 {
		t.Errorf("outcome %v, err %v, time %d", outcome, err, c.Time())
	}
}

func TestQueenDeathEndsGame(t *testing.T) {
	plan := AssaultPlan{}.AddWave(NewWasp, 3, 0, 1)
	c := newTestColony(t, tunnels(1, 2), plan, 6)
	if _, err := c.DeployAnt("tunnel_0_1", "Queen"); err != nil {
		t.Fatal(err)
	}
	outcome, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if outcome != BeesWin || c.Time() != 0 {
		t.Errorf("outcome %v at %d, want bees_win at 0", outcome, c.Time())
	}
	if wasp := plan.Get(0)[0]; wasp.Armor() != 2 {
		t.Errorf("queen did not throw first: wasp armor %v", wasp.Armor())
	}
}

func TestRejectedQueenLeavesThroneFree(t *testing.T) {
	c := newTestColony(t, tunnels(1, 3), nil, 16)
	if _, err := c.DeployAnt("tunnel_0_0", "Wall"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.DeployAnt("tunnel_0_0", "Queen"); !errors.Is(err, ErrTwoAnts) {
		t.Fatalf("queen into occupied place: err = %v, want ErrTwoAnts", err)
	}
	if c.Queen() != nil {
		t.Errorf("rejected queen kept the throne: %v", c.Queen())
	}

	a, err := c.DeployAnt("tunnel_0_1", "Queen")
	if err != nil {
		t.Fatal(err)
	}
	q := a.(*QueenAnt)
	if !q.IsTrue() || c.Queen() != q {
		t.Errorf("first queen on the board is not the true queen")
	}
	if c.Food() != 6 {
		t.Errorf("food = %d, want 6", c.Food())
	}
}

func TestKilledBeeNeverActs(t *testing.T) {
	plan := AssaultPlan{}.AddWave(NewBee, 1, 0, 1)
	c := newTestColony(t, tunnels(1, 3), plan, 8)
	wall, err := c.DeployAnt("tunnel_0_2", "Wall")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.DeployAnt("tunnel_0_1", "Thrower"); err != nil {
		t.Fatal(err)
	}
	outcome, err := c.Step()
	if err != nil {
		t.Fatal(err)
	}
	if outcome != AntsWin || wall.Armor() != 4 {
		t.Errorf("outcome %v, wall armor %v", outcome, wall.Armor())
	}
}

func TestSameSeedSameGame(t *testing.T) {
	run := func() []string {
		plan := AssaultPlan{}.AddWave(NewBee, 3, 0, 10)
		c := newTestColony(t, tunnels(3, 3), plan, 0)
		if _, err := c.Step(); err != nil {
			t.Fatal(err)
		}
		var at []string
		for _, b := range plan.Get(0) {
			at = append(at, b.Place().Name())
		}
		return at
	}
	a, b := run(), run()
	if strings.Join(a, ",") != strings.Join(b, ",") {
		t.Errorf("runs diverged:\n%v\n%v", a, b)
	}
}

func TestDeployAntErrors(t *testing.T) {
	c := newTestColony(t, tunnels(1, 2), nil, 5)
	rejected := 0
	c.Events().Subscribe(event.NotEnoughFood, event.ListenerFunc(func(event.Event) { rejected++ }))

	if _, err := c.DeployAnt("tunnel_9_9", "Thrower"); !errors.Is(err, ErrUnknownPlace) {
		t.Errorf("unknown place: %v", err)
	}
	if _, err := c.DeployAnt("tunnel_0_0", "Dragon"); !errors.Is(err, ErrUnknownAnt) {
		t.Errorf("unknown ant: %v", err)
	}
	if _, err := c.DeployAnt("tunnel_0_0", "Queen"); !errors.Is(err, ErrNotEnoughFood) {
		t.Errorf("queen with 5 food: %v", err)
	}
	if rejected != 1 || c.Food() != 5 {
		t.Errorf("rejections = %d, food = %d", rejected, c.Food())
	}

	if _, err := c.DeployAnt("tunnel_0_0", "Harvester"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.DeployAnt("tunnel_0_0", "Harvester"); !errors.Is(err, ErrTwoAnts) {
		t.Errorf("second harvester: %v", err)
	}
	if c.Food() != 3 {
		t.Errorf("food = %d, want 3", c.Food())
	}
}

func TestRemoveAnt(t *testing.T) {
	c := newTestColony(t, tunnels(1, 2), nil, 10)
	if _, err := c.DeployAnt("tunnel_0_0", "Bodyguard"); err != nil {
		t.Fatal(err)
	}
	thrower, err := c.DeployAnt("tunnel_0_0", "Thrower")
	if err != nil {
		t.Fatal(err)
	}
	if err := c.RemoveAnt("tunnel_0_0"); err != nil {
		t.Fatal(err)
	}
	if got := mustPlace(t, c, "tunnel_0_0").Ant(); got != thrower {
		t.Errorf("ant left = %v, want the thrower", got)
	}
	if err := c.RemoveAnt("tunnel_0_1"); err != nil {
		t.Errorf("removing from an empty place: %v", err)
	}
	if err := c.RemoveAnt("nowhere"); !errors.Is(err, ErrUnknownPlace) {
		t.Errorf("unknown place: %v", err)
	}
}

func TestNoEntrancesIsAnError(t *testing.T) {
	plan := AssaultPlan{}.AddWave(NewBee, 3, 0, 1)
	c := newTestColony(t, nil, plan, 0)
	if _, err := c.Step(); !errors.Is(err, ErrNoEntrances) {
		t.Errorf("err = %v, want ErrNoEntrances", err)
	}
	if c.Outcome() != Running {
		t.Errorf("outcome = %v", c.Outcome())
	}
}

func TestStrategyErrorAbortsTurn(t *testing.T) {
	boom := errors.New("boom")
	plan := AssaultPlan{}.AddWave(NewBee, 3, 4, 1)
	c := newTestColony(t, tunnels(1, 2), plan, 0)
	c.SetStrategy(func(*Colony) error { return boom })
	if _, err := c.Step(); !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestDuplicatePlaceRejected(t *testing.T) {
	layout := func(goal *Place, register func(*Place, bool)) {
		register(NewPlace("twin", goal), false)
		register(NewPlace("twin", goal), true)
	}
	_, err := NewColony(Config{Layout: layout})
	if !errors.Is(err, ErrDuplicatePlace) {
		t.Errorf("err = %v, want ErrDuplicatePlace", err)
	}
}

func TestColonyString(t *testing.T) {
	c := newTestColony(t, tunnels(1, 2), nil, 4)
	if _, err := c.DeployAnt("tunnel_0_0", "Thrower"); err != nil {
		t.Fatal(err)
	}
	want := "[Thrower(1, tunnel_0_0)] (Food: 0, Time: 0)"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestGameOverEventAndResult(t *testing.T) {
	plan := AssaultPlan{}.AddWave(NewBee, 3, 0, 1)
	c := newTestColony(t, tunnels(1, 1), plan, 0)
	var outcomes []Outcome
	c.Events().Subscribe(event.GameOver, event.ListenerFunc(func(e event.Event) {
		outcomes = append(outcomes, e.Data.(Outcome))
	}))

	res, err := c.Simulate()
	if err != nil {
		t.Fatal(err)
	}
	if len(outcomes) != 1 || outcomes[0] != BeesWin {
		t.Errorf("game over events = %v", outcomes)
	}
	out := string(MarshalPretty(res))
	if !strings.Contains(out, `"outcome": "bees_win"`) || !strings.Contains(out, `"seed": 42`) {
		t.Errorf("result JSON = %s", out)
	}
}

func TestDefaultRoster(t *testing.T) {
	r := DefaultRoster()
	if r.Len() != 14 {
		t.Fatalf("roster has %d ants", r.Len())
	}
	if first := r.Entries()[0]; first.Name != "Harvester" || first.Cost != 2 {
		t.Errorf("first entry = %+v", first)
	}
	r.Register("Harvester", 1, func(*Colony) Ant { return NewHarvesterAnt() })
	if e, _ := r.Lookup("Harvester"); e.Cost != 1 || r.Entries()[0].Name != "Harvester" || r.Len() != 14 {
		t.Error("re-registering moved or duplicated the entry")
	}
	c := newTestColony(t, nil, nil, 0)
	for _, e := range DefaultRoster().Entries() {
		if a := e.New(c); a.Name() != e.Name {
			t.Errorf("%s builds %s", e.Name, a.Name())
		}
	}
}
