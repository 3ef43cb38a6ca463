package colony

import (
	"testing"

	"go-colony-defense/internal/defs"
)

func TestAssaultPlanOrder(t *testing.T) {
	plan := AssaultPlan{}.
		AddWave(NewWasp, 3, 5, 1).
		AddWave(NewBee, 3, 2, 2).
		AddWave(NewHornet, 3, 5, 1)

	if len(plan.Get(2)) != 2 || len(plan.Get(5)) != 2 || plan.Get(3) != nil {
		t.Fatalf("plan = %v", plan)
	}
	var names []string
	for _, b := range plan.AllBees() {
		names = append(names, b.Name())
	}
	want := []string{"Bee", "Bee", "Wasp", "Hornet"}
	if len(names) != len(want) {
		t.Fatalf("AllBees = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("AllBees[%d] = %s, want %s", i, names[i], want[i])
		}
	}
}

func TestNewHiveHoldsEveryBee(t *testing.T) {
	plan := AssaultPlan{}.AddWave(NewBee, 3, 1, 3).AddWave(NewBoss, 20, 9, 1)
	hive := NewHive(plan)
	bees := hive.Place().Bees()
	if len(bees) != 4 {
		t.Fatalf("hive holds %d bees, want 4", len(bees))
	}
	for _, b := range bees {
		if b.Place() != hive.Place() {
			t.Errorf("%s not placed in the hive", b)
		}
	}
	if !hive.Place().IsHive() || hive.Place().Name() != "Hive" {
		t.Error("hive place misconfigured")
	}
	if err := hive.Place().AddInsect(NewThrowerAnt()); err == nil {
		t.Error("hive accepted an ant")
	}
}

func TestBuildAssaultPlan(t *testing.T) {
	def := defs.PlanDefinition{Waves: []defs.WaveDefinition{
		{Bee: "Bee", Armor: 3, Count: 1, Every: &defs.TickRange{From: 3, To: 7, Step: 2}},
		{Bee: "Boss", Armor: 20, Count: 2, Tick: 10},
	}}
	plan, err := BuildAssaultPlan(def)
	if err != nil {
		t.Fatal(err)
	}
	for _, tick := range []int{3, 5, 7} {
		if got := plan.Get(tick); len(got) != 1 || got[0].Name() != "Bee" {
			t.Errorf("tick %d: %v", tick, got)
		}
	}
	boss := plan.Get(10)
	if len(boss) != 2 || boss[0] == boss[1] || boss[0].Armor() != 20 {
		t.Errorf("tick 10: %v", boss)
	}
	if len(plan.AllBees()) != def.BeeCount() {
		t.Errorf("plan has %d bees, definition %d", len(plan.AllBees()), def.BeeCount())
	}

	_, err = BuildAssaultPlan(defs.PlanDefinition{Waves: []defs.WaveDefinition{{Bee: "Dragon", Count: 1}}})
	if err == nil {
		t.Error("unknown bee type accepted")
	}
}

func TestReleaseUsesEntrances(t *testing.T) {
	plan := AssaultPlan{}.AddWave(NewBee, 3, 0, 6)
	c := newTestColony(t, tunnels(3, 2), plan, 0)
	if err := c.Hive().Release(c); err != nil {
		t.Fatal(err)
	}
	if c.Hive().Place().HasBees() {
		t.Error("released bees still in the hive")
	}
	entrances := map[string]bool{}
	for _, p := range c.Entrances() {
		entrances[p.Name()] = true
	}
	for _, b := range plan.Get(0) {
		if !entrances[b.Place().Name()] {
			t.Errorf("bee released into %s, not an entrance", b.Place())
		}
	}
	if len(c.ActiveBees()) != 6 {
		t.Errorf("active bees = %d, want 6", len(c.ActiveBees()))
	}
}
