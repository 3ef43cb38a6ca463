package colony

import (
	"fmt"
	"testing"
)

// tunnels is a dry layout: n tunnels of length places, entrance at the far end.
func tunnels(n, length int) LayoutFunc {
	return func(goal *Place, register func(*Place, bool)) {
		for t := 0; t < n; t++ {
			exit := goal
			for s := 0; s < length; s++ {
				exit = NewPlace(fmt.Sprintf("tunnel_%d_%d", t, s), exit)
				register(exit, s == length-1)
			}
		}
	}
}

func newTestColony(t *testing.T, layout LayoutFunc, plan AssaultPlan, food int) *Colony {
	t.Helper()
	if plan == nil {
		plan = AssaultPlan{}
	}
	c, err := NewColony(Config{
		Hive:   NewHive(plan),
		Layout: layout,
		Food:   food,
		Seed:   42,
	})
	if err != nil {
		t.Fatalf("NewColony: %v", err)
	}
	return c
}

func mustPlace(t *testing.T, c *Colony, name string) *Place {
	t.Helper()
	p, ok := c.Place(name)
	if !ok {
		t.Fatalf("no place %q", name)
	}
	return p
}

func mustAdd(t *testing.T, p *Place, insects ...Insect) {
	t.Helper()
	for _, i := range insects {
		if err := p.AddInsect(i); err != nil {
			t.Fatalf("AddInsect(%s) into %s: %v", i.Name(), p, err)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
