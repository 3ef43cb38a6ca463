package colony

import (
	"testing"

	"go-colony-defense/internal/component"
)

// stepBee runs one bee action at the given colony time and returns where the bee ended up.
func stepBee(t *testing.T, c *Colony, b *Bee, tick int) string {
	t.Helper()
	c.time = tick
	if err := b.Action(c); err != nil {
		t.Fatal(err)
	}
	return b.Place().Name()
}

func TestStunLastsItsDuration(t *testing.T) {
	c := newTestColony(t, tunnels(1, 6), nil, 0)
	bee := NewBee(3)
	mustAdd(t, mustPlace(t, c, "tunnel_0_5"), bee)
	if !ApplyEffect(bee, component.EffectStun, 3) {
		t.Fatal("stun rejected")
	}
	for tick := 0; tick < 3; tick++ {
		if at := stepBee(t, c, bee, tick); at != "tunnel_0_5" {
			t.Fatalf("tick %d: stunned bee moved to %s", tick, at)
		}
	}
	if _, ok := bee.Effect(); ok {
		t.Error("effect still active after its duration")
	}
	if at := stepBee(t, c, bee, 3); at != "tunnel_0_4" {
		t.Errorf("bee at %s after stun wore off, want tunnel_0_4", at)
	}
}

func TestSlowActsOnEvenTurns(t *testing.T) {
	c := newTestColony(t, tunnels(1, 6), nil, 0)
	bee := NewBee(3)
	mustAdd(t, mustPlace(t, c, "tunnel_0_5"), bee)
	ApplyEffect(bee, component.EffectSlow, 3)

	want := []string{"tunnel_0_4", "tunnel_0_4", "tunnel_0_3", "tunnel_0_2"}
	for tick, w := range want {
		if at := stepBee(t, c, bee, tick); at != w {
			t.Errorf("tick %d: bee at %s, want %s", tick, at, w)
		}
	}
}

func TestEffectsReplaceNotStack(t *testing.T) {
	c := newTestColony(t, tunnels(1, 6), nil, 0)
	bee := NewBee(3)
	mustAdd(t, mustPlace(t, c, "tunnel_0_5"), bee)
	ApplyEffect(bee, component.EffectStun, 3)
	stepBee(t, c, bee, 0)

	ApplyEffect(bee, component.EffectStun, 1)
	e, ok := bee.Effect()
	if !ok || e.Kind != component.EffectStun || e.Remaining != 1 {
		t.Fatalf("effect = %+v, %v; want stun with 1 turn", e, ok)
	}
	if at := stepBee(t, c, bee, 1); at != "tunnel_0_5" {
		t.Fatalf("bee moved to %s while stunned", at)
	}
	if at := stepBee(t, c, bee, 2); at != "tunnel_0_4" {
		t.Errorf("bee at %s, want tunnel_0_4", at)
	}

	ApplyEffect(bee, component.EffectStun, 2)
	ApplyEffect(bee, component.EffectSlow, 1)
	if e, _ := bee.Effect(); e.Kind != component.EffectSlow || e.Remaining != 1 {
		t.Errorf("effect = %+v, want the later slow", e)
	}
}

func TestImmuneBeesIgnoreEffects(t *testing.T) {
	for _, b := range []*Bee{NewHornet(3), NewBoss(3)} {
		if ApplyEffect(b, component.EffectStun, 3) {
			t.Errorf("%s accepted stun", b.Name())
		}
		if _, ok := b.Effect(); ok {
			t.Errorf("%s carries an effect", b.Name())
		}
	}
}

func TestEffectThrowers(t *testing.T) {
	cases := []struct {
		build    func() *ThrowerAnt
		kind     component.EffectKind
		duration int
	}{
		{NewSlowThrower, component.EffectSlow, 3},
		{NewStunThrower, component.EffectStun, 1},
	}
	for _, tc := range cases {
		c := newTestColony(t, tunnels(1, 3), nil, 0)
		thrower := tc.build()
		bee := NewBee(3)
		mustAdd(t, mustPlace(t, c, "tunnel_0_0"), thrower)
		mustAdd(t, mustPlace(t, c, "tunnel_0_2"), bee)
		if err := thrower.Action(c); err != nil {
			t.Fatal(err)
		}
		e, ok := bee.Effect()
		if !ok || e.Kind != tc.kind || e.Remaining != tc.duration {
			t.Errorf("%s: effect = %+v, %v", thrower.Name(), e, ok)
		}
		if bee.Armor() != 3 {
			t.Errorf("%s dealt damage", thrower.Name())
		}
	}
}
