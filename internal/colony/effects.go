// internal/colony/effects.go
package colony

import "go-colony-defense/internal/component"

// ApplyEffect overrides b's action with kind for the next duration turns.
// A new effect replaces the current one and its remaining turns. Immune bees
// are left untouched and false is returned.
func ApplyEffect(b *Bee, kind component.EffectKind, duration int) bool {
	if b == nil || b.immune || kind == component.EffectNone {
		return false
	}
	b.effect = &component.StatusEffect{Kind: kind, Remaining: duration}
	return true
}
