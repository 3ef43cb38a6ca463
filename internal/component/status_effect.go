// internal/component/status_effect.go
package component

// EffectKind selects the behavior a status effect substitutes for a bee's action.
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectSlow            // Act only on even turns
	EffectStun            // Skip the action entirely
)

func (k EffectKind) String() string {
	switch k {
	case EffectSlow:
		return "slow"
	case EffectStun:
		return "stun"
	default:
		return "none"
	}
}

// StatusEffect is a temporary override of a bee's action.
type StatusEffect struct {
	Kind      EffectKind
	Remaining int // Turns left with the override in place.
}

// Active reports whether the override still applies on the next action.
func (e *StatusEffect) Active() bool {
	return e != nil && e.Kind != EffectNone && e.Remaining > 0
}
