// internal/defs/types.go
package defs

// TickRange expands to From, From+Step, ... up to and including To.
type TickRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
	Step int `yaml:"step"`
}

// WaveDefinition schedules Count bees of one type at one or more ticks.
type WaveDefinition struct {
	Bee   string     `yaml:"bee"`
	Armor float64    `yaml:"armor"`
	Count int        `yaml:"count"`
	Tick  int        `yaml:"tick"`
	Every *TickRange `yaml:"every,omitempty"`
}

// PlanDefinition is an assault plan: the full list of waves.
type PlanDefinition struct {
	Waves []WaveDefinition `yaml:"waves"`
}

// DifficultyDefinition selects the board size, starting food and assault plan.
type DifficultyDefinition struct {
	Tunnels int      `yaml:"tunnels"`
	Food    int      `yaml:"food"`
	Plan    string   `yaml:"plan"`
	Aliases []string `yaml:"aliases"`
}

// OrderDefinition is one scripted placement order. Exactly one of Deploy and
// Remove is set.
type OrderDefinition struct {
	Tick   int    `yaml:"tick"`
	Place  string `yaml:"place"`
	Deploy string `yaml:"deploy,omitempty"`
	Remove bool   `yaml:"remove,omitempty"`
}

// StrategyDefinition is a script of placement orders.
type StrategyDefinition struct {
	Name   string            `yaml:"name"`
	Orders []OrderDefinition `yaml:"orders"`
}
