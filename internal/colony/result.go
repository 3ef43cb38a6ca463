// internal/colony/result.go
package colony

import "encoding/json"

// Result summarises a finished (or aborted) run.
type Result struct {
	RunID   string  `json:"run_id"`
	Seed    int64   `json:"seed"`
	Outcome Outcome `json:"outcome"`
	Ticks   int     `json:"ticks"`
	Food    int     `json:"food"`
	Stats   Stats   `json:"stats"`
}

func (c *Colony) Result() Result {
	return Result{
		RunID:   c.RunID.String(),
		Seed:    c.rng.Seed(),
		Outcome: c.outcome,
		Ticks:   c.time,
		Food:    c.food,
		Stats:   c.stats,
	}
}

// MarshalPretty renders v as indented JSON.
func MarshalPretty(v any) []byte {
	b, _ := json.MarshalIndent(v, "", "  ")
	return b
}
