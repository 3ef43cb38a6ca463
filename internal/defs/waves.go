// internal/defs/waves.go
package defs

// Ticks lists the ticks a wave fires on.
func (w WaveDefinition) Ticks() []int {
	if w.Every == nil {
		return []int{w.Tick}
	}
	step := w.Every.Step
	if step <= 0 {
		step = 1
	}
	var ticks []int
	for t := w.Every.From; t <= w.Every.To; t += step {
		ticks = append(ticks, t)
	}
	return ticks
}

// BeeCount returns how many bees the plan releases in total.
func (p PlanDefinition) BeeCount() int {
	n := 0
	for _, w := range p.Waves {
		n += w.Count * len(w.Ticks())
	}
	return n
}
