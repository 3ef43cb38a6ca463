// internal/app/batch.go
package app

import (
	"sync"
	"time"

	"go-colony-defense/internal/colony"
	"go-colony-defense/internal/config"
)

// Summary aggregates a batch of games.
type Summary struct {
	Runs     int      `json:"runs"`
	AntsWins int      `json:"ants_wins"`
	BeesWins int      `json:"bees_wins"`
	Failed   int      `json:"failed"`
	WinRate  float64  `json:"win_rate"`
	AvgTicks float64  `json:"avg_ticks"`
	BaseSeed int64    `json:"base_seed"`
	Errors   []string `json:"errors,omitempty"`
}

// RunBatch plays n independent games on a pool of workers. Game i uses seed
// opts.Seed + i*SeedWorkerStep, so a batch is reproducible regardless of how
// the jobs are scheduled.
func RunBatch(opts Options, n, workers int) Summary {
	if workers <= 0 {
		workers = config.BatchWorkers
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	st := Summary{Runs: n, BaseSeed: opts.Seed}
	sumTicks := 0

	var mu sync.Mutex
	wg := sync.WaitGroup{}
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				runOpts := opts
				runOpts.Seed = opts.Seed + int64(i)*config.SeedWorkerStep
				runOpts.Dispatcher = nil
				res, err := playOnce(runOpts)

				mu.Lock()
				switch {
				case err != nil:
					st.Failed++
					st.Errors = append(st.Errors, err.Error())
				case res.Outcome == colony.AntsWin:
					st.AntsWins++
				case res.Outcome == colony.BeesWin:
					st.BeesWins++
				}
				if err == nil {
					sumTicks += res.Ticks
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if played := n - st.Failed; played > 0 {
		st.WinRate = float64(st.AntsWins) / float64(played)
		st.AvgTicks = float64(sumTicks) / float64(played)
	}
	return st
}

func playOnce(opts Options) (colony.Result, error) {
	c, err := NewColony(opts)
	if err != nil {
		return colony.Result{}, err
	}
	return c.Simulate()
}
