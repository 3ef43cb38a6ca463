// cmd/colony/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go-colony-defense/internal/app"
	"go-colony-defense/internal/colony"
	"go-colony-defense/internal/config"
	"go-colony-defense/internal/event"
)

func main() {
	opts := app.DefaultOptions()
	var out string
	var n, workers int
	var verbose bool
	flag.StringVar(&opts.Difficulty, "d", opts.Difficulty, "difficulty: test, easy, normal, hard or insane")
	flag.BoolVar(&opts.Water, "w", false, "lay water in the tunnels")
	flag.IntVar(&opts.Food, "food", -1, "starting food (negative for the difficulty default)")
	flag.Int64Var(&opts.Seed, "seed", config.DefaultSeed, "random seed (0 for time based)")
	flag.StringVar(&opts.StrategyPath, "strategy", "", "scripted strategy file")
	flag.StringVar(&opts.DefinitionsPath, "defs", "", "difficulty and assault plan definitions (built-in if empty)")
	flag.StringVar(&out, "out", "", "result file (stdout if empty)")
	flag.IntVar(&n, "n", 1, "number of games")
	flag.IntVar(&workers, "workers", config.BatchWorkers, "batch workers")
	flag.BoolVar(&verbose, "v", false, "log every game event")
	flag.Parse()

	if n > 1 {
		summary := app.RunBatch(opts, n, workers)
		write(out, colony.MarshalPretty(summary))
		log.Printf("Batch %d done: ants won %d, bees won %d, failed %d", n, summary.AntsWins, summary.BeesWins, summary.Failed)
		return
	}

	opts.Dispatcher = event.NewDispatcher()
	if verbose {
		app.NewEventLogger(opts.Dispatcher, nil)
	}
	c, err := app.NewColony(opts)
	if err != nil {
		log.Fatal(err)
	}
	res, err := c.Simulate()
	if err != nil {
		log.Fatalf("simulation aborted: %v", err)
	}
	log.Println(c)
	switch res.Outcome {
	case colony.AntsWin:
		log.Println("All bees are vanquished. You win!")
	case colony.BeesWin:
		log.Println("The ant queen has perished. Please try again.")
	}
	write(out, colony.MarshalPretty(res))
}

func write(path string, data []byte) {
	if path == "" {
		fmt.Println(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Fatal(err)
	}
	log.Printf("Result written to %s", filepath.Base(path))
}
