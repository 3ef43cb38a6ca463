// internal/app/setup.go
package app

import (
	"fmt"
	"strings"

	"go-colony-defense/internal/colony"
	"go-colony-defense/internal/config"
	"go-colony-defense/internal/defs"
	"go-colony-defense/internal/event"
	"go-colony-defense/internal/layout"
	"go-colony-defense/internal/strategy"
)

// Options selects the game to set up. The zero value is a dry "test" game
// with no deployments.
type Options struct {
	Difficulty      string
	Water           bool
	Food            int // negative means the difficulty's starting food
	Seed            int64
	DefinitionsPath string
	StrategyPath    string
	Strategy        colony.Strategy // takes precedence over StrategyPath
	Dispatcher      *event.Dispatcher
}

// DefaultOptions mirrors the command line defaults.
func DefaultOptions() Options {
	return Options{
		Difficulty: "test",
		Food:       -1,
		Seed:       config.DefaultSeed,
	}
}

// NewColony resolves opts against the definitions library and builds a
// colony ready to play.
func NewColony(opts Options) (*colony.Colony, error) {
	lib, err := library(opts.DefinitionsPath)
	if err != nil {
		return nil, err
	}
	name := opts.Difficulty
	if name == "" {
		name = "test"
	}
	diff, ok := lib.Difficulty(name)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q (have %s)", name, strings.Join(lib.DifficultyNames(), ", "))
	}
	planDef, ok := lib.Plan(diff.Plan)
	if !ok {
		return nil, fmt.Errorf("difficulty %q: unknown plan %q", name, diff.Plan)
	}
	plan, err := colony.BuildAssaultPlan(planDef)
	if err != nil {
		return nil, fmt.Errorf("plan %q: %w", diff.Plan, err)
	}

	strat := opts.Strategy
	if strat == nil {
		strat, err = loadStrategy(opts.StrategyPath)
		if err != nil {
			return nil, err
		}
	}

	food := opts.Food
	if food < 0 {
		food = diff.Food
	}

	boardLayout := layout.Dry(diff.Tunnels, config.TunnelLength)
	if opts.Water {
		boardLayout = layout.Wet(diff.Tunnels, config.TunnelLength, config.MoatFrequency)
	}

	return colony.NewColony(colony.Config{
		Strategy:   strat,
		Hive:       colony.NewHive(plan),
		Layout:     boardLayout,
		Food:       food,
		Seed:       opts.Seed,
		Dispatcher: opts.Dispatcher,
	})
}

func library(path string) (*defs.Library, error) {
	if path == "" {
		return defs.Default()
	}
	return defs.LoadDefinitions(path)
}

func loadStrategy(path string) (colony.Strategy, error) {
	if path == "" {
		return strategy.None, nil
	}
	def, err := defs.LoadStrategy(path)
	if err != nil {
		return nil, err
	}
	return strategy.Scripted(def), nil
}
