// cmd/viewer/main.go
package main

import (
	"flag"
	"log"
	"time"

	"go-colony-defense/internal/app"
	"go-colony-defense/internal/config"
	"go-colony-defense/internal/state"
	"go-colony-defense/internal/strategy"
	"go-colony-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	opts := app.DefaultOptions()
	flag.StringVar(&opts.Difficulty, "d", opts.Difficulty, "difficulty: test, easy, normal, hard or insane")
	flag.BoolVar(&opts.Water, "w", false, "lay water in the tunnels")
	flag.IntVar(&opts.Food, "food", -1, "starting food (negative for the difficulty default)")
	flag.Int64Var(&opts.Seed, "seed", 0, "random seed (0 for time based)")
	flag.Parse()

	newSession := func() (*state.Session, error) {
		queue := strategy.NewQueue()
		runOpts := opts
		runOpts.Strategy = queue.Strategy
		c, err := app.NewColony(runOpts)
		if err != nil {
			return nil, err
		}
		return &state.Session{Colony: c, Queue: queue}, nil
	}

	face, err := render.NewFontFace(config.FontSize)
	if err != nil {
		log.Fatal(err)
	}
	sm := state.NewStateMachine()
	play, err := state.NewPlayState(sm, newSession, face)
	if err != nil {
		log.Fatal(err)
	}
	sm.SetState(play)

	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Ants vs. SomeBees")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
