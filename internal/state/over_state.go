// internal/state/over_state.go
package state

import (
	"fmt"
	"image/color"

	"go-colony-defense/internal/colony"
	"go-colony-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*GameOverState)(nil)

// GameOverState shows the outcome until the operator restarts with R.
type GameOverState struct {
	stateMachine *StateMachine
	play         *PlayState
	err          error
}

func NewGameOverState(sm *StateMachine, play *PlayState, err error) *GameOverState {
	return &GameOverState{stateMachine: sm, play: play, err: err}
}

func (s *GameOverState) Enter() {}
func (s *GameOverState) Exit()  {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.play.Restart()
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	s.play.drawBoard(screen)

	var msg string
	var clr color.Color
	switch {
	case s.err != nil:
		msg, clr = fmt.Sprintf("Aborted: %v", s.err), config.BeesWinColor
	case s.play.Colony().Outcome() == colony.AntsWin:
		msg, clr = "All bees are vanquished. You win!", config.AntsWinColor
	default:
		msg, clr = "The ant queen has perished. Please try again.", config.BeesWinColor
	}
	s.play.indicator.Draw(screen, clr)
	vector.DrawFilledRect(screen, 0, float32(config.ScreenHeight-40), float32(config.ScreenWidth), 40, config.OverlayColor, false)
	ebitenutil.DebugPrintAt(screen, msg+"  R: restart", config.ScreenWidth/2-150, config.ScreenHeight-36)
}
