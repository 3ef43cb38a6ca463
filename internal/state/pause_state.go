// internal/state/pause_state.go
package state

import (
	"go-colony-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState freezes ticks. Placements can still be queued and N plays a
// single tick.
type PauseState struct {
	stateMachine *StateMachine
	play         *PlayState
}

func NewPauseState(sm *StateMachine, play *PlayState) *PauseState {
	return &PauseState{stateMachine: sm, play: play}
}

func (s *PauseState) Enter() {}
func (s *PauseState) Exit()  {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.play.indicator.HandleClick()
		s.stateMachine.SetState(s.play)
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.play.StepOnce()
		return
	}
	s.play.HandleInput()
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.play.drawBoard(screen)
	s.play.indicator.Draw(screen, config.PausedColor)
	vector.DrawFilledRect(screen, 0, float32(config.ScreenHeight-40), float32(config.ScreenWidth), 40, config.OverlayColor, false)
	ebitenutil.DebugPrintAt(screen, "PAUSED  space: resume  N: one turn", config.ScreenWidth/2-100, config.ScreenHeight-36)
}
