// internal/state/play_state.go
package state

import (
	"fmt"
	"image"
	"log"

	"go-colony-defense/internal/colony"
	"go-colony-defense/internal/config"
	"go-colony-defense/internal/strategy"
	"go-colony-defense/internal/ui"
	"go-colony-defense/pkg/grid"
	"go-colony-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/font"
)

var _ State = (*PlayState)(nil)

// PlayState runs the game: it paces ticks and turns clicks into commands.
type PlayState struct {
	sm          *StateMachine
	factory     SessionFactory
	session     *Session
	fontFace    font.Face
	renderer    *render.BoardRenderer
	roster      *ui.RosterBar
	indicator   *ui.StateIndicator
	turn        *ui.TurnIndicator
	selected    *colony.Place
	status      string
	accumulator float64
}

func NewPlayState(sm *StateMachine, factory SessionFactory, face font.Face) (*PlayState, error) {
	session, err := factory()
	if err != nil {
		return nil, err
	}
	g := &PlayState{
		sm:       sm,
		factory:  factory,
		session:  session,
		fontFace: face,
	}
	session.Queue.OnError = func(cmd strategy.Command, err error) {
		log.Printf("Command %+v rejected: %v", cmd, err)
		g.status = err.Error()
	}

	geo := grid.Geometry{
		OffsetX: config.BoardOffsetX,
		OffsetY: config.BoardOffsetY,
		CellW:   config.PlaceWidth,
		CellH:   config.PlaceHeight,
		Gap:     config.PlaceGap,
	}
	colors := &render.BoardColors{
		BackgroundColor: config.BackgroundColor,
		TunnelColor:     config.TunnelColor,
		WaterColor:      config.WaterColor,
		GoalColor:       config.GoalColor,
		HiveColor:       config.HiveColor,
		SelectedColor:   config.SelectedColor,
		AntColor:        config.AntColor,
		BeeColor:        config.BeeColor,
		TextDarkColor:   config.TextDarkColor,
		TextLightColor:  config.TextLightColor,
		StrokeWidth:     float32(config.StrokeWidth),
	}
	g.renderer = render.NewBoardRenderer(session.Colony, geo, config.ScreenWidth, config.ScreenHeight, face, colors)
	g.roster = ui.NewRosterBar(session.Colony.Roster(), config.RosterButtonGap*3, config.RosterTop,
		config.RosterButtonW, config.RosterButtonH, config.RosterButtonGap, face,
		config.ButtonColor, config.ButtonHotColor, config.TextLightColor)
	g.indicator = ui.NewStateIndicator(
		float32(config.ScreenWidth-config.IndicatorOffsetX),
		float32(config.IndicatorOffsetX+config.RosterTop+config.RosterButtonH),
		float32(config.IndicatorRadius),
	)
	g.turn = ui.NewTurnIndicator(config.RosterButtonGap*3, config.RosterTop+config.RosterButtonH+30, face, config.TextLightColor)
	return g, nil
}

func (g *PlayState) Enter() {}
func (g *PlayState) Exit()  {}

// Colony returns the colony being played.
func (g *PlayState) Colony() *colony.Colony { return g.session.Colony }

func (g *PlayState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.indicator.HandleClick()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	g.HandleInput()

	g.accumulator += deltaTime
	interval := 1 / config.TicksPerSecond
	if g.accumulator >= interval {
		g.accumulator -= interval
		g.StepOnce()
	}
}

// HandleInput selects ants and queues placements. Left click on a place
// deploys the selected ant there, right click removes the ant there.
func (g *PlayState) HandleInput() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	x, y := ebiten.CursorPosition()
	if left && g.roster.HandleClick(x, y) {
		return
	}
	if left && g.indicator.IsClicked(x, y) {
		g.indicator.HandleClick()
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	place, ok := grid.PlaceAt(g.renderer.Rects(), image.Pt(x, y))
	if !ok || place.IsGoal() || place.IsHive() {
		return
	}
	g.selected = place
	switch {
	case right:
		g.session.Queue.Push(strategy.Command{Place: place.Name(), Remove: true})
		g.status = fmt.Sprintf("remove at %s queued", place.Name())
	case g.roster.Selected != "":
		g.session.Queue.Push(strategy.Command{Place: place.Name(), Deploy: g.roster.Selected})
		g.status = fmt.Sprintf("%s at %s queued", g.roster.Selected, place.Name())
	}
}

// StepOnce plays one tick and moves to the game over screen when it ends.
func (g *PlayState) StepOnce() {
	outcome, err := g.session.Colony.Step()
	if err != nil {
		log.Printf("simulation aborted: %v", err)
		g.sm.SetState(NewGameOverState(g.sm, g, err))
		return
	}
	if outcome != colony.Running {
		g.sm.SetState(NewGameOverState(g.sm, g, nil))
	}
}

// Restart replaces the game with a fresh session.
func (g *PlayState) Restart() {
	next, err := NewPlayState(g.sm, g.factory, g.fontFace)
	if err != nil {
		log.Printf("restart failed: %v", err)
		return
	}
	g.sm.SetState(next)
}

func (g *PlayState) Draw(screen *ebiten.Image) {
	g.drawBoard(screen)
	g.indicator.Draw(screen, config.RunningColor)
}

func (g *PlayState) drawBoard(screen *ebiten.Image) {
	c := g.session.Colony
	g.renderer.Draw(screen, g.selected)
	g.roster.Draw(screen, c.Food())
	g.turn.Draw(screen, c.Time(), c.Food())
	msg := g.status
	if n := g.session.Queue.Pending(); n > 0 {
		msg = fmt.Sprintf("%s (%d pending)", msg, n)
	}
	ebitenutil.DebugPrintAt(screen, msg, config.ScreenWidth/3, config.RosterTop+config.RosterButtonH+18)
}
