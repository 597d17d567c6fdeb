// internal/state/game_over_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
)

// GameOverState is the terminal defeat screen: every city is gone.
type GameOverState struct {
	sm   *StateMachine
	ctx  *Context
	menu *ui.Button
}

func NewGameOverState(sm *StateMachine, ctx *Context) *GameOverState {
	return &GameOverState{
		sm:   sm,
		ctx:  ctx,
		menu: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+50, 200, 44, "MENU"),
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	pressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.menu.Contains(x, y) {
			pressed = true
		}
	}
	if pressed {
		s.ctx.Game.ReturnToMenu()
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	game := s.ctx.Game
	s.ctx.Renderer.Draw(screen, game.Snapshot())
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	s.ctx.HUD.DrawTitle(screen, "ALL CITIES LOST", config.ScreenHeight/2-60, config.MissileColor)
	s.ctx.HUD.DrawLine(screen, fmt.Sprintf("final score %d  -  wave %d", game.Score(), game.Wave()), config.ScreenHeight/2-20, config.TextDimColor)
	s.menu.Draw(screen, s.ctx.HUD.Face())
}

func (s *GameOverState) Exit() {}
