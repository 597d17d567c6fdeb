// internal/state/victory_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
)

// VictoryState is the win screen. The player can stop here or continue
// into the endless mode, which suppresses further victory checks.
type VictoryState struct {
	sm   *StateMachine
	ctx  *Context
	cont *ui.Button
	menu *ui.Button
}

func NewVictoryState(sm *StateMachine, ctx *Context) *VictoryState {
	return &VictoryState{
		sm:   sm,
		ctx:  ctx,
		cont: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+40, 240, 44, "CONTINUE (ENDLESS)"),
		menu: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+96, 240, 44, "MENU"),
	}
}

func (s *VictoryState) Enter() {}

func (s *VictoryState) Update(deltaTime float64) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		switch {
		case s.cont.Contains(x, y):
			s.ctx.Game.ContinueEndless()
			s.sm.SetState(NewPlayingState(s.sm, s.ctx))
		case s.menu.Contains(x, y):
			s.ctx.Game.ReturnToMenu()
			s.sm.SetState(NewMenuState(s.sm, s.ctx))
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.ctx.Game.ContinueEndless()
		s.sm.SetState(NewPlayingState(s.sm, s.ctx))
	}
}

func (s *VictoryState) Draw(screen *ebiten.Image) {
	game := s.ctx.Game
	s.ctx.Renderer.Draw(screen, game.Snapshot())
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	s.ctx.HUD.DrawTitle(screen, "VICTORY", config.ScreenHeight/2-60, config.PopupColor)
	s.ctx.HUD.DrawLine(screen, fmt.Sprintf("score %d over %d waves", game.Score(), game.Wave()), config.ScreenHeight/2-20, config.TextDimColor)
	s.cont.Draw(screen, s.ctx.HUD.Face())
	s.menu.Draw(screen, s.ctx.HUD.Face())
}

func (s *VictoryState) Exit() {}
