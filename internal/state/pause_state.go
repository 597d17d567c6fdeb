// internal/state/pause_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
)

var _ State = (*PauseState)(nil)

// PauseState freezes the simulation and draws the playing screen dimmed
// underneath. Cosmetics freeze too; nothing mutates while paused.
type PauseState struct {
	sm       *StateMachine
	ctx      *Context
	previous *PlayingState
}

func NewPauseState(sm *StateMachine, ctx *Context, previous *PlayingState) *PauseState {
	return &PauseState{sm: sm, ctx: ctx, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.ctx.Game.TogglePause()
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	s.ctx.HUD.DrawTitle(screen, "PAUSED", config.ScreenHeight/2, config.TextLightColor)
	s.ctx.HUD.DrawLine(screen, "press P or ESC to resume", config.ScreenHeight/2+30, config.TextDimColor)
}

func (s *PauseState) Exit() {}
