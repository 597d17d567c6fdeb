// internal/state/wave_complete_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
)

// WaveCompleteState shows the settled ammo bonus and waits for the
// player to launch the next wave.
type WaveCompleteState struct {
	sm   *StateMachine
	ctx  *Context
	next *ui.Button
}

func NewWaveCompleteState(sm *StateMachine, ctx *Context) *WaveCompleteState {
	return &WaveCompleteState{
		sm:   sm,
		ctx:  ctx,
		next: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+50, 200, 44, "NEXT WAVE"),
	}
}

func (s *WaveCompleteState) Enter() {}

func (s *WaveCompleteState) Update(deltaTime float64) {
	pressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if s.next.Contains(x, y) {
			pressed = true
		}
	}
	if pressed {
		s.ctx.Game.NextWave()
		s.sm.SetState(NewPlayingState(s.sm, s.ctx))
	}
}

func (s *WaveCompleteState) Draw(screen *ebiten.Image) {
	game := s.ctx.Game
	s.ctx.Renderer.Draw(screen, game.Snapshot())
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	s.ctx.HUD.DrawTitle(screen, fmt.Sprintf("WAVE %d CLEARED", game.Wave()), config.ScreenHeight/2-60, config.TextLightColor)
	s.ctx.HUD.DrawLine(screen, fmt.Sprintf("ammo bonus +%d", game.LastBonus()), config.ScreenHeight/2-24, config.PopupColor)
	s.ctx.HUD.DrawLine(screen, fmt.Sprintf("score %d", game.Score()), config.ScreenHeight/2, config.TextDimColor)
	s.next.Draw(screen, s.ctx.HUD.Face())
}

func (s *WaveCompleteState) Exit() {}
