// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/ui"
)

// MenuState is the title screen.
type MenuState struct {
	sm    *StateMachine
	ctx   *Context
	start *ui.Button
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{
		sm:    sm,
		ctx:   ctx,
		start: ui.NewButton(config.ScreenWidth/2, config.ScreenHeight/2+40, 200, 44, "START"),
	}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update(deltaTime float64) {
	startPressed := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if m.start.Contains(x, y) {
			startPressed = true
		}
	}
	if startPressed {
		m.ctx.Game.StartGame()
		m.sm.SetState(NewPlayingState(m.sm, m.ctx))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	m.ctx.Renderer.Draw(screen, m.ctx.Game.Snapshot())
	m.ctx.HUD.DrawTitle(screen, "SKYFALL DEFENSE", config.ScreenHeight/2-60, config.TextLightColor)
	m.ctx.HUD.DrawLine(screen, "tap to intercept incoming missiles", config.ScreenHeight/2-20, config.TextDimColor)
	m.start.Draw(screen, m.ctx.HUD.Face())
}

func (m *MenuState) Exit() {}
