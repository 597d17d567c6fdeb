// internal/state/playing_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-missile-defense/internal/component"
)

// PlayingState runs the simulation and feeds it input. Mode changes made
// by the simulation itself (defeat, wave settlement) are picked up after
// each step and mapped to the matching screen.
type PlayingState struct {
	sm       *StateMachine
	ctx      *Context
	touchIDs []ebiten.TouchID
}

func NewPlayingState(sm *StateMachine, ctx *Context) *PlayingState {
	return &PlayingState{sm: sm, ctx: ctx}
}

func (p *PlayingState) Enter() {}

func (p *PlayingState) Update(deltaTime float64) {
	game := p.ctx.Game

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		game.TogglePause()
		p.sm.SetState(NewPauseState(p.sm, p.ctx, p))
		return
	}

	// Each tap resolves independently; ammo is re-checked per tap.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		game.HandleTap(float64(x), float64(y))
	}
	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	for _, id := range p.touchIDs {
		x, y := ebiten.TouchPosition(id)
		game.HandleTap(float64(x), float64(y))
	}

	game.Step(deltaTime)

	switch game.Mode() {
	case component.ModeWaveComplete:
		p.sm.SetState(NewWaveCompleteState(p.sm, p.ctx))
	case component.ModeVictory:
		p.sm.SetState(NewVictoryState(p.sm, p.ctx))
	case component.ModeGameOver:
		p.sm.SetState(NewGameOverState(p.sm, p.ctx))
	}
}

func (p *PlayingState) Draw(screen *ebiten.Image) {
	snap := p.ctx.Game.Snapshot()
	p.ctx.Renderer.Draw(screen, snap)
	p.ctx.HUD.DrawPlaying(screen, snap)
}

func (p *PlayingState) Exit() {}
