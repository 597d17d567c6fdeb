// internal/state/state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/render"
	"go-missile-defense/internal/ui"
)

// State is one screen of the game: menu, play, pause or an end screen.
// The authoritative mode lives in app.Game; states route input to it and
// draw its snapshots.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Context bundles what every state needs.
type Context struct {
	Game     *app.Game
	Renderer *render.Renderer
	HUD      *ui.HUD
}

// StateMachine manages the active state.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine with no active state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state, if any, and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update advances the current state.
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw renders the current state.
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
