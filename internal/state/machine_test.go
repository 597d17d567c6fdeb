// internal/state/machine_test.go
package state

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

type recordingState struct {
	name string
	log  *[]string
}

func (r *recordingState) Enter()                    { *r.log = append(*r.log, r.name+":enter") }
func (r *recordingState) Update(deltaTime float64)  { *r.log = append(*r.log, r.name+":update") }
func (r *recordingState) Draw(screen *ebiten.Image) {}
func (r *recordingState) Exit()                     { *r.log = append(*r.log, r.name+":exit") }

func TestStateMachineLifecycle(t *testing.T) {
	var log []string
	sm := NewStateMachine()

	sm.Update(0.016) // no active state yet

	sm.SetState(&recordingState{name: "menu", log: &log})
	sm.Update(0.016)
	sm.SetState(&recordingState{name: "playing", log: &log})

	want := []string{"menu:enter", "menu:update", "menu:exit", "playing:enter"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
}

func TestSetStateNilClearsCurrent(t *testing.T) {
	var log []string
	sm := NewStateMachine()
	sm.SetState(&recordingState{name: "menu", log: &log})

	sm.SetState(nil)
	sm.Update(0.016)

	if len(log) != 2 || log[1] != "menu:exit" {
		t.Fatalf("expected the old state exited and nothing updated, got %v", log)
	}
}
