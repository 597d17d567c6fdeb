// internal/component/trail_test.go
package component

import (
	"testing"

	"go-missile-defense/internal/geom"
)

func TestTrailKeepsNewestLast(t *testing.T) {
	tr := NewTrail(3)
	tr.Push(geom.Vec{X: 1})
	tr.Push(geom.Vec{X: 2})

	got := tr.Positions()
	if len(got) != 2 {
		t.Fatalf("expected 2 positions, got %d", len(got))
	}
	if got[0].X != 1 || got[1].X != 2 {
		t.Errorf("expected oldest-to-newest order, got %v", got)
	}
}

func TestTrailDropsOldestWhenFull(t *testing.T) {
	tr := NewTrail(3)
	for i := 1; i <= 5; i++ {
		tr.Push(geom.Vec{X: float64(i)})
	}

	got := tr.Positions()
	if len(got) != 3 {
		t.Fatalf("expected capacity 3, got %d", len(got))
	}
	for i, want := range []float64{3, 4, 5} {
		if got[i].X != want {
			t.Errorf("position %d: expected X=%v, got %v", i, want, got[i].X)
		}
	}
}

func TestTrailMinimumCapacity(t *testing.T) {
	tr := NewTrail(0)
	tr.Push(geom.Vec{X: 7})
	if tr.Len() != 1 {
		t.Errorf("expected a usable trail even with capacity 0, got len %d", tr.Len())
	}
}
