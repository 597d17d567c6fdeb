// internal/system/wave_test.go
package system

import (
	"testing"

	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/rng"
)

func newTestDirector(seed int64) (*Director, *entity.Registry, *event.Dispatcher) {
	reg := entity.NewRegistry()
	reg.ResetStructures(defs.TowerPositions(), defs.CityPositions(), config.TowerMaxAmmo)
	dispatcher := event.NewDispatcher()
	d := NewDirector(reg, rng.New(seed), dispatcher)
	d.StartWave(1)
	return d, reg, dispatcher
}

func TestDirectorSpawnsAfterInterval(t *testing.T) {
	d, reg, _ := newTestDirector(7)

	d.UpdateSpawning(defs.TuningFor(1).SpawnInterval/2, 0)
	if len(reg.Missiles) != 0 {
		t.Fatal("expected no spawn before the interval elapses")
	}
	d.UpdateSpawning(defs.TuningFor(1).SpawnInterval, 0)
	if len(reg.Missiles) != 1 {
		t.Fatalf("expected 1 missile after the interval, got %d", len(reg.Missiles))
	}
	if got := reg.Missiles[0].Speed; got != defs.TuningFor(1).MissileSpeed {
		t.Errorf("expected wave-1 missile speed %v, got %v", defs.TuningFor(1).MissileSpeed, got)
	}
}

func TestDirectorStopsSpawningWhileClearing(t *testing.T) {
	d, reg, _ := newTestDirector(7)

	d.UpdateSpawning(10, 1*config.ScorePerWave)

	if !d.Clearing() {
		t.Fatal("expected the director to enter clearing at the score threshold")
	}
	if len(reg.Missiles) != 0 {
		t.Errorf("expected no spawns while clearing, got %d", len(reg.Missiles))
	}
}

func TestDirectorSuspendsWithoutTargets(t *testing.T) {
	d, reg, _ := newTestDirector(7)
	for _, c := range reg.Cities {
		c.Alive = false
	}
	for _, tw := range reg.Towers {
		tw.Alive = false
	}

	d.UpdateSpawning(10, 0)

	if len(reg.Missiles) != 0 {
		t.Errorf("expected spawning suspended with no alive structures, got %d missiles", len(reg.Missiles))
	}
}

func TestDirectorSettlesBonusOnce(t *testing.T) {
	d, reg, dispatcher := newTestDirector(7)
	var got []event.BonusData
	dispatcher.Subscribe(event.WaveBonusAwarded, event.ListenerFunc(func(e event.Event) {
		got = append(got, e.Data.(event.BonusData))
	}))

	reg.Towers[0].Ammo = 10
	reg.Towers[1].Ammo = 0
	reg.Towers[2].Alive = false
	reg.Towers[2].Ammo = 0

	d.UpdateSpawning(0.01, 1*config.ScorePerWave)
	d.CheckCompletion()
	d.CheckCompletion()

	if len(got) != 1 {
		t.Fatalf("expected exactly one bonus settlement, got %d", len(got))
	}
	if want := 10 * config.AmmoBonusPerUnit; got[0].Bonus != want {
		t.Errorf("expected bonus %d, got %d", want, got[0].Bonus)
	}
}

func TestDirectorWaitsForBlastsBeforeSettling(t *testing.T) {
	d, reg, dispatcher := newTestDirector(7)
	fired := 0
	dispatcher.Subscribe(event.WaveBonusAwarded, event.ListenerFunc(func(e event.Event) { fired++ }))

	reg.SpawnBlast(defs.CityPositions()[0], config.BlastColor)
	d.UpdateSpawning(0.01, 1*config.ScorePerWave)
	d.CheckCompletion()
	if fired != 0 {
		t.Fatal("expected no settlement while a blast is still resolving")
	}

	reg.Blasts[0].Dead = true
	reg.CullDead()
	d.CheckCompletion()
	if fired != 1 {
		t.Fatalf("expected settlement once collections drained, got %d", fired)
	}
}
