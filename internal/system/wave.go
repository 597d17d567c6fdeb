// internal/system/wave.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/geom"
	"go-missile-defense/internal/rng"
)

// Director governs missile spawn cadence, target selection and
// wave-completion detection. One wave at a time: StartWave rearms it.
type Director struct {
	reg        *entity.Registry
	rnd        *rng.Service
	dispatcher *event.Dispatcher

	wave         int
	interval     float64
	missileSpeed float64
	spawnTimer   float64
	clearing     bool
	settled      bool
}

// NewDirector creates a director over the given registry.
func NewDirector(reg *entity.Registry, rnd *rng.Service, dispatcher *event.Dispatcher) *Director {
	return &Director{reg: reg, rnd: rnd, dispatcher: dispatcher}
}

// StartWave rearms the director for the given wave number, pulling the
// spawn interval and missile speed from the tuning table.
func (d *Director) StartWave(wave int) {
	t := defs.TuningFor(wave)
	d.wave = wave
	d.interval = t.SpawnInterval
	d.missileSpeed = t.MissileSpeed
	d.spawnTimer = 0
	d.clearing = false
	d.settled = false
}

// Clearing reports whether the score threshold has been reached and
// spawning has stopped for this wave.
func (d *Director) Clearing() bool {
	return d.clearing
}

// UpdateSpawning advances the spawn clock and creates at most one missile
// per tick. Once the cumulative score reaches wave x ScorePerWave the wave
// starts clearing and no further missiles spawn; in-flight entities keep
// resolving.
func (d *Director) UpdateSpawning(dt float64, score int) {
	if !d.clearing && score >= d.wave*config.ScorePerWave {
		d.clearing = true
		d.dispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: d.wave})
	}
	if d.clearing {
		return
	}

	d.spawnTimer += dt
	if d.spawnTimer < d.interval {
		return
	}
	target, targetPos, ok := d.pickTarget()
	if !ok {
		// No structure left to aim at; spawning is suspended.
		return
	}
	d.spawnTimer = 0

	from := geom.Vec{
		X: d.rnd.FloatRange(config.MissileSpawnMargin, config.ScreenWidth-config.MissileSpawnMargin),
		Y: -10,
	}
	d.reg.SpawnMissile(from, targetPos, target, d.missileSpeed)
}

// pickTarget selects uniformly at random among all alive structures,
// cities and towers pooled together.
func (d *Director) pickTarget() (component.TargetRef, geom.Vec, bool) {
	type candidate struct {
		ref component.TargetRef
		pos geom.Vec
	}
	var pool []candidate
	for i, c := range d.reg.Cities {
		if c.Alive {
			pool = append(pool, candidate{component.TargetRef{Kind: component.TargetCity, Index: i}, c.Pos})
		}
	}
	for i, t := range d.reg.Towers {
		if t.Alive {
			pool = append(pool, candidate{component.TargetRef{Kind: component.TargetTower, Index: i}, t.Pos})
		}
	}
	idx := d.rnd.PickIndex(len(pool))
	if idx < 0 {
		return component.TargetRef{}, geom.Vec{}, false
	}
	return pool[idx].ref, pool[idx].pos, true
}

// CheckCompletion detects the end of a clearing wave. The wave is complete
// only when both the missile and blast collections are empty, so a chain
// reaction still in flight cannot trigger the bonus early. Runs after the
// per-step cull; the ammo bonus is settled at most once per wave.
func (d *Director) CheckCompletion() {
	if !d.clearing || d.settled {
		return
	}
	if len(d.reg.Missiles) != 0 || len(d.reg.Blasts) != 0 {
		return
	}
	d.settled = true

	bonus := 0
	for _, t := range d.reg.Towers {
		if t.Alive {
			bonus += t.Ammo * config.AmmoBonusPerUnit
		}
	}
	d.dispatcher.Dispatch(event.Event{
		Type: event.WaveBonusAwarded,
		Data: event.BonusData{Wave: d.wave, Bonus: bonus},
	})
}
