// internal/app/game.go
package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/defs"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/geom"
	"go-missile-defense/internal/rng"
	"go-missile-defense/internal/system"
)

// pendingTransition is a scheduled one-shot mode change, used for the
// grace period between wave-clear settlement and the wave-end screen.
// The epoch stamp lets a full reset invalidate a stale slot: a pending
// transition from before the reset recognizes the epoch mismatch and
// never fires into the fresh run.
type pendingTransition struct {
	active bool
	fireAt float64 // in game time
	kind   component.Mode
	epoch  uint64
}

// Game is the simulation aggregate. It owns the registry, the structure
// collections, score and wave counters, and the coarse mode machine.
// Everything mutates on the single simulation tick; the presentation
// layer only ever sees Snapshot copies.
type Game struct {
	reg        *entity.Registry
	rnd        *rng.Service
	dispatcher *event.Dispatcher

	director     *system.Director
	interceptors *system.InterceptorSystem
	blasts       *system.BlastSystem
	missiles     *system.MissileSystem
	cosmetics    *system.CosmeticSystem

	mode      component.Mode
	score     int
	wave      int
	endless   bool
	lastBonus int

	gameTime float64
	epoch    uint64
	pending  pendingTransition
	shake    float64
}

// NewGame builds a fully wired game in Menu mode. Seed 0 means a
// time-based seed; any other value makes the run reproducible.
func NewGame(seed int64) *Game {
	reg := entity.NewRegistry()
	dispatcher := event.NewDispatcher()
	rnd := rng.New(seed)

	g := &Game{
		reg:          reg,
		rnd:          rnd,
		dispatcher:   dispatcher,
		director:     system.NewDirector(reg, rnd, dispatcher),
		interceptors: system.NewInterceptorSystem(reg),
		blasts:       system.NewBlastSystem(reg),
		missiles:     system.NewMissileSystem(reg, rnd, dispatcher),
		cosmetics:    system.NewCosmeticSystem(reg),
		mode:         component.ModeMenu,
		wave:         1,
	}

	dispatcher.Subscribe(event.MissileDestroyed, g)
	dispatcher.Subscribe(event.StructureDestroyed, g)
	dispatcher.Subscribe(event.GroundImpact, g)
	dispatcher.Subscribe(event.WaveBonusAwarded, g)

	g.reset()
	return g
}

// Events exposes the dispatcher so collaborators outside the simulation
// (audio, telemetry) can subscribe. The core never depends on them.
func (g *Game) Events() *event.Dispatcher {
	return g.dispatcher
}

// Mode returns the current coarse game mode.
func (g *Game) Mode() component.Mode { return g.mode }

// Score returns the cumulative score.
func (g *Game) Score() int { return g.score }

// Wave returns the current wave number.
func (g *Game) Wave() int { return g.wave }

// Endless reports whether the post-victory continuation is engaged.
func (g *Game) Endless() bool { return g.endless }

// LastBonus returns the most recent end-of-wave ammo bonus.
func (g *Game) LastBonus() int { return g.lastBonus }

// GameTime returns the accumulated simulation clock.
func (g *Game) GameTime() float64 { return g.gameTime }

// reset restores the menu baseline: score, wave, structures, entity
// collections, and any scheduled transition. Bumping the epoch makes a
// stale deferred transition a provable no-op.
func (g *Game) reset() {
	g.epoch++
	g.pending = pendingTransition{}
	g.score = 0
	g.wave = 1
	g.endless = false
	g.lastBonus = 0
	g.gameTime = 0
	g.shake = 0
	g.reg.ResetStructures(defs.TowerPositions(), defs.CityPositions(), config.TowerMaxAmmo)
	g.director.StartWave(1)
	g.dispatcher.Dispatch(event.Event{Type: event.GameReset})
}

// StartGame begins a run from the menu. No-op in any other mode.
func (g *Game) StartGame() {
	if g.mode != component.ModeMenu {
		return
	}
	g.reset()
	g.mode = component.ModePlaying
}

// TogglePause switches between Playing and Paused. No-op elsewhere.
func (g *Game) TogglePause() {
	switch g.mode {
	case component.ModePlaying:
		g.mode = component.ModePaused
	case component.ModePaused:
		g.mode = component.ModePlaying
	}
}

// NextWave leaves the wave-complete screen and starts the next wave.
// No-op unless the game is in WaveComplete.
func (g *Game) NextWave() {
	if g.mode != component.ModeWaveComplete {
		return
	}
	g.startNextWave()
	g.mode = component.ModePlaying
}

// ContinueEndless re-enters play from the victory screen with the endless
// continuation engaged; later victory checks are suppressed.
func (g *Game) ContinueEndless() {
	if g.mode != component.ModeVictory {
		return
	}
	g.endless = true
	g.startNextWave()
	g.mode = component.ModePlaying
}

// ReturnToMenu restarts from a terminal screen back to the menu baseline.
func (g *Game) ReturnToMenu() {
	if g.mode != component.ModeGameOver && g.mode != component.ModeVictory {
		return
	}
	g.reset()
	g.mode = component.ModeMenu
}

// startNextWave performs the new-wave reset: towers revived and refilled,
// wave counter incremented. Cities are not repaired; losing one is
// permanent for the run.
func (g *Game) startNextWave() {
	g.wave++
	g.reg.ResetTowersForWave()
	g.director.StartWave(g.wave)
}

// Step advances the simulation by one clamped time-slice. It only runs in
// Playing mode; pausing freezes spawning and collision resolution.
func (g *Game) Step(rawDelta float64) {
	if g.mode != component.ModePlaying {
		return
	}
	dt := geom.Clamp(rawDelta, 0, config.MaxDeltaTime)
	g.gameTime += dt

	g.director.UpdateSpawning(dt, g.score)
	g.interceptors.Update(dt)
	g.blasts.Update(dt)
	g.missiles.Update(dt)
	g.cosmetics.Update(dt)
	g.reg.CullDead()
	g.director.CheckCompletion()

	if g.pending.active && g.pending.epoch == g.epoch && g.gameTime >= g.pending.fireAt {
		g.pending.active = false
		if g.mode == component.ModePlaying {
			g.mode = g.pending.kind
		}
	}

	g.shake -= config.ShakeDecay * dt
	if g.shake < 0 {
		g.shake = 0
	}
}

// OnEvent routes simulation events back into the aggregate: scoring,
// screen-shake bookkeeping, defeat detection, and wave-end scheduling.
func (g *Game) OnEvent(e event.Event) {
	switch e.Type {
	case event.MissileDestroyed:
		if d, ok := e.Data.(event.KillData); ok {
			g.score += d.Award
		}

	case event.GroundImpact:
		if d, ok := e.Data.(event.ImpactData); ok {
			amp := config.ShakeMinor
			if d.Major {
				amp = config.ShakeMajor
			}
			if amp > g.shake {
				g.shake = amp
			}
		}

	case event.StructureDestroyed:
		if d, ok := e.Data.(event.StructureData); ok && d.Kind == component.TargetCity {
			if g.reg.AliveCities() == 0 {
				// Terminal defeat: cancel any scheduled wave-end
				// transition and go down immediately.
				g.pending = pendingTransition{}
				g.mode = component.ModeGameOver
			}
		}

	case event.WaveBonusAwarded:
		if d, ok := e.Data.(event.BonusData); ok {
			g.score += d.Bonus
			g.lastBonus = d.Bonus
			g.reg.SpawnScorePopup(geom.Vec{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}, d.Bonus)

			kind := component.ModeWaveComplete
			if g.score >= config.VictoryScore && !g.endless {
				kind = component.ModeVictory
			}
			g.pending = pendingTransition{
				active: true,
				fireAt: g.gameTime + config.WaveEndDelay,
				kind:   kind,
				epoch:  g.epoch,
			}
		}
	}
}
