// internal/app/game_test.go
package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/geom"
)

const tick = 1.0 / 60.0

func newPlayingGame(seed int64) *Game {
	g := NewGame(seed)
	g.StartGame()
	return g
}

// stepFor advances the game by roughly the given number of seconds.
func stepFor(g *Game, seconds float64) {
	steps := int(seconds/tick) + 1
	for i := 0; i < steps; i++ {
		g.Step(tick)
	}
}

func TestModeTransitions(t *testing.T) {
	examples := []struct {
		Name   string
		Setup  func(g *Game)
		Action func(g *Game)
		Want   component.Mode
	}{
		{
			Name:   "start begins a run from the menu",
			Action: func(g *Game) { g.StartGame() },
			Want:   component.ModePlaying,
		},
		{
			Name:   "start is ignored while playing",
			Setup:  func(g *Game) { g.StartGame() },
			Action: func(g *Game) { g.StartGame() },
			Want:   component.ModePlaying,
		},
		{
			Name:   "pause toggles from playing",
			Setup:  func(g *Game) { g.StartGame() },
			Action: func(g *Game) { g.TogglePause() },
			Want:   component.ModePaused,
		},
		{
			Name:   "pause toggles back to playing",
			Setup:  func(g *Game) { g.StartGame(); g.TogglePause() },
			Action: func(g *Game) { g.TogglePause() },
			Want:   component.ModePlaying,
		},
		{
			Name:   "pause is ignored in the menu",
			Action: func(g *Game) { g.TogglePause() },
			Want:   component.ModeMenu,
		},
		{
			Name:   "next wave resumes from wave complete",
			Setup:  func(g *Game) { g.StartGame(); g.mode = component.ModeWaveComplete },
			Action: func(g *Game) { g.NextWave() },
			Want:   component.ModePlaying,
		},
		{
			Name:   "next wave is ignored while playing",
			Setup:  func(g *Game) { g.StartGame() },
			Action: func(g *Game) { g.NextWave() },
			Want:   component.ModePlaying,
		},
		{
			Name:   "endless continue resumes from victory",
			Setup:  func(g *Game) { g.StartGame(); g.mode = component.ModeVictory },
			Action: func(g *Game) { g.ContinueEndless() },
			Want:   component.ModePlaying,
		},
		{
			Name:   "endless continue is ignored while playing",
			Setup:  func(g *Game) { g.StartGame() },
			Action: func(g *Game) { g.ContinueEndless() },
			Want:   component.ModePlaying,
		},
		{
			Name:   "menu return works from game over",
			Setup:  func(g *Game) { g.StartGame(); g.mode = component.ModeGameOver },
			Action: func(g *Game) { g.ReturnToMenu() },
			Want:   component.ModeMenu,
		},
		{
			Name:   "menu return is ignored while playing",
			Setup:  func(g *Game) { g.StartGame() },
			Action: func(g *Game) { g.ReturnToMenu() },
			Want:   component.ModePlaying,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			g := NewGame(1)
			if example.Setup != nil {
				example.Setup(g)
			}
			example.Action(g)
			assert.Equal(t, example.Want, g.Mode())
		})
	}
}

func TestEndlessFlagSetOnContinue(t *testing.T) {
	g := newPlayingGame(1)
	g.mode = component.ModeVictory

	g.ContinueEndless()

	assert.True(t, g.Endless())
	assert.Equal(t, 2, g.Wave())
}

func TestSimpleIntercept(t *testing.T) {
	g := newPlayingGame(1)
	g.score = 1 * config.ScorePerWave // threshold reached: no missile spawns interfere

	tower := g.reg.Towers[0]
	aim := geom.Vec{X: tower.Pos.X, Y: 100}
	g.HandleTap(aim.X, aim.Y)

	assert.Equal(t, config.TowerMaxAmmo-1, tower.Ammo)
	assert.Len(t, g.reg.Interceptors, 1)

	for i := 0; i < 200 && len(g.reg.Blasts) == 0; i++ {
		g.Step(tick)
	}

	if assert.NotEmpty(t, g.reg.Blasts, "interceptor should detonate at its aim point") {
		assert.Equal(t, aim, g.reg.Blasts[0].Pos)
	}
	assert.Empty(t, g.reg.Interceptors, "arrived interceptor should be culled")
}

func TestChainKillAwardsEachMissile(t *testing.T) {
	g := newPlayingGame(1)
	g.score = 1 * config.ScorePerWave

	city := g.reg.Cities[0]
	g.reg.SpawnMissile(geom.Vec{X: 400, Y: 200}, city.Pos, component.TargetRef{Kind: component.TargetCity, Index: 0}, 60)
	g.reg.SpawnMissile(geom.Vec{X: 425, Y: 200}, city.Pos, component.TargetRef{Kind: component.TargetCity, Index: 0}, 60)
	g.reg.SpawnBlast(geom.Vec{X: 400, Y: 200}, config.BlastColor)

	for i := 0; i < 300 && len(g.reg.Missiles) > 0; i++ {
		g.Step(tick)
	}

	assert.Empty(t, g.reg.Missiles, "the secondary blast should catch the second missile")
	assert.Equal(t, 1*config.ScorePerWave+2*config.KillScore, g.Score())
	assert.True(t, city.Alive, "no missile should have reached the ground")
}

func TestWaveBonusSettledOnce(t *testing.T) {
	g := newPlayingGame(3)
	g.wave = 3
	g.director.StartWave(3)
	g.reg.Towers[0].Ammo = 10
	g.reg.Towers[1].Ammo = 0
	g.reg.Towers[2].Alive = false
	g.reg.Towers[2].Ammo = 0
	g.score = 3 * config.ScorePerWave

	g.Step(tick)

	wantScore := 3*config.ScorePerWave + 10*config.AmmoBonusPerUnit
	assert.Equal(t, wantScore, g.Score(), "bonus is 10x5 + 0x5, added exactly once")
	assert.Equal(t, 50, g.LastBonus())

	stepFor(g, config.WaveEndDelay+0.1)
	assert.Equal(t, component.ModeWaveComplete, g.Mode())
	assert.Equal(t, wantScore, g.Score(), "no second settlement after the transition")
}

func TestVictoryGating(t *testing.T) {
	g := newPlayingGame(3)
	g.wave = 5
	g.director.StartWave(5)
	g.score = 5 * config.ScorePerWave // 1000: the victory threshold

	stepFor(g, config.WaveEndDelay+0.1)

	assert.Equal(t, component.ModeVictory, g.Mode())
	assert.GreaterOrEqual(t, g.Score(), config.VictoryScore)
}

func TestVictorySuppressedInEndless(t *testing.T) {
	g := newPlayingGame(3)
	g.endless = true
	g.wave = 5
	g.director.StartWave(5)
	g.score = 5 * config.ScorePerWave

	stepFor(g, config.WaveEndDelay+0.1)

	assert.Equal(t, component.ModeWaveComplete, g.Mode())
}

func TestDefeatRequiresAllCitiesDead(t *testing.T) {
	g := newPlayingGame(1)
	for i := 0; i < config.NumCities-2; i++ {
		g.reg.Cities[i].Alive = false
	}

	// A strike on the second-to-last city leaves one standing.
	target := g.reg.Cities[config.NumCities-2]
	g.reg.SpawnMissile(geom.Vec{X: target.Pos.X, Y: config.GroundY - 0.5}, target.Pos,
		component.TargetRef{Kind: component.TargetCity, Index: config.NumCities - 2}, 100)
	g.Step(tick)

	assert.False(t, target.Alive)
	assert.Equal(t, component.ModePlaying, g.Mode(), "one city still alive: no defeat")

	// Losing the last city ends the run immediately.
	last := g.reg.Cities[config.NumCities-1]
	g.reg.SpawnMissile(geom.Vec{X: last.Pos.X, Y: config.GroundY - 0.5}, last.Pos,
		component.TargetRef{Kind: component.TargetCity, Index: config.NumCities - 1}, 100)
	g.Step(tick)

	assert.Equal(t, component.ModeGameOver, g.Mode())
}

func TestStaleTargetImpactIsHarmless(t *testing.T) {
	g := newPlayingGame(1)
	g.reg.Cities[0].Alive = false
	citiesBefore := g.reg.AliveCities()

	c := g.reg.Cities[0]
	g.reg.SpawnMissile(geom.Vec{X: c.Pos.X, Y: config.GroundY - 0.5}, c.Pos,
		component.TargetRef{Kind: component.TargetCity, Index: 0}, 100)
	g.Step(tick)

	assert.Equal(t, citiesBefore, g.reg.AliveCities())
	assert.Equal(t, component.ModePlaying, g.Mode())
	assert.NotEmpty(t, g.reg.Blasts, "the impact itself still detonates")
}

func TestTowerStrikeZeroesAmmo(t *testing.T) {
	g := newPlayingGame(1)
	tw := g.reg.Towers[1]

	g.reg.SpawnMissile(geom.Vec{X: tw.Pos.X, Y: config.GroundY - 0.5}, tw.Pos,
		component.TargetRef{Kind: component.TargetTower, Index: 1}, 100)
	g.Step(tick)

	assert.False(t, tw.Alive)
	assert.Equal(t, 0, tw.Ammo)
	assert.Equal(t, component.ModePlaying, g.Mode(), "tower loss alone never ends the run")
}

func TestNoValidTowerTapIsIgnored(t *testing.T) {
	g := newPlayingGame(1)
	g.reg.Towers[0].Ammo = 0
	g.reg.Towers[1].Alive = false
	g.reg.Towers[2].Ammo = 0

	g.HandleTap(300, 200)

	assert.Empty(t, g.reg.Interceptors)
	assert.Equal(t, 0, g.reg.Towers[0].Ammo)
	assert.Equal(t, 0, g.reg.Towers[2].Ammo)
}

func TestSimultaneousTapsCannotOverdraw(t *testing.T) {
	g := newPlayingGame(1)
	g.reg.Towers[0].Ammo = 1
	g.reg.Towers[1].Alive = false
	g.reg.Towers[2].Alive = false

	g.HandleTap(100, 200)
	g.HandleTap(110, 210)

	assert.Len(t, g.reg.Interceptors, 1)
	assert.Equal(t, 0, g.reg.Towers[0].Ammo)
}

func TestTapIgnoredOutsidePlaying(t *testing.T) {
	g := NewGame(1)
	g.HandleTap(100, 100) // menu
	assert.Empty(t, g.reg.Interceptors)

	g.StartGame()
	g.TogglePause()
	g.HandleTap(100, 100) // paused
	assert.Empty(t, g.reg.Interceptors)
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newPlayingGame(1)
	m := g.reg.SpawnMissile(geom.Vec{X: 300, Y: 100}, geom.Vec{X: 300, Y: config.GroundY},
		component.TargetRef{Kind: component.TargetCity, Index: 0}, 60)

	g.TogglePause()
	before := m.Pos
	g.Step(0.05)

	assert.Equal(t, before, m.Pos, "no motion while paused")
	assert.Equal(t, 0.0, g.GameTime())

	g.TogglePause()
	g.Step(0.05)
	assert.NotEqual(t, before, m.Pos)
}

func TestFixedSeedRunsAreReproducible(t *testing.T) {
	script := func(g *Game) {
		for i := 0; i < 600; i++ {
			switch i {
			case 30:
				g.HandleTap(300, 200)
			case 90:
				g.HandleTap(500, 250)
			case 150:
				g.HandleTap(350, 180)
			}
			g.Step(tick)
		}
	}

	a := newPlayingGame(99)
	b := newPlayingGame(99)
	script(a)
	script(b)

	assert.Equal(t, a.Snapshot(), b.Snapshot())
}

func TestStaleDeferredTransitionNoOpsAfterReset(t *testing.T) {
	g := newPlayingGame(5)
	oldEpoch := g.epoch

	g.mode = component.ModeGameOver
	g.ReturnToMenu()
	g.StartGame()

	// A leftover slot stamped with the pre-reset epoch must never fire.
	g.pending = pendingTransition{active: true, fireAt: g.gameTime + 0.01, kind: component.ModeVictory, epoch: oldEpoch}
	stepFor(g, 0.2)

	assert.Equal(t, component.ModePlaying, g.Mode())
}

func TestCityLossIsPermanentAcrossWaves(t *testing.T) {
	g := newPlayingGame(1)
	g.reg.Cities[2].Alive = false
	g.reg.Towers[1].Alive = false
	g.reg.Towers[1].Ammo = 0

	g.mode = component.ModeWaveComplete
	g.NextWave()

	assert.False(t, g.reg.Cities[2].Alive, "cities are never repaired between waves")
	assert.True(t, g.reg.Towers[1].Alive, "towers are revived by the new-wave reset")
	assert.Equal(t, config.TowerMaxAmmo, g.reg.Towers[1].Ammo)
	assert.Equal(t, 2, g.Wave())
}

func TestAmmoNeverIncreasesWithinWave(t *testing.T) {
	g := newPlayingGame(1)
	tower := g.reg.Towers[0]

	prev := tower.Ammo
	for i := 0; i < config.TowerMaxAmmo+5; i++ {
		g.HandleTap(tower.Pos.X, 100)
		assert.LessOrEqual(t, tower.Ammo, prev)
		assert.GreaterOrEqual(t, tower.Ammo, 0)
		prev = tower.Ammo
	}
	assert.Equal(t, 0, tower.Ammo)
}

func TestResetClearsEverything(t *testing.T) {
	g := newPlayingGame(1)
	g.score = 500
	g.reg.Cities[0].Alive = false
	g.reg.SpawnBlast(geom.Vec{X: 10, Y: 10}, config.BlastColor)
	g.mode = component.ModeGameOver

	g.ReturnToMenu()
	g.StartGame()

	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 1, g.Wave())
	assert.Empty(t, g.reg.Blasts)
	assert.True(t, g.reg.Cities[0].Alive, "a full reset rebuilds the cities")
}
