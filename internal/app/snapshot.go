// internal/app/snapshot.go
package app

import (
	"image/color"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/geom"
)

// Snapshot is the read-only view handed to the presentation layer once
// per rendered frame. Every slice is a copy; the renderer never touches
// the simulation-owned collections.
type Snapshot struct {
	Mode      component.Mode
	Score     int
	Wave      int
	Endless   bool
	LastBonus int
	Shake     float64
	GameTime  float64

	Missiles     []MissileView
	Interceptors []InterceptorView
	Blasts       []BlastView
	Particles    []ParticleView
	Popups       []PopupView
	Towers       []TowerView
	Cities       []CityView
}

// MissileView mirrors a missile for drawing.
type MissileView struct {
	Pos   geom.Vec
	Trail []geom.Vec
	Color color.RGBA
}

// InterceptorView mirrors an interceptor for drawing.
type InterceptorView struct {
	Pos   geom.Vec
	Aim   geom.Vec
	Trail []geom.Vec
	Color color.RGBA
}

// BlastView mirrors a blast for drawing.
type BlastView struct {
	Pos    geom.Vec
	Radius float64
	Life   float64
	Color  color.RGBA
}

// ParticleView mirrors a debris particle for drawing.
type ParticleView struct {
	Pos   geom.Vec
	Size  float64
	Fade  float64 // 1.0 fresh -> 0.0 expired
	Color color.RGBA
}

// PopupView mirrors a score popup for drawing.
type PopupView struct {
	Pos   geom.Vec
	Text  string
	Life  float64
	Color color.RGBA
}

// TowerView mirrors a tower for drawing.
type TowerView struct {
	Pos     geom.Vec
	Ammo    int
	MaxAmmo int
	Alive   bool
}

// CityView mirrors a city for drawing.
type CityView struct {
	Pos   geom.Vec
	Alive bool
}

// Snapshot captures the current simulation state as plain values.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Mode:      g.mode,
		Score:     g.score,
		Wave:      g.wave,
		Endless:   g.endless,
		LastBonus: g.lastBonus,
		Shake:     g.shake,
		GameTime:  g.gameTime,
	}

	for _, m := range g.reg.Missiles {
		s.Missiles = append(s.Missiles, MissileView{Pos: m.Pos, Trail: m.Trail.Positions(), Color: m.Color})
	}
	for _, ic := range g.reg.Interceptors {
		s.Interceptors = append(s.Interceptors, InterceptorView{Pos: ic.Pos, Aim: ic.Aim, Trail: ic.Trail.Positions(), Color: ic.Color})
	}
	for _, b := range g.reg.Blasts {
		s.Blasts = append(s.Blasts, BlastView{Pos: b.Pos, Radius: b.Radius, Life: b.Life, Color: b.Color})
	}
	for _, p := range g.reg.Particles {
		fade := 0.0
		if p.MaxLife > 0 {
			fade = p.Life / p.MaxLife
		}
		s.Particles = append(s.Particles, ParticleView{Pos: p.Pos, Size: p.Size, Fade: fade, Color: p.Color})
	}
	for _, p := range g.reg.Popups {
		s.Popups = append(s.Popups, PopupView{Pos: p.Pos, Text: p.Text, Life: p.Life, Color: p.Color})
	}
	for _, t := range g.reg.Towers {
		s.Towers = append(s.Towers, TowerView{Pos: t.Pos, Ammo: t.Ammo, MaxAmmo: t.MaxAmmo, Alive: t.Alive})
	}
	for _, c := range g.reg.Cities {
		s.Cities = append(s.Cities, CityView{Pos: c.Pos, Alive: c.Alive})
	}
	return s
}
