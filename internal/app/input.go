// internal/app/input.go
package app

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/geom"
)

// HandleTap resolves one tap or click at screen coordinate (x, y).
// Only valid while Playing: the nearest alive tower with ammo fires one
// interceptor toward the tap; if no tower qualifies, the tap is silently
// ignored. Batched taps (multi-touch) are resolved one call at a time, so
// ammo is re-checked per tap and a tower can never be overdrawn.
func (g *Game) HandleTap(x, y float64) {
	if g.mode != component.ModePlaying {
		return
	}
	aim := geom.Vec{X: x, Y: y}

	best := -1
	bestDist := 0.0
	for i, t := range g.reg.Towers {
		if !t.Alive || t.Ammo <= 0 {
			continue
		}
		d := geom.Dist(t.Pos, aim)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return
	}

	tower := g.reg.Towers[best]
	tower.Ammo--
	g.reg.SpawnInterceptor(tower.Pos, aim, config.InterceptorSpeed, best)
	g.dispatcher.Dispatch(event.Event{
		Type: event.InterceptorFired,
		Data: event.FiredData{TowerIndex: best, From: tower.Pos, Aim: aim},
	})
}
