// internal/entity/registry.go
package entity

import (
	"fmt"
	"image/color"
	"math"

	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/geom"
	"go-missile-defense/internal/rng"
	"go-missile-defense/internal/types"
)

// Registry owns every live simulation collection: the five entity kinds
// plus the two structure collections. All spawns are append-only; removal
// happens only in CullDead, which runs once per simulation step after
// collision resolution so a single step sees a stable entity set.
//
// Collections are ID-ordered slices rather than maps so that iteration
// order (and therefore first-match blast resolution) is reproducible
// under a fixed seed.
type Registry struct {
	NextID types.EntityID

	Missiles     []*component.Missile
	Interceptors []*component.Interceptor
	Blasts       []*component.Blast
	Particles    []*component.Particle
	Popups       []*component.ScorePopup

	Towers []*component.Tower
	Cities []*component.City
}

// NewRegistry creates a registry with no entities and no structures.
func NewRegistry() *Registry {
	return &Registry{NextID: 1}
}

func (r *Registry) newID() types.EntityID {
	id := r.NextID
	r.NextID++
	return id
}

// ResetStructures rebuilds towers and cities at the given positions, all
// alive with towers at full ammo, and clears every entity collection.
func (r *Registry) ResetStructures(towerPos, cityPos []geom.Vec, maxAmmo int) {
	r.Towers = make([]*component.Tower, 0, len(towerPos))
	for _, p := range towerPos {
		r.Towers = append(r.Towers, &component.Tower{Pos: p, Ammo: maxAmmo, MaxAmmo: maxAmmo, Alive: true})
	}
	r.Cities = make([]*component.City, 0, len(cityPos))
	for _, p := range cityPos {
		r.Cities = append(r.Cities, &component.City{Pos: p, Alive: true})
	}
	r.ClearEntities()
}

// ResetTowersForWave revives every tower and refills its ammo.
// Cities are deliberately untouched: a lost city stays lost for the run.
func (r *Registry) ResetTowersForWave() {
	for _, t := range r.Towers {
		t.Alive = true
		t.Ammo = t.MaxAmmo
	}
}

// ClearEntities drops all five entity collections.
func (r *Registry) ClearEntities() {
	r.Missiles = nil
	r.Interceptors = nil
	r.Blasts = nil
	r.Particles = nil
	r.Popups = nil
}

// SpawnMissile creates an incoming missile at from, moving toward
// targetPos at the given speed.
func (r *Registry) SpawnMissile(from, targetPos geom.Vec, target component.TargetRef, speed float64) *component.Missile {
	m := &component.Missile{
		ID:     r.newID(),
		Pos:    from,
		Vel:    targetPos.Sub(from).Normalized().Scale(speed),
		Speed:  speed,
		Target: target,
		Trail:  component.NewTrail(config.TrailLength),
		Color:  config.MissileColor,
	}
	r.Missiles = append(r.Missiles, m)
	return m
}

// SpawnInterceptor creates a player shot at from, moving toward aim.
func (r *Registry) SpawnInterceptor(from, aim geom.Vec, speed float64, towerIndex int) *component.Interceptor {
	ic := &component.Interceptor{
		ID:         r.newID(),
		Pos:        from,
		Vel:        aim.Sub(from).Normalized().Scale(speed),
		Speed:      speed,
		Aim:        aim,
		TowerIndex: towerIndex,
		Trail:      component.NewTrail(config.TrailLength),
		Color:      config.InterceptorColor,
	}
	r.Interceptors = append(r.Interceptors, ic)
	return ic
}

// SpawnBlast creates a blast at origin that grows to the standard radius.
func (r *Registry) SpawnBlast(origin geom.Vec, clr color.RGBA) *component.Blast {
	b := &component.Blast{
		ID:         r.newID(),
		Pos:        origin,
		Radius:     0,
		MaxRadius:  config.BlastMaxRadius,
		GrowthRate: config.BlastGrowthRate,
		Life:       1.0,
		Color:      clr,
	}
	r.Blasts = append(r.Blasts, b)
	return b
}

// SpawnParticles creates a decorative debris burst at origin. The particle
// collection is capped; the oldest fragments are dropped first under
// pressure. Gameplay collections are never capped.
func (r *Registry) SpawnParticles(origin geom.Vec, count int, clr color.RGBA, rnd *rng.Service) {
	for i := 0; i < count; i++ {
		if len(r.Particles) >= config.MaxParticles {
			r.dropOldestParticle()
		}
		angle := rnd.FloatRange(0, 2*math.Pi)
		speed := rnd.FloatRange(config.DebrisSpeed*0.3, config.DebrisSpeed)
		life := rnd.FloatRange(config.DebrisLife*0.5, config.DebrisLife)
		r.Particles = append(r.Particles, &component.Particle{
			ID:      r.newID(),
			Pos:     origin,
			Vel:     geom.Vec{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed},
			Life:    life,
			MaxLife: life,
			Size:    rnd.FloatRange(1, 3),
			Color:   clr,
		})
	}
}

// SpawnScorePopup creates a floating "+N" marker at origin.
func (r *Registry) SpawnScorePopup(origin geom.Vec, amount int) {
	if len(r.Popups) >= config.MaxPopups {
		r.dropOldestPopup()
	}
	r.Popups = append(r.Popups, &component.ScorePopup{
		ID:    r.newID(),
		Pos:   origin,
		Vel:   geom.Vec{Y: config.PopupDrift},
		Text:  fmt.Sprintf("+%d", amount),
		Life:  1.0,
		Color: config.PopupColor,
	})
}

func (r *Registry) dropOldestParticle() {
	for _, p := range r.Particles {
		if !p.Dead {
			p.Dead = true
			return
		}
	}
}

func (r *Registry) dropOldestPopup() {
	for _, p := range r.Popups {
		if !p.Dead {
			p.Dead = true
			return
		}
	}
}

// CullDead removes every tombstoned entity across all five collections.
// It must run exactly once per simulation step, after collision checks.
func (r *Registry) CullDead() {
	r.Missiles = cull(r.Missiles, func(m *component.Missile) bool { return m.Dead })
	r.Interceptors = cull(r.Interceptors, func(i *component.Interceptor) bool { return i.Dead })
	r.Blasts = cull(r.Blasts, func(b *component.Blast) bool { return b.Dead })
	r.Particles = cull(r.Particles, func(p *component.Particle) bool { return p.Dead })
	r.Popups = cull(r.Popups, func(p *component.ScorePopup) bool { return p.Dead })
}

func cull[T any](in []*T, dead func(*T) bool) []*T {
	out := in[:0]
	for _, e := range in {
		if !dead(e) {
			out = append(out, e)
		}
	}
	// Zero the tail so culled entities do not linger reachable.
	for i := len(out); i < len(in); i++ {
		in[i] = nil
	}
	return out
}

// AliveCities returns how many cities are still standing.
func (r *Registry) AliveCities() int {
	n := 0
	for _, c := range r.Cities {
		if c.Alive {
			n++
		}
	}
	return n
}

// AliveTowers returns how many towers are operational.
func (r *Registry) AliveTowers() int {
	n := 0
	for _, t := range r.Towers {
		if t.Alive {
			n++
		}
	}
	return n
}
