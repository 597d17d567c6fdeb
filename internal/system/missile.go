// internal/system/missile.go
package system

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/event"
	"go-missile-defense/internal/geom"
	"go-missile-defense/internal/rng"
)

// MissileSystem advances incoming missiles, resolves blast kills and
// ground impacts, and applies structure damage.
type MissileSystem struct {
	reg        *entity.Registry
	rnd        *rng.Service
	dispatcher *event.Dispatcher
}

// NewMissileSystem creates the system over the given registry.
func NewMissileSystem(reg *entity.Registry, rnd *rng.Service, dispatcher *event.Dispatcher) *MissileSystem {
	return &MissileSystem{reg: reg, rnd: rnd, dispatcher: dispatcher}
}

// Update moves every missile one time-slice. Each missile is checked
// against blasts before the ground check, walking blasts in spawn order
// and applying the first qualifying match. A blast kill spawns a secondary
// blast at the missile's position, which is how one intercept cascades
// into destroying nearby missiles over the following steps.
func (s *MissileSystem) Update(dt float64) {
	for _, m := range s.reg.Missiles {
		if m.Dead {
			continue
		}
		m.Pos = m.Pos.Add(m.Vel.Scale(dt))
		m.Trail.Push(m.Pos)

		if s.checkBlasts(m) {
			continue
		}
		if m.Pos.Y >= config.GroundY {
			s.groundImpact(m)
		}
	}
}

func (s *MissileSystem) checkBlasts(m *component.Missile) bool {
	for _, b := range s.reg.Blasts {
		if b.Dead || b.Radius <= 0 {
			continue
		}
		if geom.Dist(m.Pos, b.Pos) >= b.Radius {
			continue
		}
		m.Dead = true
		s.reg.SpawnBlast(m.Pos, config.BlastColor)
		s.reg.SpawnParticles(m.Pos, config.DebrisPerKill, m.Color, s.rnd)
		s.reg.SpawnScorePopup(m.Pos, config.KillScore)
		s.dispatcher.Dispatch(event.Event{
			Type: event.MissileDestroyed,
			Data: event.KillData{Pos: m.Pos, Award: config.KillScore},
		})
		return true
	}
	return false
}

// groundImpact resolves a missile reaching ground level. A target that
// already died in flight degrades to a harmless impact.
func (s *MissileSystem) groundImpact(m *component.Missile) {
	m.Dead = true
	s.reg.SpawnBlast(m.Pos, config.ImpactBlastColor)
	s.reg.SpawnParticles(m.Pos, config.DebrisPerImpact, config.ImpactBlastColor, s.rnd)

	major := false
	switch m.Target.Kind {
	case component.TargetCity:
		if c := s.reg.Cities[m.Target.Index]; c.Alive {
			c.Alive = false
			major = true
			s.dispatcher.Dispatch(event.Event{
				Type: event.StructureDestroyed,
				Data: event.StructureData{Kind: component.TargetCity, Index: m.Target.Index},
			})
		}
	case component.TargetTower:
		if t := s.reg.Towers[m.Target.Index]; t.Alive {
			t.Alive = false
			t.Ammo = 0
			major = true
			s.dispatcher.Dispatch(event.Event{
				Type: event.StructureDestroyed,
				Data: event.StructureData{Kind: component.TargetTower, Index: m.Target.Index},
			})
		}
	}
	s.dispatcher.Dispatch(event.Event{
		Type: event.GroundImpact,
		Data: event.ImpactData{Pos: m.Pos, Major: major},
	})
}
