// internal/system/cosmetic.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
)

// CosmeticSystem decays debris particles and score popups. Decorative
// only; nothing here feeds back into collision or scoring.
type CosmeticSystem struct {
	reg *entity.Registry
}

// NewCosmeticSystem creates the system over the given registry.
func NewCosmeticSystem(reg *entity.Registry) *CosmeticSystem {
	return &CosmeticSystem{reg: reg}
}

// Update advances particles and popups one time-slice.
func (s *CosmeticSystem) Update(dt float64) {
	for _, p := range s.reg.Particles {
		if p.Dead {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= dt
		if p.Life <= 0 {
			p.Dead = true
		}
	}
	for _, p := range s.reg.Popups {
		if p.Dead {
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Life -= dt / config.PopupLife
		if p.Life <= 0 {
			p.Dead = true
		}
	}
}
