// internal/system/blast.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
)

// BlastSystem animates blasts: linear growth to max radius, then life
// decay. A blast keeps destroying missiles while it decays; it is culled
// once life reaches zero.
type BlastSystem struct {
	reg *entity.Registry
}

// NewBlastSystem creates the system over the given registry.
func NewBlastSystem(reg *entity.Registry) *BlastSystem {
	return &BlastSystem{reg: reg}
}

// Update advances every blast one time-slice.
func (s *BlastSystem) Update(dt float64) {
	for _, b := range s.reg.Blasts {
		if b.Dead {
			continue
		}
		if b.Radius < b.MaxRadius {
			b.Radius += b.GrowthRate * dt
			if b.Radius > b.MaxRadius {
				b.Radius = b.MaxRadius
			}
			continue
		}
		b.Life -= config.BlastDecayRate * dt
		if b.Life <= 0 {
			b.Life = 0
			b.Dead = true
		}
	}
}
