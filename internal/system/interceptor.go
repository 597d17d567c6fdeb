// internal/system/interceptor.go
package system

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/entity"
	"go-missile-defense/internal/geom"
)

// InterceptorSystem advances player shots toward their fixed aim points
// and detonates them on arrival.
type InterceptorSystem struct {
	reg *entity.Registry
}

// NewInterceptorSystem creates the system over the given registry.
func NewInterceptorSystem(reg *entity.Registry) *InterceptorSystem {
	return &InterceptorSystem{reg: reg}
}

// Update moves every interceptor one time-slice. The arrival threshold is
// one speed-step so a fast interceptor cannot overshoot its aim point and
// miss; arrival spawns a blast exactly at the aim point.
func (s *InterceptorSystem) Update(dt float64) {
	for _, ic := range s.reg.Interceptors {
		if ic.Dead {
			continue
		}
		ic.Pos = ic.Pos.Add(ic.Vel.Scale(dt))
		ic.Trail.Push(ic.Pos)

		arrive := ic.Speed * dt
		if arrive < config.ArrivalRadius {
			arrive = config.ArrivalRadius
		}
		if geom.Dist(ic.Pos, ic.Aim) < arrive {
			ic.Dead = true
			s.reg.SpawnBlast(ic.Aim, config.BlastColor)
		}
	}
}
