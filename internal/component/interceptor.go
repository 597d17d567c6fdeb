// internal/component/interceptor.go
package component

import (
	"go-missile-defense/internal/geom"
	"go-missile-defense/internal/types"
	"image/color"
)

// Interceptor is a player-fired shot traveling toward a fixed aim point.
// It does not track moving targets; it detonates where the player tapped.
type Interceptor struct {
	ID         types.EntityID
	Pos        geom.Vec
	Vel        geom.Vec
	Speed      float64
	Aim        geom.Vec // fixed at launch
	TowerIndex int      // origin tower
	Trail      *Trail
	Dead       bool
	Color      color.RGBA
}
