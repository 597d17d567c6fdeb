// internal/component/blast.go
package component

import (
	"go-missile-defense/internal/geom"
	"go-missile-defense/internal/types"
	"image/color"
)

// Blast is a growing-then-decaying circular area that destroys any missile
// inside its current radius. It grows linearly to MaxRadius, then Life
// decays from 1.0 to 0.0, at which point the blast is culled.
type Blast struct {
	ID         types.EntityID
	Pos        geom.Vec
	Radius     float64
	MaxRadius  float64
	GrowthRate float64
	Life       float64 // 1.0 -> 0.0
	Dead       bool
	Color      color.RGBA
}
