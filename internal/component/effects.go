// internal/component/effects.go
package component

import (
	"go-missile-defense/internal/geom"
	"go-missile-defense/internal/types"
	"image/color"
)

// Particle is a decorative debris fragment spawned on destruction events.
// Particles never interact with collision logic.
type Particle struct {
	ID      types.EntityID
	Pos     geom.Vec
	Vel     geom.Vec
	Life    float64
	MaxLife float64
	Size    float64
	Dead    bool
	Color   color.RGBA
}

// ScorePopup is a floating score-delta marker. Purely decorative.
type ScorePopup struct {
	ID    types.EntityID
	Pos   geom.Vec
	Vel   geom.Vec // vertical drift
	Text  string
	Life  float64 // 1.0 -> 0.0
	Dead  bool
	Color color.RGBA
}
