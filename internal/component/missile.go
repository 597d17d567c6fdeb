// internal/component/missile.go
package component

import (
	"go-missile-defense/internal/geom"
	"go-missile-defense/internal/types"
	"image/color"
)

// TargetKind tags which structure collection a missile target refers to.
type TargetKind int

const (
	TargetCity TargetKind = iota
	TargetTower
)

// TargetRef points at a structure by collection and index. The structure
// was alive when the missile spawned; it may die while the missile is in
// flight, in which case the missile still travels to the same coordinates.
type TargetRef struct {
	Kind  TargetKind
	Index int
}

// Missile is an incoming threat traveling toward a targeted structure.
type Missile struct {
	ID     types.EntityID
	Pos    geom.Vec
	Vel    geom.Vec
	Speed  float64
	Target TargetRef
	Trail  *Trail
	Dead   bool
	Color  color.RGBA
}
