// internal/event/types.go
package event

import (
	"go-missile-defense/internal/component"
	"go-missile-defense/internal/geom"
)

const (
	InterceptorFired   Type = "InterceptorFired"   // a tower launched an interceptor
	MissileDestroyed   Type = "MissileDestroyed"   // a missile was caught in a blast
	GroundImpact       Type = "GroundImpact"       // a missile reached the ground
	StructureDestroyed Type = "StructureDestroyed" // a city or tower was lost
	WaveCleared        Type = "WaveCleared"        // score threshold reached, spawning stopped
	WaveBonusAwarded   Type = "WaveBonusAwarded"   // end-of-wave ammo bonus settled
	GameReset          Type = "GameReset"          // full reset back to the menu baseline
)

// FiredData accompanies InterceptorFired.
type FiredData struct {
	TowerIndex int
	From       geom.Vec
	Aim        geom.Vec
}

// KillData accompanies MissileDestroyed.
type KillData struct {
	Pos   geom.Vec
	Award int
}

// ImpactData accompanies GroundImpact. Major is true when the impact
// destroyed a structure; presentation maps it to the stronger
// shake/haptic level.
type ImpactData struct {
	Pos   geom.Vec
	Major bool
}

// StructureData accompanies StructureDestroyed.
type StructureData struct {
	Kind  component.TargetKind
	Index int
}

// BonusData accompanies WaveBonusAwarded.
type BonusData struct {
	Wave  int
	Bonus int
}
