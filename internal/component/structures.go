// internal/component/structures.go
package component

import "go-missile-defense/internal/geom"

// Tower is a defense structure that fires interceptors. A destroyed tower
// stays dead and empty until the next new-wave reset.
type Tower struct {
	Pos     geom.Vec
	Ammo    int
	MaxAmmo int
	Alive   bool
}

// City is a protected landmark. A destroyed city is never rebuilt for the
// remainder of the run; only a full game reset restores it.
type City struct {
	Pos   geom.Vec
	Alive bool
}
