// internal/defs/layout.go
package defs

import (
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/geom"
)

// TowerPositions returns the ground positions of the defense towers:
// one at each edge and one in the middle, all sitting on the ground line.
func TowerPositions() []geom.Vec {
	w := float64(config.ScreenWidth)
	return []geom.Vec{
		{X: w * 0.08, Y: config.GroundY},
		{X: w * 0.50, Y: config.GroundY},
		{X: w * 0.92, Y: config.GroundY},
	}
}

// CityPositions returns the ground positions of the protected cities,
// three between each pair of neighboring towers.
func CityPositions() []geom.Vec {
	w := float64(config.ScreenWidth)
	cols := []float64{0.18, 0.28, 0.38, 0.62, 0.72, 0.82}
	out := make([]geom.Vec, 0, len(cols))
	for _, c := range cols {
		out = append(out, geom.Vec{X: w * c, Y: config.GroundY})
	}
	return out
}
