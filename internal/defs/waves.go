// internal/defs/waves.go
package defs

import "go-missile-defense/internal/config"

// WaveTuning holds the difficulty parameters of a single wave.
type WaveTuning struct {
	SpawnInterval float64 // seconds between missile spawns
	MissileSpeed  float64 // base travel speed of new missiles
}

// WaveTable lists hand-tuned parameters for the early waves.
// Later waves fall back to the formula in TuningFor.
var WaveTable = map[int]WaveTuning{
	1: {SpawnInterval: 2.00, MissileSpeed: 60},
	2: {SpawnInterval: 1.85, MissileSpeed: 70},
	3: {SpawnInterval: 1.70, MissileSpeed: 80},
	4: {SpawnInterval: 1.55, MissileSpeed: 90},
	5: {SpawnInterval: 1.40, MissileSpeed: 100},
}

// TuningFor returns the tuning for the given wave number. Waves past the
// table scale linearly, with the spawn interval floored so the cadence
// never becomes unplayable.
func TuningFor(wave int) WaveTuning {
	if wave < 1 {
		wave = 1
	}
	if t, ok := WaveTable[wave]; ok {
		return t
	}
	interval := config.BaseSpawnInterval - float64(wave-1)*config.SpawnIntervalStep
	if interval < config.MinSpawnInterval {
		interval = config.MinSpawnInterval
	}
	return WaveTuning{
		SpawnInterval: interval,
		MissileSpeed:  config.BaseMissileSpeed + float64(wave-1)*config.MissileSpeedStep,
	}
}
