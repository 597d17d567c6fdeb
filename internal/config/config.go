// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	GroundY      = 560.0
	MaxDeltaTime = 0.06

	NumCities    = 6
	NumTowers    = 3
	TowerMaxAmmo = 10

	InterceptorSpeed = 300.0
	ArrivalRadius    = 6.0 // floor for the arrival check at very small deltas
	TrailLength      = 12

	BlastMaxRadius  = 40.0
	BlastGrowthRate = 120.0 // pixels per second
	BlastDecayRate  = 2.0   // life units per second once fully grown

	BaseSpawnInterval  = 2.0 // seconds between spawns on wave 1
	SpawnIntervalStep  = 0.15
	MinSpawnInterval   = 0.5
	BaseMissileSpeed   = 60.0
	MissileSpeedStep   = 10.0
	MissileSpawnMargin = 40.0 // keep spawn columns away from the edges

	KillScore        = 20
	ScorePerWave     = 200
	VictoryScore     = 1000
	AmmoBonusPerUnit = 5
	WaveEndDelay     = 2.0 // grace period before the wave-end transition

	DebrisPerKill   = 12
	DebrisPerImpact = 18
	DebrisSpeed     = 90.0
	DebrisLife      = 0.7
	PopupLife       = 1.2
	PopupDrift      = -28.0 // pixels per second, upward

	MaxParticles = 600
	MaxPopups    = 40

	ShakeMinor = 4.0
	ShakeMajor = 10.0
	ShakeDecay = 18.0 // amplitude units per second
)

var (
	BackgroundColor  = color.RGBA{12, 12, 24, 255}
	GroundColor      = color.RGBA{40, 34, 28, 255}
	MissileColor     = color.RGBA{255, 80, 80, 255}
	TrailColor       = color.RGBA{255, 80, 80, 90}
	InterceptorColor = color.RGBA{90, 200, 255, 255}
	AimTrailColor    = color.RGBA{90, 200, 255, 90}
	BlastColor       = color.RGBA{255, 200, 60, 255}
	ImpactBlastColor = color.RGBA{255, 120, 40, 255}
	TowerColor       = color.RGBA{120, 220, 120, 255}
	TowerDeadColor   = color.RGBA{70, 80, 70, 255}
	CityColor        = color.RGBA{170, 170, 255, 255}
	CityDeadColor    = color.RGBA{60, 60, 80, 255}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDimColor     = color.RGBA{150, 150, 160, 255}
	PopupColor       = color.RGBA{255, 230, 120, 255}
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	ButtonColor      = color.RGBA{50, 60, 90, 230}
	ButtonHoverColor = color.RGBA{70, 85, 125, 230}
	ButtonTextColor  = color.RGBA{235, 240, 250, 255}
)
