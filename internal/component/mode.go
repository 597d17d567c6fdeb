// internal/component/mode.go
package component

// Mode is the coarse game mode owned by the simulation aggregate.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModePaused
	ModeWaveComplete
	ModeGameOver
	ModeVictory
)

func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "Menu"
	case ModePlaying:
		return "Playing"
	case ModePaused:
		return "Paused"
	case ModeWaveComplete:
		return "WaveComplete"
	case ModeGameOver:
		return "GameOver"
	case ModeVictory:
		return "Victory"
	}
	return "Unknown"
}
