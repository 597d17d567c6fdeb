// internal/ui/hud.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
)

// HUD draws the textual overlay: score, wave, ammo readouts and the
// big centered titles used by the overlay screens.
type HUD struct {
	face      font.Face
	titleFace font.Face
}

// NewHUD creates a HUD with a body face and a larger title face.
func NewHUD(face, titleFace font.Face) *HUD {
	return &HUD{face: face, titleFace: titleFace}
}

// DrawPlaying renders the in-game readouts from a snapshot.
func (h *HUD) DrawPlaying(screen *ebiten.Image, snap app.Snapshot) {
	text.Draw(screen, fmt.Sprintf("SCORE %d", snap.Score), h.face, 12, 22, color.Color(config.TextLightColor))

	waveLabel := fmt.Sprintf("WAVE %d", snap.Wave)
	if snap.Endless {
		waveLabel += "  ENDLESS"
	}
	h.drawRightAligned(screen, waveLabel, config.ScreenWidth-12, 22, config.TextLightColor)

	target := snap.Wave * config.ScorePerWave
	h.drawRightAligned(screen, fmt.Sprintf("TARGET %d", target), config.ScreenWidth-12, 42, config.TextDimColor)

	// Ammo readout under each tower.
	for _, t := range snap.Towers {
		label := fmt.Sprintf("%d", t.Ammo)
		if !t.Alive {
			label = "X"
		}
		h.drawCentered(screen, label, int(t.Pos.X), config.ScreenHeight-8, config.TextDimColor, h.face)
	}
}

// DrawTitle renders a large centered line at the given y.
func (h *HUD) DrawTitle(screen *ebiten.Image, s string, y int, clr color.RGBA) {
	h.drawCentered(screen, s, config.ScreenWidth/2, y, clr, h.titleFace)
}

// DrawLine renders a body-sized centered line at the given y.
func (h *HUD) DrawLine(screen *ebiten.Image, s string, y int, clr color.RGBA) {
	h.drawCentered(screen, s, config.ScreenWidth/2, y, clr, h.face)
}

// Face returns the body face, shared with buttons.
func (h *HUD) Face() font.Face {
	return h.face
}

func (h *HUD) drawCentered(screen *ebiten.Image, s string, cx, y int, clr color.RGBA, face font.Face) {
	bounds := text.BoundString(face, s)
	w := bounds.Max.X - bounds.Min.X
	text.Draw(screen, s, face, cx-w/2, y, color.Color(clr))
}

func (h *HUD) drawRightAligned(screen *ebiten.Image, s string, right, y int, clr color.RGBA) {
	bounds := text.BoundString(h.face, s)
	w := bounds.Max.X - bounds.Min.X
	text.Draw(screen, s, h.face, right-w, y, color.Color(clr))
}
