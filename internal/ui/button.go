// internal/ui/button.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-missile-defense/internal/config"
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	X, Y, W, H float32
	Text       string
}

// NewButton creates a button centered horizontally at cx.
func NewButton(cx, y, w, h float32, label string) *Button {
	return &Button{X: cx - w/2, Y: y, W: w, H: h, Text: label}
}

// Contains reports whether the screen coordinate lies inside the button.
func (b *Button) Contains(x, y int) bool {
	fx, fy := float32(x), float32(y)
	return fx >= b.X && fx <= b.X+b.W && fy >= b.Y && fy <= b.Y+b.H
}

// Draw renders the button, highlighted when the cursor hovers it.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	mx, my := ebiten.CursorPosition()
	bg := config.ButtonColor
	if b.Contains(mx, my) {
		bg = config.ButtonHoverColor
	}
	vector.DrawFilledRect(screen, b.X, b.Y, b.W, b.H, bg, true)
	vector.StrokeRect(screen, b.X, b.Y, b.W, b.H, 2, config.TextDimColor, true)

	bounds := text.BoundString(face, b.Text)
	tw := bounds.Max.X - bounds.Min.X
	th := bounds.Max.Y - bounds.Min.Y
	tx := int(b.X) + (int(b.W)-tw)/2
	ty := int(b.Y) + (int(b.H)+th)/2
	text.Draw(screen, b.Text, face, tx, ty, color.Color(config.ButtonTextColor))
}
