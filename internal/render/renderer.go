// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/geom"
)

// Renderer draws the battlefield from a snapshot. It holds no reference
// to simulation state; everything it needs arrives as copied values.
type Renderer struct {
	face font.Face
}

// NewRenderer creates a renderer using the given face for popups.
func NewRenderer(face font.Face) *Renderer {
	return &Renderer{face: face}
}

// Draw renders one frame of the battlefield.
func (r *Renderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	screen.Fill(config.BackgroundColor)

	// Ground impacts rattle the whole scene.
	ox := float32(snap.Shake * math.Sin(snap.GameTime*43))
	oy := float32(snap.Shake * math.Cos(snap.GameTime*31))

	vector.DrawFilledRect(screen, 0, config.GroundY+oy, config.ScreenWidth, config.ScreenHeight-config.GroundY, config.GroundColor, false)

	r.drawStructures(screen, snap, ox, oy)
	r.drawTrailedEntities(screen, snap, ox, oy)
	r.drawBlasts(screen, snap, ox, oy)
	r.drawCosmetics(screen, snap, ox, oy)
}

func (r *Renderer) drawStructures(screen *ebiten.Image, snap app.Snapshot, ox, oy float32) {
	for _, c := range snap.Cities {
		clr := config.CityColor
		if !c.Alive {
			clr = config.CityDeadColor
		}
		x, y := float32(c.Pos.X)+ox, float32(c.Pos.Y)+oy
		vector.DrawFilledRect(screen, x-14, y-10, 28, 10, clr, true)
		vector.DrawFilledRect(screen, x-6, y-18, 12, 8, clr, true)
	}
	for _, t := range snap.Towers {
		clr := config.TowerColor
		if !t.Alive {
			clr = config.TowerDeadColor
		}
		x, y := float32(t.Pos.X)+ox, float32(t.Pos.Y)+oy
		vector.DrawFilledRect(screen, x-10, y-14, 20, 14, clr, true)
		vector.DrawFilledCircle(screen, x, y-14, 7, clr, true)
	}
}

func (r *Renderer) drawTrailedEntities(screen *ebiten.Image, snap app.Snapshot, ox, oy float32) {
	for _, m := range snap.Missiles {
		r.drawTrail(screen, m.Trail, config.TrailColor, ox, oy)
		vector.DrawFilledCircle(screen, float32(m.Pos.X)+ox, float32(m.Pos.Y)+oy, 3, m.Color, true)
	}
	for _, ic := range snap.Interceptors {
		r.drawTrail(screen, ic.Trail, config.AimTrailColor, ox, oy)
		vector.DrawFilledCircle(screen, float32(ic.Pos.X)+ox, float32(ic.Pos.Y)+oy, 3, ic.Color, true)
		// Aim marker: a small cross where the shot will detonate.
		ax, ay := float32(ic.Aim.X)+ox, float32(ic.Aim.Y)+oy
		vector.StrokeLine(screen, ax-4, ay, ax+4, ay, 1, config.AimTrailColor, true)
		vector.StrokeLine(screen, ax, ay-4, ax, ay+4, 1, config.AimTrailColor, true)
	}
}

func (r *Renderer) drawTrail(screen *ebiten.Image, trail []geom.Vec, clr color.RGBA, ox, oy float32) {
	for i := 1; i < len(trail); i++ {
		a, b := trail[i-1], trail[i]
		vector.StrokeLine(screen, float32(a.X)+ox, float32(a.Y)+oy, float32(b.X)+ox, float32(b.Y)+oy, 2, clr, true)
	}
}

func (r *Renderer) drawBlasts(screen *ebiten.Image, snap app.Snapshot, ox, oy float32) {
	for _, b := range snap.Blasts {
		clr := fade(b.Color, b.Life)
		vector.DrawFilledCircle(screen, float32(b.Pos.X)+ox, float32(b.Pos.Y)+oy, float32(b.Radius), clr, true)
	}
}

func (r *Renderer) drawCosmetics(screen *ebiten.Image, snap app.Snapshot, ox, oy float32) {
	for _, p := range snap.Particles {
		clr := fade(p.Color, p.Fade)
		half := float32(p.Size / 2)
		vector.DrawFilledRect(screen, float32(p.Pos.X)+ox-half, float32(p.Pos.Y)+oy-half, float32(p.Size), float32(p.Size), clr, false)
	}
	for _, p := range snap.Popups {
		clr := fade(p.Color, p.Life)
		text.Draw(screen, p.Text, r.face, int(p.Pos.X)+int(ox), int(p.Pos.Y)+int(oy), color.Color(clr))
	}
}

// fade scales all four channels, keeping the premultiplied-alpha contract.
func fade(c color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * t),
		G: uint8(float64(c.G) * t),
		B: uint8(float64(c.B) * t),
		A: uint8(float64(c.A) * t),
	}
}
