// cmd/game/main.go
package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-missile-defense/internal/app"
	"go-missile-defense/internal/audio"
	"go-missile-defense/internal/config"
	"go-missile-defense/internal/render"
	"go-missile-defense/internal/state"
	"go-missile-defense/internal/ui"
)

// AppGame adapts the state machine to the ebiten game loop and derives
// the per-tick delta from the wall clock.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func loadFaces() (font.Face, font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, nil, err
	}
	body, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 16, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, nil, err
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 32, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, nil, err
	}
	return body, title, nil
}

func main() {
	seed := flag.Int64("seed", 0, "simulation seed, 0 for time-based")
	mute := flag.Bool("mute", false, "disable audio")
	start := flag.Bool("start", false, "skip the menu and start playing")
	flag.Parse()

	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()

	body, title, err := loadFaces()
	if err != nil {
		log.Fatal(err)
	}

	game := app.NewGame(*seed)
	audio.New(*mute).Attach(game.Events())

	ctx := &state.Context{
		Game:     game,
		Renderer: render.NewRenderer(body),
		HUD:      ui.NewHUD(body, title),
	}
	sm := state.NewStateMachine()
	if *start {
		game.StartGame()
		sm.SetState(state.NewPlayingState(sm, ctx))
	} else {
		sm.SetState(state.NewMenuState(sm, ctx))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Skyfall Defense")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm, lastUpdateTime: time.Now()}); err != nil {
		log.Fatal(err)
	}
}
