package fx_test

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/postfx/fx"
)

type exampleGame struct {
	pipeline *fx.Pipeline
}

func (g *exampleGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.pipeline.GiveBoost()
	}
	g.pipeline.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *exampleGame) Draw(screen *ebiten.Image) {
	target := g.pipeline.BeginCapture(screen)
	target.Fill(color.RGBA{R: 0x30, G: 0x60, B: 0x90, A: 0xff})
	// ... draw the scene onto target here ...
	g.pipeline.EndCapture()
	g.pipeline.Render(screen)
	// ... draw HUD onto screen here ...
}

func (g *exampleGame) Layout(w, h int) (int, int) { return w, h }

func Example() {
	pipeline, err := fx.New(fx.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer pipeline.Dispose()

	if err := ebiten.RunGame(&exampleGame{pipeline: pipeline}); err != nil {
		log.Fatal(err)
	}
}
