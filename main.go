package main

import (
	"image"
	"log"

	"github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/fonts"
	"github.com/automoto/jeep-parallax/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() (*Game, error) {
	if err := fonts.LoadFont(fonts.Regular, goregular.TTF); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Banner, goregular.TTF, 24); err != nil {
		return nil, err
	}
	if err := fonts.LoadFontWithSize(fonts.Small, goregular.TTF, 10); err != nil {
		return nil, err
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewLoadingScene(g)

	return g, nil
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout fixes the logical window to the scene surface plus the button bar
// below it, whatever size the host gives us.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.WindowHeight())
	return g.bounds.Dx(), g.bounds.Dy()
}

func main() {
	if err := mountCanvas(config.C.MountID); err != nil {
		log.Fatalf("Failed to mount canvas: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.WindowHeight()*2)
	ebiten.SetWindowTitle("Jeep Parallax")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	game, err := NewGame()
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
