package scenes

import (
	"context"
	"image/color"
	"log"
	"strings"
	"sync"

	"github.com/automoto/jeep-parallax/assets"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/fonts"
	"github.com/automoto/jeep-parallax/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// LoadingScene fetches every image in the asset manifest before the parallax
// scene starts. Nothing is drawn from the images until all of them arrived.
type LoadingScene struct {
	sceneChanger SceneChanger
	source       assets.Source
	once         sync.Once
	ticks        int

	// newImages turns a successful load into drawable images
	newImages func(assets.Result) (systems.ImageSource, error)

	mu     sync.Mutex
	result *assets.Result
}

// NewLoadingScene loads from the default source: the configured base URL or
// the embedded images.
func NewLoadingScene(sc SceneChanger) *LoadingScene {
	return NewLoadingSceneFrom(sc, assets.DefaultSource())
}

// NewLoadingSceneFrom loads from src.
func NewLoadingSceneFrom(sc SceneChanger, src assets.Source) *LoadingScene {
	return &LoadingScene{
		sceneChanger: sc,
		source:       src,
		newImages: func(r assets.Result) (systems.ImageSource, error) {
			return assets.NewBundle(r)
		},
	}
}

func (ls *LoadingScene) Update() {
	ls.once.Do(ls.configure)
	ls.ticks++

	// Apply the load result on the main goroutine
	ls.mu.Lock()
	res := ls.result
	ls.result = nil
	ls.mu.Unlock()
	if res == nil {
		return
	}

	if res.Err != nil {
		log.Printf("Warning: asset load failed after %v: %v", res.Elapsed, res.Err)
		ls.sceneChanger.ChangeScene(NewErrorScene(ls.sceneChanger, res.Err))
		return
	}

	images, err := ls.newImages(*res)
	if err != nil {
		log.Printf("Warning: could not prepare images: %v", err)
		ls.sceneChanger.ChangeScene(NewErrorScene(ls.sceneChanger, err))
		return
	}
	log.Printf("loaded %d images in %v", len(res.Images), res.Elapsed)
	ls.sceneChanger.ChangeScene(NewParallaxScene(ls.sceneChanger, images))
}

func (ls *LoadingScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from the page background
	screen.Fill(color.Black)

	msg := "Loading" + strings.Repeat(".", (ls.ticks/20)%4)
	if !fonts.Loaded(fonts.Regular) {
		ebitenutil.DebugPrintAt(screen, msg, 8, cfg.C.Height/2)
		return
	}
	face := fonts.Regular.Get()
	bounds := text.BoundString(face, "Loading...")
	x := (cfg.C.Width - bounds.Dx()) / 2
	text.Draw(screen, msg, face, x, cfg.C.Height/2, cfg.HUD.TextColor)
}

func (ls *LoadingScene) configure() {
	go ls.load()
}

func (ls *LoadingScene) load() {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Assets.LoadTimeout)
	defer cancel()

	res := assets.Load(ctx, ls.source, cfg.Assets.Manifest)

	ls.mu.Lock()
	ls.result = &res
	ls.mu.Unlock()
}
