package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/systems"
	"github.com/automoto/jeep-parallax/systems/factory"
	"github.com/automoto/jeep-parallax/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ParallaxScene is the running scene: two looping layers, the jeep, the
// drifting decoration and the button bar.
type ParallaxScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	images       systems.ImageSource
	buttons      *ui.ButtonBar
	once         sync.Once
}

// NewParallaxScene creates the scene over already loaded images.
func NewParallaxScene(sc SceneChanger, images systems.ImageSource) *ParallaxScene {
	return &ParallaxScene{sceneChanger: sc, images: images}
}

func (ps *ParallaxScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	ps.buttons.Update()
}

func (ps *ParallaxScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from the page background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	ps.buttons.Draw(screen)
}

func (ps *ParallaxScene) configure() {
	ps.ecs = newParallaxWorld(ps.images)
	ps.buttons = ui.NewButtonBar(cfg.ButtonBar.Buttons, func(intent cfg.IntentID) {
		systems.ApplyIntent(ps.ecs, intent)
	})
}

// newParallaxWorld builds the scene entities and registers systems in the
// order input, jump, objects, banners.
func newParallaxWorld(images systems.ImageSource) *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateJump)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateBanners)

	// Back to front
	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.NewDrawLayers(images))
	e.AddRenderer(cfg.Default, systems.NewDrawJeep(images))
	e.AddRenderer(cfg.Default, systems.DrawDecoration)
	e.AddRenderer(cfg.Default, systems.DrawBanners)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	spaceEntry := factory.CreateSpace(e, cfg.C.Width, cfg.C.Height, 16, 16)
	factory.CreateLayer(e, cfg.Sky, 0)
	factory.CreateLayer(e, cfg.Mountains, 1)
	jeep := factory.CreateJeep(e, cfg.Jeep.X, cfg.Jeep.Y)
	decoration := factory.CreateDecoration(e, cfg.Decoration)
	systems.GetOrCreateSettings(e)

	space := components.Space.Get(spaceEntry)
	space.Add(components.Object.Get(jeep).Object, components.Object.Get(decoration).Object)

	return e
}
