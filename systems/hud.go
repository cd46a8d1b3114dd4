package systems

import (
	"image/color"

	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBanners fades banners by one tick and removes finished ones.
func UpdateBanners(e *ecs.ECS) {
	var finished []donburi.Entity
	components.Banner.Each(e.World, func(entry *donburi.Entry) {
		banner := components.Banner.Get(entry)
		if banner.Fade == nil {
			finished = append(finished, entry.Entity())
			return
		}
		alpha, done := banner.Fade.Update(1)
		banner.Alpha = float64(alpha)
		banner.Done = done
		if done {
			finished = append(finished, entry.Entity())
		}
	})
	for _, ent := range finished {
		e.World.Remove(ent)
	}
}

// DrawBanners renders active banners centered near the top of the surface.
func DrawBanners(e *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Banner) {
		return
	}
	face := fonts.Banner.Get()
	components.Banner.Each(e.World, func(entry *donburi.Entry) {
		banner := components.Banner.Get(entry)
		if banner.Alpha <= 0 {
			return
		}
		bounds := text.BoundString(face, banner.Text)
		x := (cfg.C.Width - bounds.Dx()) / 2
		c := cfg.HUD.BannerColor
		clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float64(c.A) * banner.Alpha)}
		text.Draw(screen, banner.Text, face, x, cfg.HUD.BannerY, clr)
	})
}
