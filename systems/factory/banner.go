package factory

import (
	"github.com/automoto/jeep-parallax/archetypes"
	"github.com/automoto/jeep-parallax/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateBanner creates a text flash that fades from opaque to invisible over ticks frames.
func CreateBanner(ecs *ecs.ECS, text string, ticks int) *donburi.Entry {
	entry := archetypes.Banner.Spawn(ecs)

	components.Banner.SetValue(entry, components.BannerData{
		Text:  text,
		Alpha: 1,
		Fade:  gween.New(1, 0, float32(ticks), ease.OutQuad),
	})

	return entry
}
