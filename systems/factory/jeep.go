package factory

import (
	"github.com/automoto/jeep-parallax/archetypes"
	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateJeep(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	jeep := archetypes.Jeep.Spawn(ecs)

	sliceWidth := cfg.Jeep.SliceWidth()
	obj := resolv.NewObject(x, y, sliceWidth, cfg.Jeep.Height)
	obj.AddTags(tags.ResolvJeep)
	obj.Data = jeep
	components.Object.SetValue(jeep, components.ObjectData{Object: obj})

	components.Jeep.SetValue(jeep, components.JeepData{
		X:          x,
		Y:          y,
		BaseY:      y,
		Slices:     cfg.Jeep.Slices,
		SliceWidth: sliceWidth,
		Height:     cfg.Jeep.Height,
		Asset:      cfg.AssetJeep,
	})

	return jeep
}
