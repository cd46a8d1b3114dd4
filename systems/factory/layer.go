package factory

import (
	"github.com/automoto/jeep-parallax/archetypes"
	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLayer creates a looping background layer. Layers draw in ascending depth.
func CreateLayer(ecs *ecs.ECS, layer cfg.LayerConfig, depth int) *donburi.Entry {
	entry := archetypes.Layer.Spawn(ecs)

	components.Layer.SetValue(entry, components.LayerData{
		Name:  layer.Name,
		Asset: layer.Asset,
		Depth: depth,
		Step:  layer.Step,
		Max:   layer.Max,
	})

	return entry
}
