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

func CreateDecoration(ecs *ecs.ECS, dc cfg.DecorationConfig) *donburi.Entry {
	entry := archetypes.Decoration.Spawn(ecs)

	points := make([][2]float64, len(dc.Points))
	copy(points, dc.Points)
	data := components.DecorationData{
		X:           dc.X,
		Y:           dc.Y,
		Step:        dc.Step,
		Scale:       dc.Scale,
		Points:      points,
		StrokeWidth: dc.StrokeWidth,
		Wrap:        dc.Wrap,
	}
	components.Decoration.SetValue(entry, data)

	minX, minY, maxX, maxY := data.Bounds()
	obj := resolv.NewObject(minX, minY, maxX-minX, maxY-minY)
	obj.AddTags(tags.ResolvDecoration)
	obj.Data = entry
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	return entry
}
