package systems

import (
	"github.com/automoto/jeep-parallax/components"
	"github.com/automoto/jeep-parallax/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves each bounding box to where its entity currently is.
func UpdateObjects(e *ecs.ECS) {
	tags.Jeep.Each(e.World, func(entry *donburi.Entry) {
		jeep := components.Jeep.Get(entry)
		obj := components.Object.Get(entry)
		obj.X, obj.Y = jeep.X, jeep.Y
		obj.W, obj.H = jeep.SliceWidth, jeep.Height
		obj.Update()
	})

	tags.Decoration.Each(e.World, func(entry *donburi.Entry) {
		minX, minY, maxX, maxY := components.Decoration.Get(entry).Bounds()
		obj := components.Object.Get(entry)
		obj.X, obj.Y = minX, minY
		obj.W, obj.H = maxX-minX, maxY-minY
		obj.Update()
	})
}
