package archetypes

import (
	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Layer = newArchetype(
		tags.Layer,
		components.Layer,
	)
	Jeep = newArchetype(
		tags.Jeep,
		components.Jeep,
		components.Jump,
		components.Object,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Decoration,
		components.Object,
	)
	Banner = newArchetype(
		tags.Banner,
		components.Banner,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
