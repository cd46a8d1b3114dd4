package systems

import (
	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// intentHandlers maps each logical intent to the procedure it triggers.
// Devices never call these directly; they go through ApplyIntent.
var intentHandlers = map[cfg.IntentID]func(*ecs.ECS){
	cfg.IntentMoveLeft:    MoveLeft,
	cfg.IntentMoveRight:   MoveRight,
	cfg.IntentMoveUp:      MoveUp,
	cfg.IntentMoveDown:    MoveDown,
	cfg.IntentJump:        RequestJump,
	cfg.IntentToggleDebug: ToggleDebug,
}

// ApplyIntent runs the handler bound to intent immediately.
// It returns false when the intent has no handler in a scene world.
func ApplyIntent(e *ecs.ECS, intent cfg.IntentID) bool {
	handler, ok := intentHandlers[intent]
	if !ok {
		return false
	}
	handler(e)

	input := getOrCreateInput(e)
	input.LastIntent = intent
	input.IntentCount[intent]++
	return true
}

// MoveLeft scrolls every layer left, steps the jeep's wheels back and drifts
// the decoration the other way.
func MoveLeft(e *ecs.ECS) {
	components.Layer.Each(e.World, func(entry *donburi.Entry) {
		components.Layer.Get(entry).ScrollLeft()
	})
	components.Jeep.Each(e.World, func(entry *donburi.Entry) {
		components.Jeep.Get(entry).PrevSlice()
	})
	components.Decoration.Each(e.World, func(entry *donburi.Entry) {
		components.Decoration.Get(entry).DriftLeft(float64(cfg.C.Width))
	})
}

// MoveRight is the mirror of MoveLeft.
func MoveRight(e *ecs.ECS) {
	components.Layer.Each(e.World, func(entry *donburi.Entry) {
		components.Layer.Get(entry).ScrollRight()
	})
	components.Jeep.Each(e.World, func(entry *donburi.Entry) {
		components.Jeep.Get(entry).NextSlice()
	})
	components.Decoration.Each(e.World, func(entry *donburi.Entry) {
		components.Decoration.Get(entry).DriftRight(float64(cfg.C.Width))
	})
}

func MoveUp(e *ecs.ECS) {
	tags.Jeep.Each(e.World, func(entry *donburi.Entry) {
		components.Jeep.Get(entry).Y -= cfg.Jeep.VerticalStep
	})
}

func MoveDown(e *ecs.ECS) {
	tags.Jeep.Each(e.World, func(entry *donburi.Entry) {
		components.Jeep.Get(entry).Y += cfg.Jeep.VerticalStep
	})
}

// RequestJump flags the jeep; UpdateJump starts the tween on the next frame.
func RequestJump(e *ecs.ECS) {
	tags.Jeep.Each(e.World, func(entry *donburi.Entry) {
		components.Jeep.Get(entry).JumpRequested = true
	})
}
