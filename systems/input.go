package systems

import (
	"image"

	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	touchIDs   []ebiten.TouchID
	keyIntents []cfg.IntentID
)

// UpdateInput turns this frame's keyboard, mouse and touch events into intents.
// Must run BEFORE UpdateJump in the system order.
func UpdateInput(e *ecs.ECS) {
	keyIntents = firedIntents(keyIntents[:0], inpututil.KeyPressDuration)
	for _, intent := range keyIntents {
		ApplyIntent(e, intent)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		HandlePointer(e, components.PointerMouse, x, y)
	}

	// Only the first new touch counts, like a touchstart's touches[0].
	touchIDs = inpututil.AppendJustPressedTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		HandlePointer(e, components.PointerTouch, x, y)
	}
}

// firedIntents appends the intents whose bound keys fire this tick, in
// IntentID order, given how long each key has been held.
func firedIntents(dst []cfg.IntentID, pressDuration func(ebiten.Key) int) []cfg.IntentID {
	for intent := cfg.IntentNone; intent < cfg.IntentCount; intent++ {
		binding, ok := cfg.Input.Bindings[intent]
		if !ok {
			continue
		}
		for _, key := range binding.Keys {
			if shouldFire(pressDuration(key), binding.Repeat) {
				dst = append(dst, intent)
			}
		}
	}
	return dst
}

// shouldFire decides whether a key held for duration ticks emits its intent
// this tick: once on the press, then every RepeatInterval ticks after
// RepeatDelay when the binding repeats.
func shouldFire(duration int, repeat bool) bool {
	if duration <= 0 {
		return false
	}
	if duration == 1 {
		return true
	}
	if !repeat {
		return false
	}
	delay, interval := cfg.Input.RepeatDelay, cfg.Input.RepeatInterval
	if interval <= 0 || duration < delay {
		return false
	}
	return (duration-delay)%interval == 0
}

// SurfaceRect is the scene surface in window coordinates.
func SurfaceRect() image.Rectangle {
	return image.Rect(0, 0, cfg.C.Width, cfg.C.Height)
}

// HandlePointer hit-tests a press at window coordinates (x, y) against the
// jeep. Presses outside the scene surface are ignored. It reports whether the
// press landed on the jeep and requested a jump.
func HandlePointer(e *ecs.ECS, src components.PointerSource, x, y int) bool {
	surface := SurfaceRect()
	p := image.Pt(x, y)
	if !p.In(surface) {
		return false
	}
	local := p.Sub(surface.Min)
	px, py := float64(local.X), float64(local.Y)

	hit := false
	components.Jeep.Each(e.World, func(entry *donburi.Entry) {
		if components.Jeep.Get(entry).Contains(px, py) {
			hit = true
		}
	})

	input := getOrCreateInput(e)
	input.PointerSource = src
	input.PointerX, input.PointerY = px, py
	input.PointerHit = hit

	if hit {
		ApplyIntent(e, cfg.IntentJump)
	}
	return hit
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetInput exposes the input record for overlays and scenes.
func GetInput(e *ecs.ECS) *components.InputData {
	return getOrCreateInput(e)
}
