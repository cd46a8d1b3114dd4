package config

import "github.com/hajimehoshi/ebiten/v2"

// IntentID represents a logical scene action, independent of the device that produced it.
type IntentID int

const (
	IntentNone IntentID = iota
	IntentMoveLeft
	IntentMoveRight
	IntentMoveUp
	IntentMoveDown
	IntentJump
	IntentToggleDebug
	IntentRetry
	IntentCount // Must be last - used for array sizing
)

var intentNames = [IntentCount]string{
	IntentNone:        "none",
	IntentMoveLeft:    "move-left",
	IntentMoveRight:   "move-right",
	IntentMoveUp:      "move-up",
	IntentMoveDown:    "move-down",
	IntentJump:        "jump",
	IntentToggleDebug: "toggle-debug",
	IntentRetry:       "retry",
}

func (i IntentID) String() string {
	if i < 0 || i >= IntentCount {
		return "unknown"
	}
	return intentNames[i]
}

// InputBinding represents the keys bound to an intent
type InputBinding struct {
	Keys []ebiten.Key
	// Repeat re-fires the intent while the key is held, like a host key repeat.
	Repeat bool
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[IntentID]InputBinding
	// Key repeat timing in ticks
	RepeatDelay    int
	RepeatInterval int
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		RepeatDelay:    30,
		RepeatInterval: 3,
		Bindings: map[IntentID]InputBinding{
			IntentMoveLeft: {
				Keys:   []ebiten.Key{ebiten.KeyArrowLeft},
				Repeat: true,
			},
			IntentMoveRight: {
				Keys:   []ebiten.Key{ebiten.KeyArrowRight},
				Repeat: true,
			},
			IntentMoveUp: {
				Keys:   []ebiten.Key{ebiten.KeyArrowUp},
				Repeat: true,
			},
			IntentMoveDown: {
				Keys:   []ebiten.Key{ebiten.KeyArrowDown},
				Repeat: true,
			},
			IntentToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
			IntentRetry: {
				Keys: []ebiten.Key{ebiten.KeyEnter},
			},
		},
	}
}
