package components

import (
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/yohamta/donburi"
)

// PointerSource identifies the device behind the last pointer press.
type PointerSource int

const (
	PointerNone PointerSource = iota
	PointerMouse
	PointerTouch
)

func (p PointerSource) String() string {
	switch p {
	case PointerMouse:
		return "mouse"
	case PointerTouch:
		return "touch"
	}
	return "none"
}

// InputData records what input did most recently. Intents themselves are not
// queued: every event applies its intent immediately.
type InputData struct {
	LastIntent    cfg.IntentID
	IntentCount   [cfg.IntentCount]int // Times each intent fired since the scene started
	PointerSource PointerSource
	PointerX      float64 // Surface-local
	PointerY      float64
	PointerHit    bool // Last press landed on the jeep
}

var Input = donburi.NewComponentType[InputData]()
