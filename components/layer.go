package components

import (
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/shared/gamemath"
	"github.com/yohamta/donburi"
)

// LayerData is a horizontally looping background layer.
// Offset is the x coordinate of the slice cut from the layer image and always
// stays in [0, Max].
type LayerData struct {
	Name   string
	Asset  cfg.AssetName
	Depth  int // Draw order, back to front
	Offset float64
	Step   float64
	Max    float64
}

func (l *LayerData) ScrollLeft() {
	l.Offset = gamemath.ScrollLeft(l.Offset, l.Step, l.Max)
}

func (l *LayerData) ScrollRight() {
	l.Offset = gamemath.ScrollRight(l.Offset, l.Step, l.Max)
}

var Layer = donburi.NewComponentType[LayerData]()
