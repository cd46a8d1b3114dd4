package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// BannerData is a short text flash that fades out over a tween.
type BannerData struct {
	Text  string
	Alpha float64
	Done  bool
	Fade  *gween.Tween
}

var Banner = donburi.NewComponentType[BannerData]()
