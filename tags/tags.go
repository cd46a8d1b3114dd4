package tags

import "github.com/yohamta/donburi"

var (
	Jeep       = donburi.NewTag().SetName("Jeep")
	Layer      = donburi.NewTag().SetName("Layer")
	Decoration = donburi.NewTag().SetName("Decoration")
	Banner     = donburi.NewTag().SetName("Banner")
)

// Resolv tags for bounding boxes
const (
	ResolvJeep       = "jeep"
	ResolvDecoration = "decoration"
)
