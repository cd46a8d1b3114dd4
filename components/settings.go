package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles for a scene.
type SettingsData struct {
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
