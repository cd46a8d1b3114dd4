package systems

import (
	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(ent, components.SettingsData{
			Debug: cfg.Debug.Enabled,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// ToggleDebug shows or hides the debug overlay.
func ToggleDebug(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	settings.Debug = !settings.Debug
}
