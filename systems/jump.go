package systems

import (
	"log"

	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/systems/factory"
	"github.com/automoto/jeep-parallax/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateJump starts a requested jump and advances an active one by a tick.
// A request that arrives mid-jump restarts the tween when cfg.Jump.AllowRetrigger
// is set and is dropped otherwise.
func UpdateJump(e *ecs.ECS) {
	started := false
	tags.Jeep.Each(e.World, func(entry *donburi.Entry) {
		jeep := components.Jeep.Get(entry)
		jump := components.Jump.Get(entry)

		if jeep.JumpRequested {
			jeep.JumpRequested = false
			if !jump.Active || cfg.Jump.AllowRetrigger {
				jump.Start(jeep.BaseY, cfg.Jump.Height, cfg.Jump.DurationTicks)
				started = true
			}
		}

		if jump.Active {
			jeep.Y, _ = jump.Advance()
		}
	})

	if started {
		onJumpStarted(e)
	}
}

func onJumpStarted(e *ecs.ECS) {
	if cfg.Debug.LogJumps && GetOrCreateSettings(e).Debug {
		log.Println("jump")
	}
	if cfg.Jump.BannerText != "" {
		factory.CreateBanner(e, cfg.Jump.BannerText, cfg.Jump.BannerTicks)
	}
}
