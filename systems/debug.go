package systems

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/jeep-parallax/components"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			var c color.Color = cfg.Debug.SurfaceColor
			if obj.HasTags(tags.ResolvJeep) {
				c = cfg.Debug.JeepColor
			} else if obj.HasTags(tags.ResolvDecoration) {
				c = cfg.Debug.DecorColor
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	ebitenutil.DebugPrintAt(screen, debugText(e), 4, 4)
}

// debugText summarizes the scene state, one fact per line.
func debugText(e *ecs.ECS) string {
	var b strings.Builder
	fmt.Fprintf(&b, "TPS %.0f FPS %.0f\n", ebiten.ActualTPS(), ebiten.ActualFPS())

	components.Layer.Each(e.World, func(entry *donburi.Entry) {
		l := components.Layer.Get(entry)
		fmt.Fprintf(&b, "%s x=%.0f/%.0f\n", l.Name, l.Offset, l.Max)
	})
	tags.Jeep.Each(e.World, func(entry *donburi.Entry) {
		j := components.Jeep.Get(entry)
		jump := components.Jump.Get(entry)
		fmt.Fprintf(&b, "jeep (%.0f,%.0f) slice=%d\n", j.X, j.Y, j.Slice)
		if jump.Active {
			fmt.Fprintf(&b, "jump %d/%d\n", jump.Elapsed, jump.Duration)
		}
	})
	components.Decoration.Each(e.World, func(entry *donburi.Entry) {
		d := components.Decoration.Get(entry)
		fmt.Fprintf(&b, "decor x=%.0f visible=%v\n", d.X, d.Visible(float64(cfg.C.Width)))
	})

	input := getOrCreateInput(e)
	fmt.Fprintf(&b, "intent %s\n", input.LastIntent)
	if input.PointerSource != components.PointerNone {
		fmt.Fprintf(&b, "%s (%.0f,%.0f) hit=%v\n", input.PointerSource, input.PointerX, input.PointerY, input.PointerHit)
	}
	return b.String()
}
