package scenes

import (
	"errors"
	"sync"

	"github.com/automoto/jeep-parallax/assets"
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
)

// ErrorScene reports a failed asset load and waits for a retry.
type ErrorScene struct {
	sceneChanger SceneChanger
	err          error
	lines        []string
	once         sync.Once
}

// NewErrorScene creates a new error scene for err
func NewErrorScene(sc SceneChanger, err error) *ErrorScene {
	return &ErrorScene{sceneChanger: sc, err: err}
}

func (es *ErrorScene) Update() {
	es.once.Do(es.configure)

	binding := cfg.Input.Bindings[cfg.IntentRetry]
	for _, key := range binding.Keys {
		if inpututil.IsKeyJustPressed(key) {
			es.retry()
			return
		}
	}
}

func (es *ErrorScene) Draw(screen *ebiten.Image) {
	es.once.Do(es.configure)
	screen.Fill(cfg.DarkPanel)

	if !fonts.Loaded(fonts.Regular) {
		for i, line := range es.lines {
			ebitenutil.DebugPrintAt(screen, line, 8, 40+i*16)
		}
		return
	}

	face := fonts.Regular.Get()
	lineHeight := face.Metrics().Height.Ceil() + 4
	for i, line := range es.lines {
		clr := cfg.HUD.TextColor
		if i == 0 {
			clr = cfg.HUD.ErrorColor
		}
		text.Draw(screen, line, face, 8, 40+i*lineHeight, clr)
	}
}

func (es *ErrorScene) configure() {
	es.lines = errorLines(es.err, cfg.C.Width/7)
}

func (es *ErrorScene) retry() {
	es.sceneChanger.ChangeScene(NewLoadingScene(es.sceneChanger))
}

// errorLines builds the message shown to the player, wrapping the error text
// at width runes.
func errorLines(err error, width int) []string {
	title := "Could not load images"
	if errors.Is(err, assets.ErrTimeout) {
		title = "Loading images timed out"
	}

	lines := []string{title, ""}
	var le *assets.LoadError
	if errors.As(err, &le) {
		lines = append(lines, "Failed: "+string(le.Name))
	}
	if err != nil {
		lines = append(lines, wrap(err.Error(), width)...)
	}
	return append(lines, "", "Press Enter to retry")
}

func wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var lines []string
	r := []rune(s)
	for len(r) > width {
		cut := width
		for i := width; i > width/2; i-- {
			if r[i] == ' ' {
				cut = i
				break
			}
		}
		lines = append(lines, string(r[:cut]))
		r = r[cut:]
		if len(r) > 0 && r[0] == ' ' {
			r = r[1:]
		}
	}
	return append(lines, string(r))
}
