package ui

import (
	"bytes"
	"image/color"
	"log"

	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// ButtonBar is the strip of on-screen controls drawn below the scene surface.
type ButtonBar struct {
	UI *ebitenui.UI

	// OnPress receives the intent of a clicked button
	OnPress func(cfg.IntentID)

	buttons []*widget.Button
	face    text.Face
}

// NewButtonBar creates one button per entry, left to right.
func NewButtonBar(buttons []cfg.ButtonConfig, onPress func(cfg.IntentID)) *ButtonBar {
	bar := &ButtonBar{OnPress: onPress}

	if w := BarWidth(cfg.ButtonBar, len(buttons)); w > cfg.C.Width {
		log.Printf("Warning: button bar is %dpx wide, wider than the %dpx surface", w, cfg.C.Width)
	}

	bar.loadFonts()
	bar.buildUI(buttons)
	return bar
}

// BarWidth is the minimum width of a bar holding n buttons.
func BarWidth(c cfg.ButtonBarConfig, n int) int {
	if n == 0 {
		return 2 * c.Padding
	}
	return 2*c.Padding + n*c.MinWidth + (n-1)*c.Spacing
}

func (bar *ButtonBar) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}
	bar.face = &text.GoTextFace{Source: fontSource, Size: 12}
}

func (bar *ButtonBar) buildUI(buttons []cfg.ButtonConfig) {
	// The root spans the whole window but has no background, so the scene
	// above the bar stays visible.
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	row := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.DarkPanel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(cfg.ButtonBar.Padding)),
			widget.RowLayoutOpts.Spacing(cfg.ButtonBar.Spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	buttonHeight := cfg.ButtonBar.Height - 2*cfg.ButtonBar.Padding
	for _, b := range buttons {
		intent := b.Intent
		btn := widget.NewButton(
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(cfg.ButtonBar.MinWidth, buttonHeight),
			),
			widget.ButtonOpts.Image(bar.buttonImage()),
			widget.ButtonOpts.Text(b.Label, &bar.face, &widget.ButtonTextColor{
				Idle:    cfg.White,
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				bar.press(intent)
			}),
		)
		bar.buttons = append(bar.buttons, btn)
		row.AddChild(btn)
	}

	rootContainer.AddChild(row)

	bar.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (bar *ButtonBar) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(cfg.ButtonIdle)
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (bar *ButtonBar) press(intent cfg.IntentID) {
	if bar.OnPress != nil {
		bar.OnPress(intent)
	}
}

// Update processes clicks on the bar.
func (bar *ButtonBar) Update() {
	bar.UI.Update()
}

// Draw renders the bar.
func (bar *ButtonBar) Draw(screen *ebiten.Image) {
	bar.UI.Draw(screen)
}
