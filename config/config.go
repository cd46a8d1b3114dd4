package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// LayerConfig describes one horizontally looping background layer.
type LayerConfig struct {
	Name  string
	Asset AssetName
	Step  float64 // Offset change per horizontal move
	Max   float64 // Offset the layer wraps to when scrolling left past zero
}

// JeepConfig contains the sprite sheet geometry and start position of the jeep.
type JeepConfig struct {
	X, Y         float64
	SheetWidth   float64 // Width of the whole sprite sheet in pixels
	Height       float64
	Slices       int     // Frames laid out side by side in the sheet
	VerticalStep float64 // Pixels moved per up/down input event
}

// SliceWidth is the width of one frame of the sprite sheet.
func (j JeepConfig) SliceWidth() float64 {
	return j.SheetWidth / float64(j.Slices)
}

// JumpConfig contains the jump tween parameters.
type JumpConfig struct {
	Height        float64 // Pixels above the base line where the tween begins
	DurationTicks int
	// AllowRetrigger restarts an active jump from the top; when false the request is dropped.
	AllowRetrigger bool
	BannerText     string
	BannerTicks    int // Frames the banner takes to fade out
}

// DecorationConfig contains the ornamental triangle that drifts against the scroll.
type DecorationConfig struct {
	X, Y        float64
	Step        float64
	Scale       float64
	Points      [][2]float64 // Closed outline in local space, before scaling
	StrokeWidth float64
	StrokeColor color.RGBA
	FillColor   color.RGBA
	Wrap        bool // Re-enter from the opposite edge once fully off screen
}

// ButtonConfig describes one on-screen control.
type ButtonConfig struct {
	Label  string
	Intent IntentID
}

// ButtonBarConfig contains the on-screen control strip below the scene.
type ButtonBarConfig struct {
	Height   int
	Spacing  int
	Padding  int
	MinWidth int
	Buttons  []ButtonConfig
}

// AssetConfig contains image loading configuration.
type AssetConfig struct {
	Manifest    []AssetSpec
	LoadTimeout time.Duration
	// BaseURL, when set, fetches images over HTTP instead of the embedded files.
	BaseURL string
}

// BackgroundConfig contains the colors of the rectangle painted behind the layers.
type BackgroundConfig struct {
	FillColor   color.RGBA
	StrokeColor color.RGBA
}

// HUDConfig contains text overlay configuration.
type HUDConfig struct {
	BannerColor color.RGBA
	BannerY     int
	ErrorColor  color.RGBA
	TextColor   color.RGBA
}

// DebugConfig contains debug overlay options.
type DebugConfig struct {
	Enabled      bool // Overlay visible at start
	JeepColor    color.RGBA
	DecorColor   color.RGBA
	LogJumps     bool
	SurfaceColor color.RGBA
}

// Config holds the drawing surface geometry.
type Config struct {
	Width  int
	Height int
	// MountID is the DOM element the browser build mounts the canvas into.
	MountID string
}

// WindowHeight is the full window height: the scene surface plus the button bar.
func (c *Config) WindowHeight() int {
	return c.Height + ButtonBar.Height
}

// Global configuration instances
var C *Config
var Sky LayerConfig
var Mountains LayerConfig
var Jeep JeepConfig
var Jump JumpConfig
var Decoration DecorationConfig
var ButtonBar ButtonBarConfig
var Assets AssetConfig
var Background BackgroundConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Grey       = color.RGBA{R: 102, G: 102, B: 102, A: 255}
	Amber      = color.RGBA{R: 255, G: 204, B: 0, A: 255}
	LightRed   = color.RGBA{R: 255, G: 100, B: 100, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Magenta    = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DarkPanel  = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	ButtonIdle = color.RGBA{R: 60, G: 60, B: 80, A: 255}
)

func init() {
	C = &Config{
		Width:   400,
		Height:  300,
		MountID: "game",
	}

	Sky = LayerConfig{
		Name:  "sky",
		Asset: AssetSky,
		Step:  2,
		Max:   float64(C.Width),
	}

	Mountains = LayerConfig{
		Name:  "mountains",
		Asset: AssetMountains,
		Step:  10,
		Max:   398,
	}

	Jeep = JeepConfig{
		X:            100,
		Y:            210,
		SheetWidth:   465,
		Height:       60,
		Slices:       3,
		VerticalStep: 10,
	}

	Jump = JumpConfig{
		Height:         50,
		DurationTicks:  30,
		AllowRetrigger: true,
		BannerText:     "JUMP!",
		BannerTicks:    45,
	}

	Decoration = DecorationConfig{
		X:     float64(C.Width) + 10,
		Y:     float64(C.Height) - 20,
		Step:  2,
		Scale: 0.5,
		Points: [][2]float64{
			{0, 0},
			{-15, 25},
			{15, 25},
		},
		StrokeWidth: 5,
		StrokeColor: Grey,
		FillColor:   Amber,
		Wrap:        true,
	}

	ButtonBar = ButtonBarConfig{
		Height:   36,
		Spacing:  6,
		Padding:  6,
		MinWidth: 80,
		Buttons: []ButtonConfig{
			{Label: "<< LEFT", Intent: IntentMoveLeft},
			{Label: "^ UP", Intent: IntentMoveUp},
			{Label: "v DOWN", Intent: IntentMoveDown},
			{Label: ">> RIGHT", Intent: IntentMoveRight},
		},
	}

	Assets = AssetConfig{
		Manifest: []AssetSpec{
			{Name: AssetSky, Path: "images/sky.png"},
			{Name: AssetMountains, Path: "images/mountains.png"},
			{Name: AssetJeep, Path: "images/jeep.png"},
		},
		LoadTimeout: 10 * time.Second,
	}

	Background = BackgroundConfig{
		FillColor:   Black,
		StrokeColor: Black,
	}

	HUD = HUDConfig{
		BannerColor: Amber,
		BannerY:     40,
		ErrorColor:  LightRed,
		TextColor:   White,
	}

	Debug = DebugConfig{
		Enabled:      false,
		JeepColor:    Cyan,
		DecorColor:   Magenta,
		LogJumps:     true,
		SurfaceColor: White,
	}
}
