package components

import (
	cfg "github.com/automoto/jeep-parallax/config"
	"github.com/automoto/jeep-parallax/shared/gamemath"
	"github.com/yohamta/donburi"
)

// JeepData is the controllable sprite. The sheet holds Slices frames side by
// side; Slice selects which one is drawn.
type JeepData struct {
	X, Y       float64
	BaseY      float64 // Where a jump lands
	Slice      int
	Slices     int
	SliceWidth float64
	Height     float64
	Asset      cfg.AssetName

	// JumpRequested is set by input and consumed by the jump system on the next frame.
	JumpRequested bool
}

// SliceX returns the x coordinate of the current frame in the sprite sheet.
func (j *JeepData) SliceX() float64 {
	return float64(j.Slice) * j.SliceWidth
}

func (j *JeepData) PrevSlice() {
	j.Slice = gamemath.PrevSlice(j.Slice, j.Slices)
}

func (j *JeepData) NextSlice() {
	j.Slice = gamemath.NextSlice(j.Slice, j.Slices)
}

// Contains reports whether a surface-local point hits the jeep's current frame.
func (j *JeepData) Contains(px, py float64) bool {
	return gamemath.PointInRect(px, py, j.X, j.Y, j.SliceWidth, j.Height)
}

var Jeep = donburi.NewComponentType[JeepData]()
