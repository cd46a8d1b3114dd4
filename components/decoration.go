package components

import (
	"math"

	"github.com/automoto/jeep-parallax/shared/gamemath"
	"github.com/yohamta/donburi"
)

// DecorationData is an ornamental outline drifting against the scroll
// direction. It takes no part in hit-testing.
type DecorationData struct {
	X, Y        float64
	Step        float64
	Scale       float64
	Points      [][2]float64 // Closed outline in local space
	StrokeWidth float64
	Wrap        bool
}

// Bounds returns the on-screen box of the scaled outline including its stroke.
func (d *DecorationData) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range d.Points {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	if len(d.Points) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}
	pad := d.StrokeWidth / 2
	minX = d.X + (minX-pad)*d.Scale
	minY = d.Y + (minY-pad)*d.Scale
	maxX = d.X + (maxX+pad)*d.Scale
	maxY = d.Y + (maxY+pad)*d.Scale
	return
}

// DriftLeft moves the decoration right, opposite to a left scroll.
func (d *DecorationData) DriftLeft(width float64) {
	d.X += d.Step
	if !d.Wrap {
		return
	}
	if minX, _, maxX, _ := d.Bounds(); minX > width {
		d.X -= maxX
	}
}

// DriftRight moves the decoration left, opposite to a right scroll.
func (d *DecorationData) DriftRight(width float64) {
	d.X -= d.Step
	if !d.Wrap {
		return
	}
	if minX, _, maxX, _ := d.Bounds(); maxX < 0 {
		d.X += width - minX
	}
}

// Visible reports whether any part of the decoration is over [0, width].
func (d *DecorationData) Visible(width float64) bool {
	minX, _, maxX, _ := d.Bounds()
	return gamemath.SpanOverlaps(minX, maxX, width)
}

var Decoration = donburi.NewComponentType[DecorationData]()
