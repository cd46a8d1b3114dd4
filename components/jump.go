package components

import (
	"github.com/automoto/jeep-parallax/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// JumpData is the tween that animates the jeep's y coordinate during a jump.
// Time is counted in ticks.
type JumpData struct {
	Active   bool
	Begin    float64
	End      float64
	Change   float64
	Duration int
	Elapsed  int

	tween *gween.Tween
}

// Start (re)initializes the tween to ease from height pixels above baseY
// down to baseY over duration ticks.
func (j *JumpData) Start(baseY, height float64, duration int) {
	j.Active = true
	j.Begin = baseY - height
	j.End = baseY
	j.Change = j.End - j.Begin
	j.Duration = duration
	j.Elapsed = 0
	j.tween = gween.New(float32(j.Begin), float32(j.End), float32(duration), gamemath.EaseInOutQuad)
}

// Advance returns the y coordinate for the current tick and moves the tween
// one tick forward. The tween deactivates once Elapsed passes Duration, so a
// full jump takes Duration+1 calls and the last one returns End.
func (j *JumpData) Advance() (y float64, active bool) {
	if !j.Active || j.tween == nil {
		return j.End, false
	}
	current, _ := j.tween.Set(float32(j.Elapsed))
	j.Elapsed++
	if j.Elapsed > j.Duration {
		j.Active = false
	}
	return float64(current), j.Active
}

var Jump = donburi.NewComponentType[JumpData]()
