package components

import "testing"

func newTestDecoration(wrap bool) *DecorationData {
	return &DecorationData{
		X:           410,
		Y:           280,
		Step:        2,
		Scale:       0.5,
		Points:      [][2]float64{{0, 0}, {-15, 25}, {15, 25}},
		StrokeWidth: 5,
		Wrap:        wrap,
	}
}

func TestDecorationStartsOffScreen(t *testing.T) {
	d := newTestDecoration(true)
	if d.Visible(400) {
		t.Fatal("decoration should start past the right edge")
	}
	d.DriftRight(400)
	if !d.Visible(400) {
		t.Fatal("decoration should enter after one right move")
	}
}

func TestDecorationWrapStaysBounded(t *testing.T) {
	d := newTestDecoration(true)
	for i := 0; i < 2000; i++ {
		d.DriftLeft(400)
		if d.X < -20 || d.X > 430 {
			t.Fatalf("x = %v escaped after %d left drifts", d.X, i+1)
		}
	}
	for i := 0; i < 2000; i++ {
		d.DriftRight(400)
		if d.X < -20 || d.X > 430 {
			t.Fatalf("x = %v escaped after %d right drifts", d.X, i+1)
		}
	}
}

func TestDecorationDriftsWithoutWrap(t *testing.T) {
	d := newTestDecoration(false)
	for i := 0; i < 100; i++ {
		d.DriftLeft(400)
	}
	if d.X != 610 {
		t.Fatalf("x = %v, want 610", d.X)
	}
	if d.Visible(400) {
		t.Fatal("unwrapped decoration far off screen should not be visible")
	}
}
