package gamemath

import "testing"

func TestScrollLeftWrapsToMax(t *testing.T) {
	if got := ScrollLeft(0, 2, 400); got != 400 {
		t.Fatalf("ScrollLeft(0, 2, 400) = %v, want 400", got)
	}
	if got := ScrollLeft(2, 2, 400); got != 0 {
		t.Fatalf("ScrollLeft(2, 2, 400) = %v, want 0", got)
	}
	if got := ScrollLeft(8, 10, 398); got != 398 {
		t.Fatalf("ScrollLeft(8, 10, 398) = %v, want 398", got)
	}
}

func TestScrollLeftStopsAtZeroBeforeWrapping(t *testing.T) {
	offset := 6.0
	want := []float64{4, 2, 0, 400, 398}
	for i, w := range want {
		offset = ScrollLeft(offset, 2, 400)
		if offset != w {
			t.Fatalf("step %d: offset = %v, want %v", i+1, offset, w)
		}
	}
}

func TestScrollRightWrapsToZero(t *testing.T) {
	if got := ScrollRight(396, 2, 400); got != 398 {
		t.Fatalf("ScrollRight(396, 2, 400) = %v, want 398", got)
	}
	if got := ScrollRight(398, 2, 400); got != 0 {
		t.Fatalf("ScrollRight(398, 2, 400) = %v, want 0", got)
	}
	if got := ScrollRight(390, 10, 398); got != 0 {
		t.Fatalf("ScrollRight(390, 10, 398) = %v, want 0", got)
	}
}

func TestScrollStaysInRange(t *testing.T) {
	layers := []struct {
		name      string
		step, max float64
	}{
		{"sky", 2, 400},
		{"mountains", 10, 398},
		{"odd", 7, 100},
	}
	// A fixed but irregular sequence of directions.
	pattern := []bool{true, true, false, true, false, false, false, true}
	for _, l := range layers {
		offset := 0.0
		for i := 0; i < 5000; i++ {
			if pattern[i%len(pattern)] || i%97 < 40 {
				offset = ScrollLeft(offset, l.step, l.max)
			} else {
				offset = ScrollRight(offset, l.step, l.max)
			}
			if offset < 0 || offset > l.max {
				t.Fatalf("%s: offset %v escaped [0, %v] at step %d", l.name, offset, l.max, i)
			}
		}
	}
}

func TestSliceCycle(t *testing.T) {
	for start := 0; start < 3; start++ {
		i := start
		for n := 0; n < 3; n++ {
			i = NextSlice(i, 3)
			if i < 0 || i > 2 {
				t.Fatalf("NextSlice produced %d", i)
			}
		}
		if i != start {
			t.Fatalf("three NextSlice calls from %d ended at %d", start, i)
		}
		for n := 0; n < 3; n++ {
			i = PrevSlice(i, 3)
			if i < 0 || i > 2 {
				t.Fatalf("PrevSlice produced %d", i)
			}
		}
		if i != start {
			t.Fatalf("three PrevSlice calls from %d ended at %d", start, i)
		}
	}
	if got := PrevSlice(0, 3); got != 2 {
		t.Fatalf("PrevSlice(0, 3) = %d, want 2", got)
	}
	if got := NextSlice(2, 3); got != 0 {
		t.Fatalf("NextSlice(2, 3) = %d, want 0", got)
	}
}
