package components

import "testing"

func newTestJeep() *JeepData {
	return &JeepData{X: 100, Y: 210, BaseY: 210, Slices: 3, SliceWidth: 155, Height: 60}
}

func TestJeepSliceOffsets(t *testing.T) {
	j := newTestJeep()
	want := []float64{155, 310, 0, 155}
	for i, w := range want {
		j.NextSlice()
		if got := j.SliceX(); got != w {
			t.Fatalf("after %d NextSlice, SliceX = %v, want %v", i+1, got, w)
		}
	}
	j.Slice = 0
	j.PrevSlice()
	if got := j.SliceX(); got != 310 {
		t.Fatalf("PrevSlice from 0 gave SliceX %v, want 310", got)
	}
}

func TestJeepContains(t *testing.T) {
	j := newTestJeep()
	if !j.Contains(100, 210) {
		t.Fatal("top-left corner should hit")
	}
	misses := [][2]float64{
		{99, 230},
		{256, 230},
		{150, 209},
		{150, 271},
	}
	for _, p := range misses {
		if j.Contains(p[0], p[1]) {
			t.Fatalf("point %v should miss", p)
		}
	}
}
