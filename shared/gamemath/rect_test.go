package gamemath

import "testing"

func TestPointInRect(t *testing.T) {
	const x, y, w, h = 100.0, 210.0, 155.0, 60.0
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"top-left corner", x, y, true},
		{"bottom-right corner", x + w, y + h, true},
		{"center", x + w/2, y + h/2, true},
		{"left of box", x - 1, y + 10, false},
		{"right of box", x + w + 1, y + 10, false},
		{"above box", x + 10, y - 1, false},
		{"below box", x + 10, y + h + 1, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInRect(tc.px, tc.py, x, y, w, h); got != tc.want {
				t.Fatalf("PointInRect(%v, %v) = %v, want %v", tc.px, tc.py, got, tc.want)
			}
		})
	}
}

func TestSpanOverlaps(t *testing.T) {
	if !SpanOverlaps(-5, 5, 400) {
		t.Fatal("span straddling the left edge should overlap")
	}
	if SpanOverlaps(401, 420, 400) {
		t.Fatal("span past the right edge should not overlap")
	}
	if SpanOverlaps(-20, -1, 400) {
		t.Fatal("span before the left edge should not overlap")
	}
}
