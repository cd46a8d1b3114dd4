package gamemath

// PointInRect reports whether (px, py) lies inside the rectangle at (x, y)
// with size w x h. All four edges count as inside.
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}

// SpanOverlaps reports whether [min, max] intersects [0, limit].
func SpanOverlaps(min, max, limit float64) bool {
	return max >= 0 && min <= limit
}
