package gamemath

// ScrollLeft moves a looping offset back by step.
// Stepping below zero wraps to max, so offsets that start in [0, max] stay there.
// Landing exactly on zero does not wrap: zero is drawn for one step first.
func ScrollLeft(offset, step, max float64) float64 {
	next := offset - step
	if next < 0 {
		return max
	}
	return next
}

// ScrollRight moves a looping offset forward by step.
// Reaching or passing max wraps to zero.
func ScrollRight(offset, step, max float64) float64 {
	next := offset + step
	if next >= max {
		return 0
	}
	return next
}

// PrevSlice returns the slice before i in a ring of n slices.
func PrevSlice(i, n int) int {
	if i > 0 {
		return i - 1
	}
	return n - 1
}

// NextSlice returns the slice after i in a ring of n slices.
func NextSlice(i, n int) int {
	if i < n-1 {
		return i + 1
	}
	return 0
}
