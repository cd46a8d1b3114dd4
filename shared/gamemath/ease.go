package gamemath

// EaseInOutQuad is Robert Penner's quadratic ease-in/ease-out.
//
// t is the elapsed time, b the beginning value, c the total change and d the
// duration. The curve accelerates over the first half of d and decelerates
// over the second half, so EaseInOutQuad(0, b, c, d) == b and
// EaseInOutQuad(d, b, c, d) == b+c. d must not be zero.
//
// The signature matches gween's ease.TweenFunc so it can drive a gween.Tween.
func EaseInOutQuad(t, b, c, d float32) float32 {
	t /= d / 2
	if t < 1 {
		return c/2*t*t + b
	}
	t--
	return -c/2*(t*(t-2)-1) + b
}
