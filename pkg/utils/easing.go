// Package utils provides small shared helpers: easing curves, pointer
// input state and text utilities.
package utils

import "math"

// Easing functions map a progress value t in [0, 1] to an eased value in
// [0, 1]. Reference: https://easings.net/

// EaseLinear returns t unchanged (constant speed).
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutCubic starts fast and ends slow. Used for trains gliding into
// their slot.
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInCubic starts slow and ends fast.
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseInOutCubic is slow at both ends and fast in the middle.
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseOutQuad starts fast and ends slow, softer than EaseOutCubic.
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// Lerp interpolates between a and b: t=0 returns a, t=1 returns b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
