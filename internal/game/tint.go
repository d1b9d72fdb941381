package game

import "image/color"

// DarknessRatio is the fraction of the grid owned by the designated team.
// It is 0 for an empty grid and clamped to [0,1].
func DarknessRatio(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return clamp(float64(count)/float64(total), 0, 1)
}

// LerpRGB interpolates each channel from start to end and truncates toward
// zero. t is clamped to [0,1]; the result is opaque.
func LerpRGB(start, end color.RGBA, t float64) color.RGBA {
	t = clamp(t, 0, 1)
	ch := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t)
	}
	return color.RGBA{
		R: ch(start.R, end.R),
		G: ch(start.G, end.G),
		B: ch(start.B, end.B),
		A: 255,
	}
}

// Tint maps the captured fraction onto the start→end background gradient.
func Tint(count, total int, start, end color.RGBA) color.RGBA {
	return LerpRGB(start, end, DarknessRatio(count, total))
}
