package display

import "math"

// Viewport describes where the internal target lands inside the window:
// a uniformly scaled rectangle centered with black bars on the sides
// that do not fit.
type Viewport struct {
	X      int
	Y      int
	Width  int
	Height int
	Scale  float64
}

// Fit computes the viewport for drawing a srcW x srcH target into a
// winW x winH window. The scale is the largest uniform factor that
// keeps the whole target visible, so the aspect ratio is never
// distorted. Window dimensions are clamped to at least 1 px so a
// minimized or degenerate window cannot divide by zero.
func Fit(winW, winH, srcW, srcH int) Viewport {
	if winW < 1 {
		winW = 1
	}
	if winH < 1 {
		winH = 1
	}

	scale := math.Min(float64(winW)/float64(srcW), float64(winH)/float64(srcH))
	scaledW := int(float64(srcW) * scale)
	scaledH := int(float64(srcH) * scale)

	return Viewport{
		X:      (winW - scaledW) / 2,
		Y:      (winH - scaledH) / 2,
		Width:  scaledW,
		Height: scaledH,
		Scale:  scale,
	}
}
