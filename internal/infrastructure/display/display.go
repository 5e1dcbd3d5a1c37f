// Package display owns the window and the fixed-resolution drawing
// target all scenes render into, and scales the target into the window
// with letterboxing each frame.
package display

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Display pairs a resizable window with a fixed internal drawing
// target (the design resolution). The target's size never changes
// after construction; only the window is resized by the user.
type Display struct {
	target *ebiten.Image
	width  int
	height int
}

// New creates the window and the internal drawing target.
//
// The window opens at the design resolution multiplied by windowScale
// and is resizable. icon, when non-nil, becomes the window icon.
// Opening the window is a one-time side effect; if no display or
// graphics context is available the failure surfaces from the run loop
// and is fatal.
func New(title string, width, height, windowScale int, icon image.Image) *Display {
	ebiten.SetWindowSize(width*windowScale, height*windowScale)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if icon != nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	return &Display{
		target: ebiten.NewImage(width, height),
		width:  width,
		height: height,
	}
}

// Target returns the internal drawing target scenes render into.
func (d *Display) Target() *ebiten.Image {
	return d.target
}

// Size returns the design resolution.
func (d *Display) Size() (int, int) {
	return d.width, d.height
}

// Clear fills the internal target with c.
func (d *Display) Clear(c color.Color) {
	d.target.Fill(c)
}

// Present scales the internal target into screen, preserving aspect
// ratio, and centers it with black bars covering the leftover area.
// The resize uses linear filtering for a smooth result. The visible
// buffer swap happens in the backend once the frame ends.
func (d *Display) Present(screen *ebiten.Image) {
	bounds := screen.Bounds()
	vp := Fit(bounds.Dx(), bounds.Dy(), d.width, d.height)

	screen.Fill(color.Black)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(vp.Scale, vp.Scale)
	op.GeoM.Translate(float64(vp.X), float64(vp.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(d.target, op)
}
