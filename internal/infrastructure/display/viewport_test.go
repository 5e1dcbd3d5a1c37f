package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		winW, winH int
		srcW, srcH int
		expected   Viewport
	}{
		{
			name: "window taller than target aspect adds letterbox bars",
			winW: 640, winH: 480,
			srcW: 320, srcH: 180,
			expected: Viewport{X: 0, Y: 60, Width: 640, Height: 360, Scale: 2.0},
		},
		{
			name: "small window scales down, width fits exactly",
			winW: 100, winH: 100,
			srcW: 320, srcH: 180,
			expected: Viewport{X: 0, Y: 22, Width: 100, Height: 56, Scale: 0.3125},
		},
		{
			name: "window matches target exactly",
			winW: 320, winH: 180,
			srcW: 320, srcH: 180,
			expected: Viewport{X: 0, Y: 0, Width: 320, Height: 180, Scale: 1.0},
		},
		{
			name: "window wider than target aspect adds pillarbox bars",
			winW: 800, winH: 180,
			srcW: 320, srcH: 180,
			expected: Viewport{X: 240, Y: 0, Width: 320, Height: 180, Scale: 1.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Fit(tt.winW, tt.winH, tt.srcW, tt.srcH))
		})
	}
}

func TestFit_ClampsDegenerateWindow(t *testing.T) {
	assert.NotPanics(t, func() {
		vp := Fit(0, 0, 320, 180)
		assert.GreaterOrEqual(t, vp.Scale, 0.0)
		assert.GreaterOrEqual(t, vp.Width, 0)
		assert.GreaterOrEqual(t, vp.Height, 0)
	})

	vp := Fit(-5, 10, 320, 180)
	assert.GreaterOrEqual(t, vp.X, 0)
	assert.GreaterOrEqual(t, vp.Y, 0)
}

func TestFit_NeverExceedsWindow(t *testing.T) {
	for _, dims := range [][4]int{
		{640, 480, 320, 180},
		{100, 100, 320, 180},
		{1, 1, 320, 180},
		{1920, 1080, 320, 180},
		{333, 777, 640, 360},
	} {
		vp := Fit(dims[0], dims[1], dims[2], dims[3])
		assert.LessOrEqual(t, vp.X+vp.Width, max(dims[0], 1))
		assert.LessOrEqual(t, vp.Y+vp.Height, max(dims[1], 1))
	}
}
