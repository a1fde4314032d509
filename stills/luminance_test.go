package stills

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniformImage(c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestMeanLuma(t *testing.T) {
	t.Parallel()

	t.Run("black frame", func(t *testing.T) {
		assert.InDelta(t, 0.0, MeanLuma(uniformImage(color.Black)), 1e-9)
	})

	t.Run("white frame", func(t *testing.T) {
		assert.InDelta(t, 1.0, MeanLuma(uniformImage(color.White)), 1e-3)
	})

	t.Run("mid grey frame", func(t *testing.T) {
		assert.InDelta(t, 0.5, MeanLuma(uniformImage(color.Gray{Y: 128})), 0.01)
	})

	t.Run("empty image", func(t *testing.T) {
		assert.Zero(t, MeanLuma(image.NewRGBA(image.Rect(0, 0, 0, 0))))
	})

	t.Run("dark threshold separates night frames", func(t *testing.T) {
		dark := uniformImage(color.Gray{Y: 10})
		lit := uniformImage(color.Gray{Y: 120})
		assert.Less(t, MeanLuma(dark), DefaultDarkMeanLuma)
		assert.Greater(t, MeanLuma(lit), DefaultDarkMeanLuma)
	})
}
