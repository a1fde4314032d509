package stills

import "image"

// DefaultDarkMeanLuma is the mean-luminance floor below which a frame is
// treated as too dark to annotate.
const DefaultDarkMeanLuma = 0.10

// MeanLuma returns the mean Rec.601 luma of the image, scaled to [0, 1].
func MeanLuma(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
		}
	}
	return sum / float64(bounds.Dx()*bounds.Dy()) / 65535
}
