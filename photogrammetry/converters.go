package photogrammetry

import "math"

// DefaultRefractiveIndex is the refractive index of seawater used to convert
// an in-air field of view to its in-water equivalent.
const DefaultRefractiveIndex = 1.34

func roundFloat(val float64, precision uint) float64 {
	ratio := math.Pow(10, float64(precision))
	return math.Round(val*ratio) / ratio
}

func Degrees2Rad(deg float64) float64 {
	res := deg * math.Pi / 180
	return roundFloat(res, 10)
}

func Rad2Degrees(rad float64) float64 {
	res := rad * 180 / math.Pi
	return roundFloat(res, 10)
}

// InWaterFOV converts an in-air field of view (degrees) to the angle seen
// behind a flat port underwater, using the Snell's-law approximation
// 2*asin(sin(fov/2)/n). When sin(fov/2)/n exceeds 1 the optical geometry is
// impossible and the result is NaN.
func InWaterFOV(fovDeg float64, refractiveIndex float64) float64 {
	halfIn := math.Sin(Degrees2Rad(fovDeg) / 2)
	return Rad2Degrees(2 * math.Asin(halfIn/refractiveIndex))
}
