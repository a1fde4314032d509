package photogrammetry

import "math"

// ComputeAreaOfView models the seafloor visible in one oblique frame as a
// trapezoid: BD is the near (bottom) edge, AE the far edge, GF the distance
// between them. Delta is the angle from the nadir ray to the bottom edge of
// frame; proportion selects how far up the frame the far edge of the measured
// strip sits (1 = top edge of frame). Increasing proportion moves the far
// edge toward the horizon.
//
// When Theta = Delta + Alpha*Proportion reaches pi/2 the far edge crosses the
// horizon and the cosine denominator vanishes; the non-finite (or negative)
// lengths are returned as computed, with a warning attached. Callers are
// expected to inspect results for finiteness.
func ComputeAreaOfView(height, tiltAngleDeg, vfovDeg, hfovDeg, proportion float64) AreaOfViewResult {
	alpha := Degrees2Rad(vfovDeg)
	beta := Degrees2Rad(hfovDeg)
	tilt := Degrees2Rad(tiltAngleDeg)

	delta := math.Pi - (math.Pi/2 + tilt + alpha/2)
	theta := delta + alpha*proportion

	res := AreaOfViewResult{
		Height:     height,
		TiltAngle:  tiltAngleDeg,
		Proportion: proportion,
		Alpha:      alpha,
		Beta:       beta,
		Delta:      delta,
		Theta:      theta,
	}
	if theta >= math.Pi/2 {
		res.Warnings = append(res.Warnings, "measured edge lies at or beyond the horizon")
	}

	res.LengthAE = 2 * math.Tan(beta/2) * height / math.Cos(theta)
	res.LengthBD = 2 * math.Tan(beta/2) * height / math.Cos(delta)
	res.LengthGF = height * (math.Tan(theta) - math.Tan(delta))
	res.AreaS = (res.LengthAE + res.LengthBD) * res.LengthGF / 2
	return res
}

// ComputeImageWidthAtPosition returns the real-world width of the image at a
// given row fraction (0 = bottom edge, 1 = top edge). Same formula and code
// path as the far edge of ComputeAreaOfView.
func ComputeImageWidthAtPosition(height, tiltAngleDeg, vfovDeg, hfovDeg, position float64) float64 {
	return ComputeAreaOfView(height, tiltAngleDeg, vfovDeg, hfovDeg, position).LengthAE
}
