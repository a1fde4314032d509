package photogrammetry

import (
	"math"

	"github.com/golang/geo/r2"
)

// SearchConfig bounds the two local searches run by ValidateWithLasers.
// Zero-valued fields are replaced by the defaults.
type SearchConfig struct {
	AngleStepDeg  float64
	HeightStepM   float64
	MaxIterations int
}

// DefaultSearchConfig mirrors the validation methodology of the survey
// workflow: tenth-of-a-degree and centimetre steps.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{AngleStepDeg: 0.1, HeightStepM: 0.01, MaxIterations: 1000}
}

func (c SearchConfig) withDefaults() SearchConfig {
	def := DefaultSearchConfig()
	if c.AngleStepDeg == 0 {
		c.AngleStepDeg = def.AngleStepDeg
	}
	if c.HeightStepM == 0 {
		c.HeightStepM = def.HeightStepM
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = def.MaxIterations
	}
	return c
}

// ValidationParams are the inputs of one laser cross-validation. Fields of
// view are the in-water values.
type ValidationParams struct {
	LaserP1      r2.Point
	LaserP2      r2.Point
	RealDistance float64 // m
	PixWidth     float64
	PixHeight    float64

	Height    float64 // m
	TiltAngle float64 // deg
	VFOV      float64 // deg
	HFOV      float64 // deg

	Search SearchConfig
}

// ValidationResult compares the trigonometric width estimate against the
// laser ground truth at the laser row, and reports the tilt angle and camera
// height that each reconcile the two (searched independently, not jointly).
type ValidationResult struct {
	Laser LaserReference

	TrigWidth       float64
	WidthDifference float64

	Height    float64
	TiltAngle float64

	BestAngle            float64
	BestAngleDifference  float64
	BestHeight           float64
	BestHeightDifference float64

	AreaOriginal   float64
	AreaBestAngle  float64
	AreaBestHeight float64

	Warnings []string
}

// ValidateWithLasers computes the laser reference width and the trigonometric
// width at the same image row, then hill-climbs the tilt angle and the camera
// height separately to find the values that minimise the discrepancy. The
// searches are monotonic local descents; they stop at the first trough and
// may miss better minima beyond it.
func ValidateWithLasers(p ValidationParams) ValidationResult {
	search := p.Search.withDefaults()

	laser := ImageWidthFromLasers(p.LaserP1, p.LaserP2, p.RealDistance, p.PixWidth, p.PixHeight)

	widthAt := func(height, tiltDeg float64) float64 {
		return ComputeImageWidthAtPosition(height, tiltDeg, p.VFOV, p.HFOV, laser.LaserHeight)
	}

	res := ValidationResult{
		Laser:     laser,
		Height:    p.Height,
		TiltAngle: p.TiltAngle,
	}
	res.TrigWidth = widthAt(p.Height, p.TiltAngle)
	res.WidthDifference = math.Abs(res.TrigWidth - laser.ImageWidth)

	res.BestAngle, res.BestAngleDifference = hillClimb(p.TiltAngle, search.AngleStepDeg, search.MaxIterations,
		func(tiltDeg float64) float64 {
			return math.Abs(widthAt(p.Height, tiltDeg) - laser.ImageWidth)
		})
	res.BestHeight, res.BestHeightDifference = hillClimb(p.Height, search.HeightStepM, search.MaxIterations,
		func(height float64) float64 {
			return math.Abs(widthAt(height, p.TiltAngle) - laser.ImageWidth)
		})

	res.AreaOriginal = ComputeAreaOfView(p.Height, p.TiltAngle, p.VFOV, p.HFOV, 1).AreaS
	res.AreaBestAngle = ComputeAreaOfView(p.Height, res.BestAngle, p.VFOV, p.HFOV, 1).AreaS
	res.AreaBestHeight = ComputeAreaOfView(res.BestHeight, p.TiltAngle, p.VFOV, p.HFOV, 1).AreaS

	res.Warnings = append(res.Warnings, laser.Warnings...)
	return res
}

// hillClimb walks from start in steps of step, trying the lower neighbour
// first and then the higher one, and keeps going while either improves on the
// current best. Termination is guaranteed by maxIter; a NaN discrepancy never
// compares as an improvement, so invalid regions stop the walk.
func hillClimb(start, step float64, maxIter int, diff func(float64) float64) (float64, float64) {
	best := start
	bestDiff := diff(start)
	for iter := 0; iter < maxIter; iter++ {
		improved := false
		for _, cand := range []float64{best - step, best + step} {
			if d := diff(cand); d < bestDiff {
				best, bestDiff = cand, d
				improved = true
				break
			}
		}
		if !improved {
			break
		}
	}
	return best, bestDiff
}
