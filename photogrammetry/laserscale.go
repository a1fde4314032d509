package photogrammetry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/stat"
)

// LaserTiltWarnFraction is the |dy|/pixHeight fraction above which the two
// dots are considered insufficiently horizontal for the flat-field
// assumption.
const LaserTiltWarnFraction = 0.05

// ImageWidthFromLasers infers the real-world width of the image at the row of
// two laser dots of known separation. LaserHeight is the row fraction of the
// dots measured from the bottom of the frame (0 = bottom, 1 = top), directly
// usable as the position argument of ComputeImageWidthAtPosition.
//
// Dots on the same pixel column give an infinite width, which propagates.
// A tilted dot pair attaches a warning but still returns the computed values.
func ImageWidthFromLasers(p1, p2 r2.Point, realDistanceM, pixWidth, pixHeight float64) LaserReference {
	res := LaserReference{
		P1:           p1,
		P2:           p2,
		RealDistance: realDistanceM,
		PixWidth:     pixWidth,
		PixHeight:    pixHeight,
	}

	res.LaserDistanceXPix = math.Abs(p1.X - p2.X)
	res.LaserHeight = 1 - stat.Mean([]float64{p1.Y, p2.Y}, nil)/pixHeight
	res.ImageWidth = realDistanceM * pixWidth / res.LaserDistanceXPix

	if tilt := math.Abs(p1.Y-p2.Y) / pixHeight; tilt >= LaserTiltWarnFraction {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("laser dots differ by %.1f%% of the image height, flat-field assumption may not hold", tilt*100))
	}
	return res
}
