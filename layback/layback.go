// Package layback locates a towed camera relative to the survey vessel.
package layback

import (
	"math"

	geo "github.com/kellydunn/golang-geo"
	"github.com/pkg/errors"
)

// Layback is the towed-body solution for one vessel fix.
type Layback struct {
	BearingDeg float64 // vessel course over ground
	DistanceM  float64 // horizontal offset astern
	Position   *geo.Point
}

// Estimate places the towed body astern of the vessel track. prev and cur are
// two successive vessel fixes; wireLengthM is the deployed wire length and
// depthM the instrument depth. The horizontal offset is the right-triangle
// solution sqrt(wire^2 - depth^2); a wire shorter than the depth yields a NaN
// distance, which propagates into the result position.
func Estimate(prev, cur *geo.Point, wireLengthM, depthM float64) (Layback, error) {
	if prev == nil || cur == nil {
		return Layback{}, errors.New("two vessel fixes are required")
	}

	course := prev.BearingTo(cur)
	dist := math.Sqrt(wireLengthM*wireLengthM - depthM*depthM)

	// PointAtDistanceAndBearing works in km.
	astern := math.Mod(course+180, 360)
	pos := cur.PointAtDistanceAndBearing(dist/1000, astern)

	return Layback{BearingDeg: course, DistanceM: dist, Position: pos}, nil
}
