package photogrammetry

import (
	"math"

	"github.com/golang/geo/r2"
)

func sqDist(a, b r2.Point) float64 {
	return (a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y)
}

// ComputeObjectHeight solves the Verykokou-Ioannidis single-image
// relief-displacement formula for a segment annotated from base (p1) to top
// (p2). camConstantC is the focal length in pixel units and camHeight the
// camera height above the seabed in metres.
//
// A negative argument under either square root means the pixel points are
// inconsistent with the claimed nadir and camera constant; the resulting NaN
// propagates so callers can detect the bad annotation geometry.
func ComputeObjectHeight(p1, p2, nadir, principal r2.Point, camConstantC, camHeight float64) ObjectHeightResult {
	res := ObjectHeightResult{
		DeltaX: p2.X - p1.X,
		DeltaY: p2.Y - p1.Y,
	}

	res.A = sqDist(p1, principal)
	res.B = sqDist(nadir, principal)
	res.C = sqDist(nadir, p1)
	res.D = sqDist(p2, principal)
	res.E = sqDist(nadir, p2)

	c2 := camConstantC * camConstantC
	res.Eq1 = math.Sqrt(4*(c2+res.A)*(c2+res.B) - math.Pow(2*c2+res.A+res.B-res.C, 2))
	res.Eq2 = 2*c2 + res.A + res.B - res.C
	res.Eq3 = math.Sqrt(4*(c2+res.D)*(c2+res.B) - math.Pow(2*c2+res.D+res.B-res.E, 2))
	res.Eq4 = 2*c2 + res.D + res.B - res.E

	res.ObjHeight = camHeight * (1 - (res.Eq1/res.Eq2)/(res.Eq3/res.Eq4))

	if res.DeltaX == 0 {
		// Vertical segment: the arctangent is undefined and the feature
		// stands straight below its top point. Angle 0 by convention.
		res.Angle = 0
		res.ObjLength = res.ObjHeight
		res.ObjWidth = 0
		return res
	}

	res.Angle = math.Atan2(math.Abs(res.DeltaY), math.Abs(res.DeltaX))
	res.ObjLength = res.ObjHeight / math.Sin(res.Angle)
	res.ObjWidth = math.Sqrt(res.ObjLength*res.ObjLength - res.ObjHeight*res.ObjHeight)
	return res
}

// MeasureSegment runs ComputeObjectHeight against a built rig.
func MeasureSegment(seg Segment, rig CameraRig) ObjectHeightResult {
	return ComputeObjectHeight(seg.P1, seg.P2,
		r2.Point{X: rig.NadirX, Y: rig.NadirY},
		r2.Point{X: rig.PPX, Y: rig.PPY},
		rig.CamConstantC, rig.Height)
}
