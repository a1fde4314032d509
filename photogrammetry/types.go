package photogrammetry

import "github.com/golang/geo/r2"

// Segment is an annotated line in pixel space. P1 marks the base of the
// feature on the seabed, P2 its top.
type Segment struct {
	P1 r2.Point
	P2 r2.Point
}

// AreaOfViewResult holds the trapezoid model of the seafloor footprint of one
// oblique frame. All angles are in radians, all lengths in metres.
type AreaOfViewResult struct {
	Height     float64 // camera height above the seabed, m
	TiltAngle  float64 // deg, 0 = horizontal
	Proportion float64 // row fraction of the measured strip, 0 = bottom edge

	Alpha float64 // vertical field of view
	Beta  float64 // horizontal field of view
	Delta float64 // nadir-to-bottom-edge angle
	Theta float64 // nadir-to-measured-edge angle, Delta + Alpha*Proportion

	LengthAE float64 // width of the measured (top) edge
	LengthBD float64 // width of the bottom edge
	LengthGF float64 // depth of the trapezoid
	AreaS    float64 // trapezoid area, the visible seafloor area

	Warnings []string
}

// ObjectHeightResult is the relief-displacement solution for one annotated
// segment. The squared pixel distances A..E and the composite terms Eq1..Eq4
// are kept for inspection; ObjHeight, ObjWidth and ObjLength are in metres.
type ObjectHeightResult struct {
	DeltaX float64
	DeltaY float64
	Angle  float64 // segment angle from the horizontal pixel axis, rad

	A float64 // base to principal point, squared px
	B float64 // nadir to principal point, squared px
	C float64 // nadir to base, squared px
	D float64 // top to principal point, squared px
	E float64 // nadir to top, squared px

	Eq1 float64
	Eq2 float64
	Eq3 float64
	Eq4 float64

	ObjHeight float64
	ObjWidth  float64
	ObjLength float64
}

// LaserReference is the ground-truth image width inferred from two laser dots
// of known physical separation.
type LaserReference struct {
	P1           r2.Point
	P2           r2.Point
	RealDistance float64 // m
	PixWidth     float64
	PixHeight    float64

	LaserDistanceXPix float64
	LaserHeight       float64 // row fraction of the dots, 0 = bottom, 1 = top
	ImageWidth        float64 // m

	Warnings []string
}
