package photogrammetry

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// CameraSpec describes the sensor and lens configuration of the survey
// camera. The full fields of view belong to the whole sensor; the used fields
// of view cover the region actually recorded.
type CameraSpec struct {
	FullHFOV float64 // deg
	FullVFOV float64 // deg
	UsedHFOV float64 // deg
	UsedVFOV float64 // deg

	PixWidth  float64
	PixHeight float64

	SensorWidth  float64 // mm
	SensorHeight float64 // mm
}

// Nadir is the pixel location of the seabed point directly beneath the
// camera, with the intermediate angles of the law-of-sines chain that
// produced it. Y may be negative or exceed the pixel height when the nadir
// falls outside the frame; that is a valid result, never clamped.
type Nadir struct {
	X float64
	Y float64

	AngBCA float64 // at the camera, principal ray to bottom edge ray
	AngBAC float64 // at the bottom edge, toward the principal point
	AngDCA float64 // at the camera, bottom edge ray to nadir ray
	AngCAD float64 // at the bottom edge, toward the nadir point
	AngADC float64 // at the nadir point
}

// CameraConstant carries the intrinsic quantities derived from the sensor and
// field-of-view specification.
type CameraConstant struct {
	FocalLength      float64 // mm
	UsedSensorWidth  float64 // mm
	UsedSensorHeight float64 // mm
	PixSize          float64 // mm per pixel
	CamConstantC     float64 // focal length in pixel units
}

// CameraRig is the full camera model used by the object height formula.
type CameraRig struct {
	Spec      CameraSpec
	Height    float64 // camera height above the seabed, m
	TiltAngle float64 // deg

	CameraConstant

	PPX    float64
	PPY    float64
	NadirX float64
	NadirY float64
}

// ComputeNadir locates the nadir pixel for a camera of vertical field of view
// vfovDeg tilted tiltAngleDeg below the horizontal. The camera is assumed to
// have zero roll, so the nadir column is the image centre.
//
// The row is solved with the law of sines in the vertical cross-section
// through the optical axis: C is the perspective centre, B the principal
// point, A the middle of the bottom edge of frame and D the nadir point on
// the extended image column. A horizontal camera puts the nadir at infinity,
// which propagates as an infinite Y.
func ComputeNadir(vfovDeg, tiltAngleDeg, pixWidth, pixHeight float64) Nadir {
	vfov := Degrees2Rad(vfovDeg)
	tilt := Degrees2Rad(tiltAngleDeg)

	nd := Nadir{X: pixWidth / 2}

	// Right triangle ABC: AB is half the pixel height, the right angle sits
	// at the principal point.
	nd.AngBCA = vfov / 2
	nd.AngBAC = math.Pi/2 - vfov/2
	lenAC := (pixHeight / 2) / math.Sin(nd.AngBCA)

	// Triangle ACD shares side AC; AD is the pixel distance from the bottom
	// edge to the nadir, negative when the nadir lies inside the frame.
	nd.AngDCA = math.Pi/2 - tilt - vfov/2
	nd.AngCAD = math.Pi/2 + vfov/2
	nd.AngADC = math.Pi - nd.AngCAD - nd.AngDCA
	lenAD := lenAC * math.Sin(nd.AngDCA) / math.Sin(nd.AngADC)

	nd.Y = pixHeight + lenAD
	return nd
}

// ComputeCameraConstant derives the focal length from the full-sensor
// field-of-view/width triangle, the used sensor size from the used fields of
// view, and the camera constant C (focal length in pixel units) from the
// resulting pixel size.
func ComputeCameraConstant(spec CameraSpec) CameraConstant {
	cc := CameraConstant{}
	cc.FocalLength = (spec.SensorWidth / 2) / math.Tan(Degrees2Rad(spec.FullHFOV)/2)
	cc.UsedSensorWidth = 2 * cc.FocalLength * math.Tan(Degrees2Rad(spec.UsedHFOV)/2)
	cc.UsedSensorHeight = 2 * cc.FocalLength * math.Tan(Degrees2Rad(spec.UsedVFOV)/2)
	cc.PixSize = cc.UsedSensorWidth / spec.PixWidth
	cc.CamConstantC = cc.FocalLength / cc.PixSize
	return cc
}

// BuildCameraRig composes the camera constant and the nadir location into one
// rig record, with the principal point at the image centre.
func BuildCameraRig(spec CameraSpec, tiltAngleDeg, height float64) CameraRig {
	nd := ComputeNadir(spec.UsedVFOV, tiltAngleDeg, spec.PixWidth, spec.PixHeight)
	return CameraRig{
		Spec:           spec,
		Height:         height,
		TiltAngle:      tiltAngleDeg,
		CameraConstant: ComputeCameraConstant(spec),
		PPX:            spec.PixWidth / 2,
		PPY:            spec.PixHeight / 2,
		NadirX:         nd.X,
		NadirY:         nd.Y,
	}
}

// CheckValid reports whether the rig fields can feed the height formula.
func (rig *CameraRig) CheckValid() error {
	if rig == nil {
		return errors.New("camera rig is nil")
	}
	if rig.Spec.PixWidth <= 0 || rig.Spec.PixHeight <= 0 {
		return errors.Errorf("invalid pixel dimensions (%v, %v)", rig.Spec.PixWidth, rig.Spec.PixHeight)
	}
	if rig.FocalLength <= 0 {
		return errors.Errorf("invalid focal length %v", rig.FocalLength)
	}
	if rig.CamConstantC <= 0 || math.IsNaN(rig.CamConstantC) {
		return errors.Errorf("invalid camera constant %v", rig.CamConstantC)
	}
	if rig.Height <= 0 {
		return errors.Errorf("invalid camera height %v", rig.Height)
	}
	return nil
}

// CameraMatrix returns the 3x3 intrinsic matrix
//
//	[[c 0 ppx],
//	 [0 c ppy],
//	 [0 0   1]]
//
// with the camera constant on both focal entries (square pixels assumed).
func (rig *CameraRig) CameraMatrix() *mat.Dense {
	cameraMatrix := mat.NewDense(3, 3, nil)
	cameraMatrix.Set(0, 0, rig.CamConstantC)
	cameraMatrix.Set(1, 1, rig.CamConstantC)
	cameraMatrix.Set(0, 2, rig.PPX)
	cameraMatrix.Set(1, 2, rig.PPY)
	cameraMatrix.Set(2, 2, 1)
	return cameraMatrix
}
