package photogrammetry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSpec = CameraSpec{
	FullHFOV:     122.6,
	FullVFOV:     94.4,
	UsedHFOV:     66.4,
	UsedVFOV:     40.3,
	PixWidth:     1920,
	PixHeight:    1080,
	SensorWidth:  6.17,
	SensorHeight: 4.55,
}

func TestComputeNadir(t *testing.T) {
	t.Parallel()

	t.Run("reference tilt", func(t *testing.T) {
		nd := ComputeNadir(40.3, 28.8, 1920, 1080)
		assert.Equal(t, 960.0, nd.X)
		assert.InDelta(t, 3216.9009357619775, nd.Y, 1e-3)
	})

	t.Run("straight down puts nadir at the principal point", func(t *testing.T) {
		nd := ComputeNadir(40.3, 90, 1920, 1080)
		assert.InDelta(t, 540.0, nd.Y, 1e-6)
	})

	t.Run("nadir on the bottom edge", func(t *testing.T) {
		// Tilt such that the bottom edge ray is vertical.
		nd := ComputeNadir(40.3, 90-40.3/2, 1920, 1080)
		assert.InDelta(t, 1080.0, nd.Y, 1e-6)
	})

	t.Run("shallow tilt leaves the frame", func(t *testing.T) {
		// Off-frame nadir is a valid result and must not be clamped.
		nd := ComputeNadir(40.3, 10, 1920, 1080)
		assert.Greater(t, nd.Y, 1080.0)
	})

	t.Run("horizontal camera has no usable nadir", func(t *testing.T) {
		// The nadir ray never meets the image column; the row blows up to
		// infinity (or its floating-point neighbourhood) and is returned
		// as computed.
		nd := ComputeNadir(40.3, 0, 1920, 1080)
		assert.True(t, math.IsInf(nd.Y, 0) || math.Abs(nd.Y) > 1e9)
	})
}

func TestComputeCameraConstant(t *testing.T) {
	t.Parallel()

	cc := ComputeCameraConstant(testSpec)

	assert.InDelta(t, 1.6889881651577225, cc.FocalLength, 1e-6)
	assert.InDelta(t, 2.2104857706742718, cc.UsedSensorWidth, 1e-6)
	assert.InDelta(t, 0.0011512946722261831, cc.PixSize, 1e-9)
	assert.InDelta(t, 1467.0337715468072, cc.CamConstantC, 1e-3)

	// The used region is a crop of the full sensor.
	assert.Less(t, cc.UsedSensorWidth, testSpec.SensorWidth)
	assert.Less(t, cc.UsedSensorHeight, testSpec.SensorHeight)
}

func TestBuildCameraRig(t *testing.T) {
	t.Parallel()

	rig := BuildCameraRig(testSpec, 28.8, 0.55)

	assert.Equal(t, 960.0, rig.PPX)
	assert.Equal(t, 540.0, rig.PPY)
	assert.Equal(t, 960.0, rig.NadirX)
	assert.InDelta(t, 3216.9009357619775, rig.NadirY, 1e-3)
	require.NoError(t, rig.CheckValid())

	m := rig.CameraMatrix()
	assert.Equal(t, rig.CamConstantC, m.At(0, 0))
	assert.Equal(t, rig.CamConstantC, m.At(1, 1))
	assert.Equal(t, rig.PPX, m.At(0, 2))
	assert.Equal(t, rig.PPY, m.At(1, 2))
	assert.Equal(t, 1.0, m.At(2, 2))
}

func TestCameraRigCheckValid(t *testing.T) {
	t.Parallel()

	var nilRig *CameraRig
	assert.Error(t, nilRig.CheckValid())

	rig := BuildCameraRig(testSpec, 28.8, 0.55)
	rig.Height = 0
	assert.Error(t, rig.CheckValid())

	rig = BuildCameraRig(CameraSpec{}, 28.8, 0.55)
	assert.Error(t, rig.CheckValid())
}
