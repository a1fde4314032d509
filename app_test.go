package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/edaniels/golog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSurvey = `camera:
  full_hfov_deg: 122.6
  full_vfov_deg: 94.4
  used_hfov_deg: 66.4
  used_vfov_deg: 40.3
  sensor_width_mm: 6.17
  sensor_height_mm: 4.55
  pix_width: 1920
  pix_height: 1080
deployment:
  height_m: 0.55
  tilt_angle_deg: 28.8
  laser_separation_m: 0.2
  wire_length_m: 50
  depth_m: 30
`

func testApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	surveyFile := filepath.Join(dir, "survey.yaml")
	require.NoError(t, os.WriteFile(surveyFile, []byte(testSurvey), 0o644))

	app, err := NewApp(surveyFile, golog.NewTestLogger(t))
	require.NoError(t, err)
	return app
}

func TestAppAreaOfView(t *testing.T) {
	res := testApp(t).AreaOfView()

	// In-water fields of view are narrower than the configured in-air ones,
	// so the footprint shrinks against the in-air reference value.
	assert.Greater(t, res.AreaS, 0.0)
	assert.Less(t, res.AreaS, 9.01)
	assert.Empty(t, res.Warnings)
}

func TestAppMeasureAnnotations(t *testing.T) {
	app := testApp(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "annotations.tsv")
	content := "sponge-01\t960\t800\t960\t700\n" +
		"gorgonian-02\t700\t900\t820\t760\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0o644))

	measurements, err := app.MeasureAnnotations(file)
	require.NoError(t, err)
	require.Len(t, measurements, 2)

	vertical := measurements[0].Result
	assert.Zero(t, vertical.Angle)
	assert.Zero(t, vertical.ObjWidth)
	assert.Equal(t, vertical.ObjHeight, vertical.ObjLength)
	assert.False(t, math.IsNaN(measurements[1].Result.ObjHeight))
}

func TestAppValidateLasers(t *testing.T) {
	app := testApp(t)

	dir := t.TempDir()
	file := filepath.Join(dir, "lasers.tsv")
	require.NoError(t, os.WriteFile(file, []byte("frame_0001\t840\t612\t1104\t612\n"), 0o644))

	validations, err := app.ValidateLasers(file)
	require.NoError(t, err)
	require.Len(t, validations, 1)

	res := validations[0].Result
	assert.Greater(t, res.Laser.ImageWidth, 0.0)
	assert.Greater(t, res.TrigWidth, 0.0)
	assert.LessOrEqual(t, res.BestAngleDifference, res.WidthDifference)
	assert.LessOrEqual(t, res.BestHeightDifference, res.WidthDifference)
}

func TestAppLayback(t *testing.T) {
	lb, err := testApp(t).Layback(50.00, -3.00, 50.01, -3.00)
	require.NoError(t, err)

	assert.InDelta(t, 40.0, lb.DistanceM, 1e-9)
	require.NotNil(t, lb.Position)
	assert.Less(t, lb.Position.Lat(), 50.01)
}
