// Package imports reads survey project files: the YAML survey configuration
// and CSV annotation and laser exports.
package imports

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"benthicam/photogrammetry"
)

// Survey is one survey project: camera specification, deployment geometry
// and tuning knobs.
type Survey struct {
	Camera     CameraConfig     `yaml:"camera"`
	Deployment DeploymentConfig `yaml:"deployment"`
	Tuning     TuningConfig     `yaml:"tuning"`
}

// CameraConfig mirrors photogrammetry.CameraSpec; the fields of view are the
// in-air values from the camera datasheet.
type CameraConfig struct {
	FullHFOVDeg float64 `yaml:"full_hfov_deg"`
	FullVFOVDeg float64 `yaml:"full_vfov_deg"`
	UsedHFOVDeg float64 `yaml:"used_hfov_deg"`
	UsedVFOVDeg float64 `yaml:"used_vfov_deg"`

	SensorWidthMm  float64 `yaml:"sensor_width_mm"`
	SensorHeightMm float64 `yaml:"sensor_height_mm"`

	PixWidth  float64 `yaml:"pix_width"`
	PixHeight float64 `yaml:"pix_height"`
}

// DeploymentConfig is the rig geometry at capture time.
type DeploymentConfig struct {
	HeightM          float64 `yaml:"height_m"`
	TiltAngleDeg     float64 `yaml:"tilt_angle_deg"`
	LaserSeparationM float64 `yaml:"laser_separation_m"`
	WireLengthM      float64 `yaml:"wire_length_m"`
	DepthM           float64 `yaml:"depth_m"`
}

// TuningConfig carries the physical and search defaults; zero values are
// replaced on load.
type TuningConfig struct {
	RefractiveIndex float64 `yaml:"refractive_index"`
	AngleStepDeg    float64 `yaml:"angle_step_deg"`
	HeightStepM     float64 `yaml:"height_step_m"`
	MaxIterations   int     `yaml:"max_iterations"`
	DarkMeanLuma    float64 `yaml:"dark_mean_luma"`
}

// LoadSurvey reads and validates a survey project file.
func LoadSurvey(path string) (*Survey, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading survey file")
	}

	var survey Survey
	if err := yaml.Unmarshal(data, &survey); err != nil {
		return nil, errors.Wrap(err, "parsing survey file")
	}

	survey.applyDefaults()
	if err := survey.validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid survey file %s", path)
	}
	return &survey, nil
}

func (s *Survey) applyDefaults() {
	if s.Tuning.RefractiveIndex == 0 {
		s.Tuning.RefractiveIndex = photogrammetry.DefaultRefractiveIndex
	}
	def := photogrammetry.DefaultSearchConfig()
	if s.Tuning.AngleStepDeg == 0 {
		s.Tuning.AngleStepDeg = def.AngleStepDeg
	}
	if s.Tuning.HeightStepM == 0 {
		s.Tuning.HeightStepM = def.HeightStepM
	}
	if s.Tuning.MaxIterations == 0 {
		s.Tuning.MaxIterations = def.MaxIterations
	}
}

func (s *Survey) validate() error {
	if s.Camera.PixWidth <= 0 || s.Camera.PixHeight <= 0 {
		return errors.New("camera pixel dimensions are required")
	}
	if s.Camera.UsedHFOVDeg <= 0 || s.Camera.UsedVFOVDeg <= 0 {
		return errors.New("camera used fields of view are required")
	}
	if s.Deployment.HeightM <= 0 {
		return errors.New("deployment height is required")
	}
	return nil
}

// SearchConfig returns the configured local-search tuning.
func (s *Survey) SearchConfig() photogrammetry.SearchConfig {
	return photogrammetry.SearchConfig{
		AngleStepDeg:  s.Tuning.AngleStepDeg,
		HeightStepM:   s.Tuning.HeightStepM,
		MaxIterations: s.Tuning.MaxIterations,
	}
}

// WaterFOVs returns the used fields of view converted to their in-water
// equivalents (vertical first).
func (s *Survey) WaterFOVs() (float64, float64) {
	return photogrammetry.InWaterFOV(s.Camera.UsedVFOVDeg, s.Tuning.RefractiveIndex),
		photogrammetry.InWaterFOV(s.Camera.UsedHFOVDeg, s.Tuning.RefractiveIndex)
}

// Rig builds the camera rig for this survey. The fields of view driving the
// nadir derivation are the in-water ones.
func (s *Survey) Rig() photogrammetry.CameraRig {
	vfov, hfov := s.WaterFOVs()
	spec := photogrammetry.CameraSpec{
		FullHFOV:     s.Camera.FullHFOVDeg,
		FullVFOV:     s.Camera.FullVFOVDeg,
		UsedHFOV:     hfov,
		UsedVFOV:     vfov,
		PixWidth:     s.Camera.PixWidth,
		PixHeight:    s.Camera.PixHeight,
		SensorWidth:  s.Camera.SensorWidthMm,
		SensorHeight: s.Camera.SensorHeightMm,
	}
	return photogrammetry.BuildCameraRig(spec, s.Deployment.TiltAngleDeg, s.Deployment.HeightM)
}
