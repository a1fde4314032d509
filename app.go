package main

import (
	"context"
	"math"

	"github.com/edaniels/golog"
	geo "github.com/kellydunn/golang-geo"

	"benthicam/imports"
	"benthicam/layback"
	"benthicam/photogrammetry"
	"benthicam/stills"
)

// App exposes the survey workflows over a loaded survey project.
type App struct {
	survey *imports.Survey
	logger golog.Logger
}

// NewApp loads the survey project and binds the workflows to it.
func NewApp(surveyFile string, logger golog.Logger) (*App, error) {
	survey, err := imports.LoadSurvey(surveyFile)
	if err != nil {
		return nil, err
	}
	return &App{survey: survey, logger: logger}, nil
}

// AreaOfView reports the full-frame seafloor footprint of the configured
// deployment, with the fields of view converted to their in-water values.
func (a *App) AreaOfView() photogrammetry.AreaOfViewResult {
	vfov, hfov := a.survey.WaterFOVs()
	res := photogrammetry.ComputeAreaOfView(
		a.survey.Deployment.HeightM, a.survey.Deployment.TiltAngleDeg, vfov, hfov, 1)
	for _, warning := range res.Warnings {
		a.logger.Warnw("area of view", "warning", warning)
	}
	return res
}

// MeasureAnnotations measures every annotated segment in file against the
// survey rig.
func (a *App) MeasureAnnotations(file string) ([]Measurement, error) {
	records, err := imports.ReadAnnotations(file)
	if err != nil {
		return nil, err
	}

	rig := a.survey.Rig()
	if err := rig.CheckValid(); err != nil {
		return nil, err
	}

	measurements := make([]Measurement, 0, len(records))
	for _, record := range records {
		res := photogrammetry.MeasureSegment(record.Segment, rig)
		if math.IsNaN(res.ObjHeight) {
			a.logger.Warnw("annotation geometry inconsistent with the rig", "label", record.Label)
		}
		measurements = append(measurements, Measurement{Label: record.Label, Result: res})
	}
	return measurements, nil
}

// ValidateLasers cross-validates the configured deployment geometry against
// every laser pair in file.
func (a *App) ValidateLasers(file string) ([]Validation, error) {
	pairs, err := imports.ReadLaserPairs(file)
	if err != nil {
		return nil, err
	}

	vfov, hfov := a.survey.WaterFOVs()
	validations := make([]Validation, 0, len(pairs))
	for _, pair := range pairs {
		res := photogrammetry.ValidateWithLasers(photogrammetry.ValidationParams{
			LaserP1:      pair.P1,
			LaserP2:      pair.P2,
			RealDistance: a.survey.Deployment.LaserSeparationM,
			PixWidth:     a.survey.Camera.PixWidth,
			PixHeight:    a.survey.Camera.PixHeight,
			Height:       a.survey.Deployment.HeightM,
			TiltAngle:    a.survey.Deployment.TiltAngleDeg,
			VFOV:         vfov,
			HFOV:         hfov,
			Search:       a.survey.SearchConfig(),
		})
		for _, warning := range res.Warnings {
			a.logger.Warnw("laser validation", "label", pair.Label, "warning", warning)
		}
		validations = append(validations, Validation{Label: pair.Label, Result: res})
	}
	return validations, nil
}

// Layback places the towed camera astern of the vessel track given two
// successive vessel fixes.
func (a *App) Layback(prevLat, prevLng, curLat, curLng float64) (layback.Layback, error) {
	return layback.Estimate(
		geo.NewPoint(prevLat, prevLng), geo.NewPoint(curLat, curLng),
		a.survey.Deployment.WireLengthM, a.survey.Deployment.DepthM)
}

// ExtractStills pulls representative frames out of a survey video, skipping
// frames darker than the configured threshold.
func (a *App) ExtractStills(ctx context.Context, videoFile, outDir string) (*stills.Result, error) {
	return stills.ExtractStills(ctx, videoFile, outDir, stills.Options{
		DarkMeanLuma: a.survey.Tuning.DarkMeanLuma,
	})
}
