package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/edaniels/golog"

	"benthicam/stills"
)

func main() {
	surveyFile := flag.String("survey", "survey.yaml", "survey project file")
	annotationsFile := flag.String("annotations", "", "annotation export to measure")
	lasersFile := flag.String("lasers", "", "laser pair export to validate against")
	videoFile := flag.String("video", "", "survey video to extract stills from")
	outDir := flag.String("out", "stills", "output directory for extracted stills")
	thumbnails := flag.Bool("thumbnails", false, "also write thumbnails of extracted stills")
	flag.Parse()

	logger := golog.NewDevelopmentLogger("benthicam")

	app, err := NewApp(*surveyFile, logger)
	if err != nil {
		logger.Fatal(err)
	}

	aov := app.AreaOfView()
	fmt.Printf("Area of view = %.4f m^2 (far edge %.3f m, near edge %.3f m, depth %.3f m)\n",
		aov.AreaS, aov.LengthAE, aov.LengthBD, aov.LengthGF)

	if *annotationsFile != "" {
		measurements, err := app.MeasureAnnotations(*annotationsFile)
		if err != nil {
			logger.Fatal(err)
		}
		for _, m := range measurements {
			fmt.Printf("%s: height %.3f m, width %.3f m, length %.3f m\n",
				m.Label, m.Result.ObjHeight, m.Result.ObjWidth, m.Result.ObjLength)
		}
	}

	if *lasersFile != "" {
		validations, err := app.ValidateLasers(*lasersFile)
		if err != nil {
			logger.Fatal(err)
		}
		for _, v := range validations {
			fmt.Printf("%s: trig width %.3f m, laser width %.3f m, diff %.4f m\n",
				v.Label, v.Result.TrigWidth, v.Result.Laser.ImageWidth, v.Result.WidthDifference)
			fmt.Printf("%s: best angle %.1f deg (diff %.4f m), best height %.2f m (diff %.4f m)\n",
				v.Label, v.Result.BestAngle, v.Result.BestAngleDifference,
				v.Result.BestHeight, v.Result.BestHeightDifference)
		}
	}

	if *videoFile != "" {
		res, err := app.ExtractStills(context.Background(), *videoFile, *outDir)
		if err != nil {
			logger.Fatal(err)
		}
		fmt.Printf("Extracted %d stills (%d skipped as dark) from %.1fs of video\n",
			res.FrameCount, res.SkippedDark, res.VideoDuration)
		if *thumbnails {
			thumbDir := filepath.Join(*outDir, "thumbnails")
			if _, err := stills.CreateThumbnails(thumbDir, res.FramePaths, stills.ThumbnailSize); err != nil {
				logger.Fatal(err)
			}
		}
	}

	os.Exit(0)
}
