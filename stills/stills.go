// Package stills extracts representative still frames from survey video.
package stills

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Metadata is the basic video description reported by ffprobe.
type Metadata struct {
	DurationSec float64
	FrameRate   float64
	Width       int
	Height      int
}

type probeStream struct {
	CodecType    string `json:"codec_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AvgFrameRate string `json:"avg_frame_rate"`
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
	Format  struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// Probe reads duration, frame rate and pixel dimensions of a media file.
func Probe(path string) (Metadata, error) {
	out, err := ffmpeg.Probe(path)
	if err != nil {
		return Metadata{}, errors.Wrapf(err, "probing %s", path)
	}
	return parseProbe(out)
}

func parseProbe(out string) (Metadata, error) {
	var probed probeOutput
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		return Metadata{}, errors.Wrap(err, "parsing ffprobe output")
	}

	md := Metadata{}
	md.DurationSec, _ = strconv.ParseFloat(probed.Format.Duration, 64)
	for _, stream := range probed.Streams {
		if stream.CodecType != "video" {
			continue
		}
		md.Width = stream.Width
		md.Height = stream.Height
		md.FrameRate = parseRate(stream.AvgFrameRate)
		return md, nil
	}
	return md, errors.New("no video stream found")
}

// parseRate parses ffprobe rational rates like "30000/1001".
func parseRate(rate string) float64 {
	numStr, denStr, found := strings.Cut(rate, "/")
	num, _ := strconv.ParseFloat(numStr, 64)
	if !found {
		return num
	}
	den, _ := strconv.ParseFloat(denStr, 64)
	if den == 0 {
		return 0
	}
	return num / den
}

// ExtractFrame decodes the frame nearest timestampSec as a single mjpeg image
// piped out of ffmpeg.
func ExtractFrame(ctx context.Context, path string, timestampSec float64) (image.Image, error) {
	// make sure ffmpeg is in the path before doing anything else
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	stream := ffmpeg.Input(path, ffmpeg.KwArgs{"ss": fmt.Sprintf("%.3f", timestampSec)}).
		Output("pipe:", ffmpeg.KwArgs{"vframes": 1, "format": "image2", "vcodec": "mjpeg"})
	stream.Context = ctx
	if err := stream.WithOutput(&buf).Run(); err != nil {
		return nil, errors.Wrapf(err, "extracting frame at %.3fs from %s", timestampSec, path)
	}

	img, err := jpeg.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decoding extracted frame")
	}
	return img, nil
}

// Options tunes periodic still extraction. Zero-valued fields take the
// defaults.
type Options struct {
	IntervalSec  float64 // spacing between candidate frames
	DarkMeanLuma float64 // frames with mean luma below this are skipped
	JPEGQuality  int
}

const (
	defaultIntervalSec = 10.0
	defaultJPEGQuality = 90
)

func (o *Options) applyDefaults() {
	if o.IntervalSec <= 0 {
		o.IntervalSec = defaultIntervalSec
	}
	if o.DarkMeanLuma <= 0 {
		o.DarkMeanLuma = DefaultDarkMeanLuma
	}
	if o.JPEGQuality <= 0 {
		o.JPEGQuality = defaultJPEGQuality
	}
}

// Result reports one extraction run.
type Result struct {
	FramePaths    []string
	FrameCount    int
	SkippedDark   int
	VideoDuration float64
}

// ExtractStills walks the video at the configured interval, skips frames too
// dark to annotate, and writes the rest as JPEGs into outDir.
func ExtractStills(ctx context.Context, path, outDir string, opts Options) (*Result, error) {
	opts.applyDefaults()

	md, err := Probe(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	res := &Result{VideoDuration: md.DurationSec}
	for ts := 0.0; ts < md.DurationSec; ts += opts.IntervalSec {
		img, err := ExtractFrame(ctx, path, ts)
		if err != nil {
			return nil, err
		}
		if MeanLuma(img) < opts.DarkMeanLuma {
			res.SkippedDark++
			continue
		}

		name := filepath.Join(outDir, fmt.Sprintf("%s_%08.2fs.jpg", base, ts))
		if err := writeJPEG(name, img, opts.JPEGQuality); err != nil {
			return nil, err
		}
		res.FramePaths = append(res.FramePaths, name)
		res.FrameCount++
	}
	return res, nil
}

func writeJPEG(name string, img image.Image, quality int) error {
	f, err := os.Create(name)
	if err != nil {
		return errors.Wrapf(err, "creating %s", name)
	}
	defer f.Close()
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}
	return nil
}
