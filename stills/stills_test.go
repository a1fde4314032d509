package stills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const probeFixture = `{
	"streams": [
		{"codec_type": "audio", "codec_name": "aac"},
		{"codec_type": "video", "width": 1920, "height": 1080, "avg_frame_rate": "30000/1001"}
	],
	"format": {"duration": "125.500000"}
}`

func TestParseProbe(t *testing.T) {
	t.Parallel()

	t.Run("picks the video stream", func(t *testing.T) {
		md, err := parseProbe(probeFixture)
		require.NoError(t, err)

		assert.Equal(t, 1920, md.Width)
		assert.Equal(t, 1080, md.Height)
		assert.InDelta(t, 125.5, md.DurationSec, 1e-9)
		assert.InDelta(t, 29.97, md.FrameRate, 0.01)
	})

	t.Run("no video stream", func(t *testing.T) {
		_, err := parseProbe(`{"streams": [{"codec_type": "audio"}], "format": {"duration": "10"}}`)
		assert.Error(t, err)
	})

	t.Run("bad JSON", func(t *testing.T) {
		_, err := parseProbe(`not json`)
		assert.Error(t, err)
	})
}

func TestParseRate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rate string
		want float64
	}{
		{"30000/1001", 29.97002997002997},
		{"25/1", 25},
		{"30", 30},
		{"0/0", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, parseRate(tc.rate), 1e-9, tc.rate)
	}
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()

	opts := Options{}
	opts.applyDefaults()
	assert.Equal(t, defaultIntervalSec, opts.IntervalSec)
	assert.Equal(t, DefaultDarkMeanLuma, opts.DarkMeanLuma)
	assert.Equal(t, defaultJPEGQuality, opts.JPEGQuality)

	opts = Options{IntervalSec: 2, DarkMeanLuma: 0.25, JPEGQuality: 70}
	opts.applyDefaults()
	assert.Equal(t, 2.0, opts.IntervalSec)
	assert.Equal(t, 0.25, opts.DarkMeanLuma)
	assert.Equal(t, 70, opts.JPEGQuality)
}
