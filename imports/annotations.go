package imports

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"benthicam/photogrammetry"
)

// AnnotationRecord is one annotated segment exported from the annotation
// tool: a label and the base and top pixel points.
type AnnotationRecord struct {
	Label   string
	Segment photogrammetry.Segment
}

// LaserPairRecord is one pair of laser dot positions in an image.
type LaserPairRecord struct {
	Label string
	P1    r2.Point
	P2    r2.Point
}

// ReadAnnotations reads a tab-separated annotation export.
// Row layout: Label X1 Y1 X2 Y2, '#' starts a comment line.
func ReadAnnotations(path string) ([]AnnotationRecord, error) {
	pairs, err := readPointPairs(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading annotations")
	}

	records := make([]AnnotationRecord, 0, len(pairs))
	for _, pair := range pairs {
		records = append(records, AnnotationRecord{
			Label:   pair.Label,
			Segment: photogrammetry.Segment{P1: pair.P1, P2: pair.P2},
		})
	}
	return records, nil
}

// ReadLaserPairs reads a tab-separated laser dot export with the same row
// layout as annotations.
func ReadLaserPairs(path string) ([]LaserPairRecord, error) {
	pairs, err := readPointPairs(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading laser pairs")
	}
	return pairs, nil
}

func readPointPairs(path string) ([]LaserPairRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	csvReader := csv.NewReader(f)
	csvReader.Comma = '\t'
	csvReader.Comment = '#'

	var pairs []LaserPairRecord

	// header = {"Label", "X1", "Y1", "X2", "Y2"}
	for {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 5 {
			return nil, errors.Errorf("row for %q has %d fields, want 5", record[0], len(record))
		}

		x1, _ := strconv.ParseFloat(record[1], 64)
		y1, _ := strconv.ParseFloat(record[2], 64)
		x2, _ := strconv.ParseFloat(record[3], 64)
		y2, _ := strconv.ParseFloat(record[4], 64)

		pairs = append(pairs, LaserPairRecord{
			Label: record[0],
			P1:    r2.Point{X: x1, Y: y1},
			P2:    r2.Point{X: x2, Y: y2},
		})
	}
	return pairs, nil
}
