package stills

import (
	"os"
	"path/filepath"

	"github.com/h2non/bimg"
	"github.com/pkg/errors"
)

// ThumbnailSize is the default longer-edge size of generated thumbnails.
const ThumbnailSize = 1500

// CreateThumbnails writes resized copies of the extracted stills into dir,
// keeping the longer edge at maxSize pixels (ThumbnailSize when maxSize <= 0).
func CreateThumbnails(dir string, stills []string, maxSize int) ([]string, error) {
	if maxSize <= 0 {
		maxSize = ThumbnailSize
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating thumbnails directory")
	}

	toRet := make([]string, 0, len(stills))
	for _, still := range stills {
		buffer, err := bimg.Read(still)
		if err != nil {
			return nil, errors.Wrapf(err, "reading %s", still)
		}

		fullImage := bimg.NewImage(buffer)
		fullSize, err := fullImage.Size()
		if err != nil {
			return nil, errors.Wrapf(err, "sizing %s", still)
		}

		var resizedImage []byte
		if fullSize.Width > fullSize.Height {
			resizedImage, err = fullImage.Process(bimg.Options{Width: maxSize, Compression: 90})
		} else {
			resizedImage, err = fullImage.Process(bimg.Options{Height: maxSize, Compression: 90})
		}
		if err != nil || resizedImage == nil {
			return nil, errors.Wrapf(err, "resizing %s", still)
		}

		path := filepath.Join(dir, filepath.Base(still))
		if err := bimg.Write(path, resizedImage); err != nil {
			return nil, errors.Wrapf(err, "writing %s", path)
		}
		toRet = append(toRet, path)
	}
	return toRet, nil
}
