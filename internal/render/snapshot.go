package render

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
)

// ErrUnsupportedFormat is returned for snapshot paths with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported snapshot format")

// WriteSnapshot encodes img to path. The format follows the extension:
// .bmp or .png.
func WriteSnapshot(path string, img image.Image) (err error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".bmp" && ext != ".png" {
		return errors.Wrapf(ErrUnsupportedFormat, "[WriteSnapshot] %q", path)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[WriteSnapshot] failed to create file: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[WriteSnapshot] failed to close file: %+v", path)
		}
	}()
	if ext == ".bmp" {
		err = bmp.Encode(f, img)
	} else {
		err = png.Encode(f, img)
	}
	if err != nil {
		return errors.Wrapf(err, "[WriteSnapshot] failed to encode %s: %+v", ext, path)
	}
	return nil
}
