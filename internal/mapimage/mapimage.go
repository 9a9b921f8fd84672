// Package mapimage reads the reference and pixel size of a map image.
package mapimage

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"mcoo/local-app/internal/model"
)

// ErrUnsupportedFormat reports a file that is not a recognised image.
var ErrUnsupportedFormat = errors.New("unsupported map image format")

// Probe reads only the image header of path and returns its file name,
// absolute path and pixel size. The pixels are not decoded.
func Probe(path string) (model.MapImage, error) {
	file, err := os.Open(path)
	if err != nil {
		return model.MapImage{}, fmt.Errorf("failed to open map image: %w", err)
	}
	defer file.Close()

	cfg, format, err := image.DecodeConfig(file)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return model.MapImage{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Base(path))
		}
		return model.MapImage{}, fmt.Errorf("failed to read map image header: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return model.MapImage{}, fmt.Errorf("map image %s has no pixels (%s %dx%d)", filepath.Base(path), format, cfg.Width, cfg.Height)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return model.MapImage{
		FileName: filepath.Base(path),
		Path:     abs,
		Width:    cfg.Width,
		Height:   cfg.Height,
	}, nil
}
