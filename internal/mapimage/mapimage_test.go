package mapimage

import (
	"errors"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func writeImage(t *testing.T, name string, w, h int, encode func(io.Writer, image.Image) error) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode %s: %v", name, err)
	}
	return path
}

func TestProbe(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		w, h   int
		encode func(io.Writer, image.Image) error
	}{
		{name: "png", file: "ao.png", w: 1600, h: 1000, encode: png.Encode},
		{name: "bmp", file: "ao.bmp", w: 320, h: 200, encode: bmp.Encode},
		{name: "tiff", file: "ao.tif", w: 64, h: 48, encode: func(w io.Writer, m image.Image) error { return tiff.Encode(w, m, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeImage(t, tt.file, tt.w, tt.h, tt.encode)

			got, err := Probe(path)
			if err != nil {
				t.Fatalf("Probe() error = %v", err)
			}
			if got.FileName != tt.file || got.Width != tt.w || got.Height != tt.h {
				t.Errorf("Probe() = %+v, want %s %dx%d", got, tt.file, tt.w, tt.h)
			}
			if !filepath.IsAbs(got.Path) {
				t.Errorf("Path = %q, want absolute", got.Path)
			}
		})
	}
}

func TestProbe_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Probe(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Probe(missing) error = %v, want os.ErrNotExist", err)
	}

	text := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(text, []byte("not an image"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Probe(text); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Probe(text) error = %v, want ErrUnsupportedFormat", err)
	}
}
