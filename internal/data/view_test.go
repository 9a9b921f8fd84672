package data

import (
	"math"
	"testing"

	"mcoo/local-app/internal/model"
)

func TestZoomSet(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{in: 2, want: 2},
		{in: 0.1, want: MinZoom},
		{in: 100, want: MaxZoom},
		{in: 0.25, want: 0.25},
		{in: math.Inf(1), want: MaxZoom},
		{in: math.Inf(-1), want: MinZoom},
		{in: math.NaN(), want: 1},
	}

	for _, tt := range tests {
		em := newTestManager(t)
		em.ZoomSet(tt.in)
		if em.Zoom() != tt.want {
			t.Errorf("ZoomSet(%v): Zoom() = %v, want %v", tt.in, em.Zoom(), tt.want)
		}
	}

	em := newTestManager(t)
	em.ZoomSet(3)
	em.ZoomReset()
	if em.Zoom() != 1 {
		t.Errorf("Zoom() after reset = %v, want 1", em.Zoom())
	}
}

func TestGridSizeSet(t *testing.T) {
	em := newTestManager(t)
	em.GridSizeSet(25)
	if em.GridSize() != 25 {
		t.Errorf("GridSize() = %d, want 25", em.GridSize())
	}
	em.GridSizeSet(-4)
	if em.GridSize() != 0 {
		t.Errorf("GridSize() after negative = %d, want 0", em.GridSize())
	}
}

func TestCanvasSizeSet(t *testing.T) {
	em := newTestManager(t)
	if !em.CanvasSizeSet(1200, 800) {
		t.Fatalf("CanvasSizeSet(1200, 800) = false")
	}
	if em.CanvasSizeSet(0, 800) || em.CanvasSizeSet(100, -1) {
		t.Errorf("CanvasSizeSet accepted a non-positive size")
	}
	c := em.Canvas()
	if c.Width != 1200 || c.Height != 800 {
		t.Errorf("canvas = %dx%d, want 1200x800", c.Width, c.Height)
	}
}

func TestMapImageSet(t *testing.T) {
	em := newTestManager(t)
	em.ZoomSet(4)

	ok := em.MapImageSet(model.MapImage{FileName: "ao.png", Path: "/maps/ao.png", Width: 1600, Height: 1000})
	if !ok {
		t.Fatalf("MapImageSet() = false")
	}
	c := em.Canvas()
	if c.Width != 1600 || c.Height != 1000 || c.MapFileName != "ao.png" || c.MapPath != "/maps/ao.png" {
		t.Errorf("canvas = %+v", c)
	}
	if em.Zoom() != 1 {
		t.Errorf("Zoom() = %v, want 1", em.Zoom())
	}

	// New elements center on the map-sized canvas.
	id := addBox(em, "UNIT", 100, 100)
	el, _ := em.Element(id)
	if el.X != 750 || el.Y != 450 {
		t.Errorf("position = (%d, %d), want (750, 450)", el.X, el.Y)
	}

	em.MapImageClear()
	c = em.Canvas()
	if c.MapFileName != "" || c.MapPath != "" || c.Width != 1600 {
		t.Errorf("canvas after clear = %+v", c)
	}

	if em.MapImageSet(model.MapImage{FileName: "empty.png"}) {
		t.Errorf("MapImageSet() accepted a zero-size image")
	}
}
