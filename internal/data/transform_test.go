package data

import (
	"math"
	"testing"
)

func TestElementMove(t *testing.T) {
	tests := []struct {
		name  string
		grid  int
		x, y  float64
		wantX int
		wantY int
	}{
		{name: "rounds", x: 10.4, y: 10.5, wantX: 10, wantY: 11},
		{name: "negative rounds half up", x: -2.5, y: -0.4, wantX: -2, wantY: 0},
		{name: "grid snap", grid: 20, x: 29, y: 31, wantX: 20, wantY: 40},
		{name: "grid snap half", grid: 10, x: 15, y: 24.9, wantX: 20, wantY: 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := newTestManager(t)
			id := addBox(em, "UNIT", 10, 10)
			em.GridSizeSet(tt.grid)
			past := em.HistoryPastLen()

			if !em.ElementMove(id, tt.x, tt.y) {
				t.Fatalf("ElementMove() = false")
			}
			el, _ := em.Element(id)
			if el.X != tt.wantX || el.Y != tt.wantY {
				t.Errorf("position = (%d, %d), want (%d, %d)", el.X, el.Y, tt.wantX, tt.wantY)
			}
			if em.HistoryPastLen() != past {
				t.Errorf("move recorded history")
			}
		})
	}
}

func TestElementMove_Locked(t *testing.T) {
	em := newTestManager(t)
	id := addBox(em, "UNIT", 10, 10)
	em.ElementToggleLock(id)

	if em.ElementMove(id, 0, 0) {
		t.Errorf("ElementMove() on locked element = true")
	}
	el, _ := em.Element(id)
	if el.X == 0 {
		t.Errorf("locked element moved")
	}
	if em.ElementMove("el_9999", 0, 0) {
		t.Errorf("ElementMove(unknown) = true")
	}
}

func TestElementTransform(t *testing.T) {
	tests := []struct {
		name         string
		tr           Transform
		wantW, wantH int
	}{
		{name: "scale up", tr: Transform{X: 1.2, Y: 2.6, ScaleX: 1.5, ScaleY: 2, Rotation: 30}, wantW: 150, wantH: 100},
		{name: "minimum size", tr: Transform{ScaleX: 0.1, ScaleY: 0.01}, wantW: 20, wantH: 20},
		{name: "rounds size", tr: Transform{ScaleX: 1.006, ScaleY: 1.02}, wantW: 101, wantH: 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := newTestManager(t)
			id := addBox(em, "UNIT", 100, 50)

			if !em.ElementTransform(id, tt.tr) {
				t.Fatalf("ElementTransform() = false")
			}
			el, _ := em.Element(id)
			if el.W != tt.wantW || el.H != tt.wantH {
				t.Errorf("size = %dx%d, want %dx%d", el.W, el.H, tt.wantW, tt.wantH)
			}
			if el.X != round(tt.tr.X) || el.Y != round(tt.tr.Y) || el.Rotation != tt.tr.Rotation {
				t.Errorf("element = %+v, want transform %+v applied", el, tt.tr)
			}
		})
	}
}

func TestElementTransform_Locked(t *testing.T) {
	em := newTestManager(t)
	id := addBox(em, "UNIT", 100, 50)
	em.ElementToggleLock(id)

	if em.ElementTransform(id, Transform{ScaleX: 2, ScaleY: 2}) {
		t.Errorf("ElementTransform() on locked element = true")
	}
	el, _ := em.Element(id)
	if el.W != 100 || el.H != 50 {
		t.Errorf("locked element resized to %dx%d", el.W, el.H)
	}
}

func TestElementMove_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{name: "NaN x", x: math.NaN(), y: 1},
		{name: "infinite y", x: 1, y: math.Inf(-1)},
		{name: "huge", x: 1e300, y: 1},
		{name: "just above limit", x: MaxCoordinate + 1, y: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := newTestManager(t)
			id := addBox(em, "UNIT", 10, 10)
			before, _ := em.Element(id)

			if em.ElementMove(id, tt.x, tt.y) {
				t.Errorf("ElementMove(%v, %v) = true, want false", tt.x, tt.y)
			}
			if after, _ := em.Element(id); after != before {
				t.Errorf("element changed: %+v, want %+v", after, before)
			}
		})
	}
}

func TestElementTransform_OutOfRange(t *testing.T) {
	tests := []struct {
		name string
		tr   Transform
	}{
		{name: "NaN scale", tr: Transform{ScaleX: math.NaN(), ScaleY: 1}},
		{name: "infinite scale", tr: Transform{ScaleX: 1, ScaleY: math.Inf(1)}},
		{name: "overflowing scale", tr: Transform{ScaleX: 1e300, ScaleY: 1}},
		{name: "NaN position", tr: Transform{X: math.NaN(), ScaleX: 1, ScaleY: 1}},
		{name: "infinite rotation", tr: Transform{ScaleX: 1, ScaleY: 1, Rotation: math.Inf(1)}},
		{name: "NaN rotation", tr: Transform{ScaleX: 1, ScaleY: 1, Rotation: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := newTestManager(t)
			id := addBox(em, "UNIT", 100, 50)
			before, _ := em.Element(id)

			if em.ElementTransform(id, tt.tr) {
				t.Errorf("ElementTransform(%+v) = true, want false", tt.tr)
			}
			if after, _ := em.Element(id); after != before {
				t.Errorf("element changed: %+v, want %+v", after, before)
			}
		})
	}
}
