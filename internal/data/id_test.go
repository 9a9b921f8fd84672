package data

import (
	"math"
	"strconv"
	"testing"

	"mcoo/local-app/internal/model"
)

func TestIDGenerator_Next(t *testing.T) {
	g := NewIDGenerator()
	for _, want := range []string{"el_0001", "el_0002", "el_0003"} {
		if got := g.Next(); got != want {
			t.Errorf("Next() = %q, want %q", got, want)
		}
	}

	g.Reseed(12345)
	if got := g.Next(); got != "el_12345" {
		t.Errorf("Next() after Reseed(12345) = %q, want el_12345", got)
	}

	g.Reseed(0)
	if got := g.Peek(); got != 1 {
		t.Errorf("Peek() after Reseed(0) = %d, want 1", got)
	}
}

func TestIDNumber(t *testing.T) {
	tests := []struct {
		id     string
		want   int
		wantOK bool
	}{
		{id: "el_0012", want: 12, wantOK: true},
		{id: "el_7", want: 7, wantOK: true},
		{id: "el_12abc", want: 12, wantOK: true},
		{id: "x_el_5", want: 0, wantOK: false},
		{id: "el_el_9", want: 0, wantOK: false},
		{id: "42", want: 42, wantOK: true},
		{id: "custom", want: 0, wantOK: false},
		{id: "", want: 0, wantOK: false},
		{id: "el_" + strconv.Itoa(math.MaxInt), want: math.MaxInt, wantOK: true},
		{id: "el_" + strconv.Itoa(math.MaxInt) + "0", want: 0, wantOK: false},
		{id: "el_99999999999999999999999", want: 0, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, ok := IDNumber(tt.id)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("IDNumber(%q) = (%d, %v), want (%d, %v)", tt.id, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestNextSeed(t *testing.T) {
	tests := []struct {
		name string
		ids  []string
		want int
	}{
		{name: "empty", ids: nil, want: 1},
		{name: "max plus one", ids: []string{"el_0003", "el_0010", "el_0002"}, want: 11},
		{name: "unparseable ignored", ids: []string{"custom", "el_0004"}, want: 5},
		{name: "none parse", ids: []string{"a", "b"}, want: 1},
		{name: "overflowing suffix ignored", ids: []string{"el_99999999999999999999", "el_0007"}, want: 8},
		{name: "max int ignored", ids: []string{"el_" + strconv.Itoa(math.MaxInt), "el_0002"}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			elements := make([]model.Element, len(tt.ids))
			for i, id := range tt.ids {
				elements[i].ID = id
			}
			if got := nextSeed(elements); got != tt.want {
				t.Errorf("nextSeed(%v) = %d, want %d", tt.ids, got, tt.want)
			}
		})
	}
}
