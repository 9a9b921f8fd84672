package registry

import (
	"regexp"
	"testing"

	"mcoo/local-app/internal/model"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3,8}$`)

func TestRegistry_EntriesAreWellFormed(t *testing.T) {
	for _, key := range Keys() {
		et, _ := Lookup(key)
		t.Run(key, func(t *testing.T) {
			if et.Key != key {
				t.Errorf("Key = %q, want %q", et.Key, key)
			}
			if et.Label == "" || et.Category == "" {
				t.Errorf("missing label or category: %+v", et)
			}
			if !hexColor.MatchString(et.IconColor) {
				t.Errorf("IconColor %q is not a hex color", et.IconColor)
			}
			if !hexColor.MatchString(et.Defaults.Color) {
				t.Errorf("Defaults.Color %q is not a hex color", et.Defaults.Color)
			}
			if et.Defaults.W <= 0 || et.Defaults.H <= 0 {
				t.Errorf("defaults size %dx%d must be positive", et.Defaults.W, et.Defaults.H)
			}
			if et.Defaults.Opacity < 0 || et.Defaults.Opacity > 1 {
				t.Errorf("defaults opacity %v outside [0,1]", et.Defaults.Opacity)
			}
			if et.Defaults.Label == "" {
				t.Error("defaults label is empty")
			}
		})
	}
}

func TestSections_ReferenceEveryTypeOnce(t *testing.T) {
	seen := map[string]int{}
	for _, s := range Sections() {
		if s.Title == "" || len(s.Types) == 0 {
			t.Errorf("empty section %+v", s)
		}
		for _, key := range s.Types {
			if _, ok := Lookup(key); !ok {
				t.Errorf("section %q references unknown type %q", s.Title, key)
			}
			seen[key]++
		}
	}
	for _, key := range Keys() {
		if seen[key] != 1 {
			t.Errorf("type %q appears in %d sections, want 1", key, seen[key])
		}
	}
}

func TestSpawnPolicies(t *testing.T) {
	tests := []struct {
		key  string
		want model.SpawnPolicy
	}{
		{key: "header", want: model.SpawnTop},
		{key: "footer", want: model.SpawnBottom},
		{key: "water", want: model.SpawnCenter},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			et, ok := Lookup(tt.key)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.key)
			}
			info, _ := et.Info()
			if info.Spawn != tt.want {
				t.Errorf("Spawn = %v, want %v", info.Spawn, tt.want)
			}
		})
	}
}

func TestElementType_InfoCarriesBodyOnlyWhenSet(t *testing.T) {
	callout, _ := Lookup("callout")
	info, filter := callout.Info()
	if !filter.Body || info.Body == "" {
		t.Errorf("callout body not carried: %+v %+v", info, filter)
	}

	water, _ := Lookup("water")
	_, filter = water.Info()
	if filter.Body {
		t.Error("water should not override the baseline body")
	}
}

func TestByCategory(t *testing.T) {
	got := ByCategory(CategoryObstacles)
	if len(got) != 2 || got[0].Key != "obstacle" || got[1].Key != "rail" {
		t.Errorf("ByCategory(obstacles) = %+v", got)
	}
}
