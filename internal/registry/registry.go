// Package registry holds the closed catalog of placeable element types.
package registry

import (
	"sort"

	"mcoo/local-app/internal/model"
)

// Category groups element types in the toolbar.
type Category string

const (
	CategoryTerrain   Category = "terrain"
	CategoryObstacles Category = "obstacles"
	CategoryTactical  Category = "tactical"
	CategoryCallouts  Category = "callouts"
	CategoryMap       Category = "map"
)

// ElementType describes one placeable element type and its creation defaults.
type ElementType struct {
	Key       string
	Label     string
	Category  Category
	IconColor string
	Spawn     model.SpawnPolicy
	Defaults  Defaults
}

// Defaults are the field values a new element of the type starts with.
type Defaults struct {
	Label   string
	Body    string
	Color   string
	Opacity float64
	W       int
	H       int
}

// Section is one titled toolbar group.
type Section struct {
	Title string
	Types []string
}

var types = map[string]ElementType{
	"water": {
		Key: "water", Label: "Water / Unfordable", Category: CategoryTerrain, IconColor: "#3b6fd4",
		Defaults: Defaults{Label: "Water / Unfordable", Color: "#3b6fd4", Opacity: 0.45, W: 160, H: 100},
	},
	"restrictive": {
		Key: "restrictive", Label: "Restrictive Terrain", Category: CategoryTerrain, IconColor: "#2e8b4a",
		Defaults: Defaults{Label: "Restrictive Terrain", Color: "#2e8b4a", Opacity: 0.40, W: 170, H: 110},
	},
	"severely_restrictive": {
		Key: "severely_restrictive", Label: "Severely Restrictive", Category: CategoryTerrain, IconColor: "#d97706",
		Defaults: Defaults{Label: "Severely Restrictive", Color: "#d97706", Opacity: 0.40, W: 160, H: 100},
	},
	"deadground": {
		Key: "deadground", Label: "Dead Ground / Defilade", Category: CategoryTerrain, IconColor: "#b48c3c",
		Defaults: Defaults{Label: "Dead Ground", Color: "#b48c3c", Opacity: 0.40, W: 150, H: 90},
	},
	"obstacle": {
		Key: "obstacle", Label: "Obstacle Line", Category: CategoryObstacles, IconColor: "#d63030",
		Defaults: Defaults{Label: "Obstacle Line", Color: "#d63030", Opacity: 1.0, W: 180, H: 30},
	},
	"rail": {
		Key: "rail", Label: "Elevated Rail", Category: CategoryObstacles, IconColor: "#7c3aed",
		Defaults: Defaults{Label: "Elevated Rail", Color: "#7c3aed", Opacity: 1.0, W: 180, H: 30},
	},
	"aa": {
		Key: "aa", Label: "Avenue of Approach", Category: CategoryTactical, IconColor: "#d63030",
		Defaults: Defaults{Label: "AA1\nMAIN STREET", Color: "#d63030", Opacity: 1.0, W: 200, H: 44},
	},
	"keyterrain": {
		Key: "keyterrain", Label: "Key Terrain", Category: CategoryTactical, IconColor: "#7c3aed",
		Defaults: Defaults{Label: "K1", Color: "#7c3aed", Opacity: 1.0, W: 48, H: 48},
	},
	"objective": {
		Key: "objective", Label: "Objective", Category: CategoryTactical, IconColor: "#e8c84a",
		Defaults: Defaults{Label: "OBJ CASTLE", Color: "#e8c84a", Opacity: 1.0, W: 140, H: 40},
	},
	"callout": {
		Key: "callout", Label: "Analyst Callout", Category: CategoryCallouts, IconColor: "#e8c84a",
		Defaults: Defaults{
			Label: "CALLOUT TITLE", Body: "• Key point 1\n• Key point 2\n• Key point 3",
			Color: "#8c6a00", Opacity: 1.0, W: 230, H: 130,
		},
	},
	"aolabel": {
		Key: "aolabel", Label: "AA Label Box", Category: CategoryCallouts, IconColor: "#d63030",
		Defaults: Defaults{Label: "AA1\nFRONTIER", Color: "#d63030", Opacity: 1.0, W: 110, H: 46},
	},
	"legend": {
		Key: "legend", Label: "Legend Block", Category: CategoryMap, IconColor: "#2a3a52",
		Defaults: Defaults{Label: "LEGEND", Color: "#14284a", Opacity: 1.0, W: 250, H: 210},
	},
	"titleblock": {
		Key: "titleblock", Label: "Title Block", Category: CategoryMap, IconColor: "#14284a",
		Defaults: Defaults{Label: "MAGIC KINGDOM AO\nG2 TERRAIN TEAM\nDTG: 190900ZFEB26", Color: "#14284a", Opacity: 1.0, W: 210, H: 170},
	},
	"aoboundary": {
		Key: "aoboundary", Label: "AO Boundary", Category: CategoryMap, IconColor: "#d63030",
		Defaults: Defaults{Label: "AO Boundary", Color: "#d63030", Opacity: 1.0, W: 420, H: 300},
	},
	"header": {
		Key: "header", Label: "Header Bar", Category: CategoryMap, IconColor: "#14284a", Spawn: model.SpawnTop,
		Defaults: Defaults{Label: "MCOO", Color: "#14284a", Opacity: 1.0, W: 900, H: 36},
	},
	"footer": {
		Key: "footer", Label: "FOUO Footer", Category: CategoryMap, IconColor: "#14284a", Spawn: model.SpawnBottom,
		Defaults: Defaults{Label: "UNCLASSIFIED // FOR OFFICIAL USE ONLY", Color: "#14284a", Opacity: 1.0, W: 900, H: 24},
	},
}

var sections = []Section{
	{Title: "Terrain Overlays", Types: []string{"water", "restrictive", "severely_restrictive", "deadground"}},
	{Title: "Obstacles", Types: []string{"obstacle", "rail"}},
	{Title: "Tactical", Types: []string{"aa", "keyterrain", "objective"}},
	{Title: "Callouts & Labels", Types: []string{"callout", "aolabel"}},
	{Title: "Map Elements", Types: []string{"legend", "titleblock", "aoboundary", "header", "footer"}},
}

// Lookup returns the element type registered under key.
func Lookup(key string) (ElementType, bool) {
	t, ok := types[key]
	return t, ok
}

// Keys returns every registered type key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(types))
	for k := range types {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Sections returns the toolbar sections in display order.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		out[i] = Section{Title: s.Title, Types: append([]string(nil), s.Types...)}
	}
	return out
}

// ByCategory returns the types of one category in toolbar order.
func ByCategory(c Category) []ElementType {
	var out []ElementType
	for _, s := range sections {
		for _, key := range s.Types {
			if t := types[key]; t.Category == c {
				out = append(out, t)
			}
		}
	}
	return out
}

// Info returns the add request for a new element of this type.
func (t ElementType) Info() (model.ElementInfo, model.ElementFilter) {
	info := model.ElementInfo{
		Type:    t.Key,
		Label:   t.Defaults.Label,
		Body:    t.Defaults.Body,
		Color:   t.Defaults.Color,
		Opacity: t.Defaults.Opacity,
		W:       t.Defaults.W,
		H:       t.Defaults.H,
		Spawn:   t.Spawn,
	}
	filter := model.ElementFilter{
		Type: true, Label: true, Color: true, Opacity: true, W: true, H: true,
		Body: t.Defaults.Body != "",
	}
	return info, filter
}
