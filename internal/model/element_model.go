// Package model defines the data structures used throughout the MCOO editor.
package model

import "strings"

// MinElementSize is the smallest width or height an interactive transform may produce.
const MinElementSize = 20

// Element represents a single placed overlay graphic.
type Element struct {
	ID       string  `json:"id"`
	Type     string  `json:"type"`
	Label    string  `json:"label"`
	Body     string  `json:"body"`
	X        int     `json:"x"`
	Y        int     `json:"y"`
	W        int     `json:"w"`
	H        int     `json:"h"`
	Rotation float64 `json:"rotation"`
	Color    string  `json:"color"`
	Opacity  float64 `json:"opacity"`
	Visible  bool    `json:"visible"`
	Locked   bool    `json:"locked"`
}

// PrimaryLabel returns the first line of the label, shown in compact views.
func (e Element) PrimaryLabel() string {
	if i := strings.IndexByte(e.Label, '\n'); i >= 0 {
		return e.Label[:i]
	}
	return e.Label
}

// SpawnPolicy overrides the default centered placement of a new element.
type SpawnPolicy int

const (
	SpawnCenter SpawnPolicy = iota
	SpawnTop
	SpawnBottom
)

// String returns the string representation of the SpawnPolicy
func (p SpawnPolicy) String() string {
	switch p {
	case SpawnTop:
		return "top"
	case SpawnBottom:
		return "bottom"
	default:
		return "center"
	}
}

// ElementInfo carries element field values for add and update operations.
// Only the fields selected by an accompanying ElementFilter are applied.
type ElementInfo struct {
	Type     string
	Label    string
	Body     string
	X        int
	Y        int
	W        int
	H        int
	Rotation float64
	Color    string
	Opacity  float64
	Visible  bool
	Locked   bool
	Spawn    SpawnPolicy
}

// ElementFilter selects which ElementInfo fields an operation applies.
type ElementFilter struct {
	Type     bool
	Label    bool
	Body     bool
	X        bool
	Y        bool
	W        bool
	H        bool
	Rotation bool
	Color    bool
	Opacity  bool
	Visible  bool
	Locked   bool
}

// Apply merges the filtered fields of info onto the element.
func (f ElementFilter) Apply(el *Element, info ElementInfo) {
	if f.Type {
		el.Type = info.Type
	}
	if f.Label {
		el.Label = info.Label
	}
	if f.Body {
		el.Body = info.Body
	}
	if f.X {
		el.X = info.X
	}
	if f.Y {
		el.Y = info.Y
	}
	if f.W {
		el.W = info.W
	}
	if f.H {
		el.H = info.H
	}
	if f.Rotation {
		el.Rotation = info.Rotation
	}
	if f.Color {
		el.Color = info.Color
	}
	if f.Opacity {
		el.Opacity = info.Opacity
	}
	if f.Visible {
		el.Visible = info.Visible
	}
	if f.Locked {
		el.Locked = info.Locked
	}
}

// ElementFilterAll selects every field.
var ElementFilterAll = ElementFilter{
	Type: true, Label: true, Body: true,
	X: true, Y: true, W: true, H: true,
	Rotation: true, Color: true, Opacity: true,
	Visible: true, Locked: true,
}

// ElementToInfo converts an element into an ElementInfo.
func ElementToInfo(el Element) ElementInfo {
	return ElementInfo{
		Type:     el.Type,
		Label:    el.Label,
		Body:     el.Body,
		X:        el.X,
		Y:        el.Y,
		W:        el.W,
		H:        el.H,
		Rotation: el.Rotation,
		Color:    el.Color,
		Opacity:  el.Opacity,
		Visible:  el.Visible,
		Locked:   el.Locked,
	}
}

// ElementsCopy returns an independent copy of an element list.
// Element holds only value fields, so copying the slice copies every element.
func ElementsCopy(elements []Element) []Element {
	out := make([]Element, len(elements))
	copy(out, elements)
	return out
}
