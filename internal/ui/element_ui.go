package ui

import (
	"fmt"
	"io"
	"strings"

	"mcoo/local-app/internal/model"
)

type ElementUI struct {
	visualizer *Visualizer
}

func NewElementUI(w io.Writer, useColor bool) *ElementUI {
	return &ElementUI{visualizer: NewVisualizer(w, useColor)}
}

// ElementList prints the layer list topmost first, as the layers panel shows it.
func (eui *ElementUI) ElementList(elements []model.Element, selectedID string) {
	if len(elements) == 0 {
		eui.visualizer.Println("No elements on the canvas")
		return
	}

	for i := len(elements) - 1; i >= 0; i-- {
		el := elements[i]
		marker := " "
		if el.ID == selectedID {
			marker = "{{yellow}}>{{default}}"
		}

		line := fmt.Sprintf("%s %3d {{orange}}%s{{default}} {{%s}}■{{default}} %-20s %s {{gray}}%d,%d %dx%d{{default}}",
			marker, i+1, el.ID, el.Color, el.Type, quote(el.PrimaryLabel()), el.X, el.Y, el.W, el.H)
		if el.Rotation != 0 {
			line += fmt.Sprintf(" {{gray}}%g°{{default}}", el.Rotation)
		}
		line += flags(el)
		eui.visualizer.PrintMarkup(line)
	}
}

// ElementInfo prints every field of one element.
func (eui *ElementUI) ElementInfo(el model.Element) {
	v := eui.visualizer
	v.PrintMarkup(fmt.Sprintf("{{orange}}%s{{default}} %s%s", el.ID, el.Type, flags(el)))
	v.Printf("  Label:    %s\n", indent(escape(el.Label)))
	if el.Body != "" {
		v.Printf("  Body:     %s\n", indent(escape(el.Body)))
	}
	v.Printf("  Position: %d, %d\n", el.X, el.Y)
	v.Printf("  Size:     %d x %d\n", el.W, el.H)
	v.Printf("  Rotation: %g\n", el.Rotation)
	v.PrintMarkup(fmt.Sprintf("  Color:    {{%s}}■{{default}} %s", el.Color, escape(el.Color)))
	v.Printf("  Opacity:  %g\n", el.Opacity)
}

func flags(el model.Element) string {
	var s string
	if !el.Visible {
		s += " {{gray}}[hidden]{{default}}"
	}
	if el.Locked {
		s += " {{red}}[locked]{{default}}"
	}
	return s
}

func quote(s string) string {
	return `"` + escape(s) + `"`
}

// escape keeps user text from being read as markup.
func escape(s string) string {
	return strings.ReplaceAll(s, "{{", "{ {")
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n            ")
}
