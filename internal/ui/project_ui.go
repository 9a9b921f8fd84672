package ui

import (
	"fmt"
	"io"

	"mcoo/local-app/internal/model"
	"mcoo/local-app/internal/registry"
)

type ProjectUI struct {
	visualizer *Visualizer
}

func NewProjectUI(w io.Writer, useColor bool) *ProjectUI {
	return &ProjectUI{visualizer: NewVisualizer(w, useColor)}
}

func (pui *ProjectUI) ProjectInfo(p model.ProjectInfo) {
	v := pui.visualizer
	title, file := p.Title, p.File
	if title == "" {
		title = "(untitled)"
	}
	if file == "" {
		file = "(not saved)"
	}
	state := "{{green}}saved{{default}}"
	if p.Dirty {
		state = "{{red}}unsaved changes{{default}}"
	}

	v.PrintMarkup(fmt.Sprintf("Project:  {{blue}}%s{{default}} (%s)", escape(title), state))
	v.Printf("File:     %s\n", file)
	v.Printf("Canvas:   %d x %d\n", p.Canvas.Width, p.Canvas.Height)
	if p.Canvas.MapFileName != "" {
		v.Printf("Map:      %s\n", p.Canvas.MapFileName)
	}
	v.Printf("Zoom:     %d%%\n", int(p.Zoom*100+0.5))
	if p.GridSize > 0 {
		v.Printf("Grid:     %dpx\n", p.GridSize)
	} else {
		v.Println("Grid:     off")
	}
	v.Printf("Elements: %d (next id el_%04d)\n", p.Elements, p.NextID)
	if p.Selected != "" {
		v.Printf("Selected: %s\n", p.Selected)
	}
	v.Printf("History:  %d undo, %d redo\n", p.Undo, p.Redo)
}

// RegistrySections prints the toolbar sections with their element types.
func (pui *ProjectUI) RegistrySections(sections []registry.Section) {
	for _, s := range sections {
		pui.visualizer.PrintMarkup(fmt.Sprintf("{{blue}}%s{{default}}", s.Title))
		for _, key := range s.Types {
			if t, ok := registry.Lookup(key); ok {
				pui.registryLine(t)
			}
		}
	}
}

// RegistryTypes prints a flat list of element types.
func (pui *ProjectUI) RegistryTypes(types []registry.ElementType) {
	for _, t := range types {
		pui.registryLine(t)
	}
}

func (pui *ProjectUI) registryLine(t registry.ElementType) {
	line := fmt.Sprintf("  {{%s}}■{{default}} %-22s %s {{gray}}%dx%d{{default}}", t.IconColor, t.Key, t.Label, t.Defaults.W, t.Defaults.H)
	if t.Spawn != model.SpawnCenter {
		line += fmt.Sprintf(" {{gray}}(%s edge){{default}}", t.Spawn)
	}
	pui.visualizer.PrintMarkup(line)
}
