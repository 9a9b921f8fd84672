package data

import (
	"context"

	"mcoo/local-app/internal/config"
	"mcoo/local-app/internal/event"
	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
)

const (
	DefaultProjectTitle   = "MCOO Project"
	ProjectClassification = "UNCLASSIFIED//FOUO"
	createdLayout         = "2006-01-02T15:04:05.000Z07:00"
)

// ProjectExport builds the project document for the current state. The
// document shares nothing with the store.
func (em *ElementManager) ProjectExport(title string) model.Project {
	if title == "" {
		title = DefaultProjectTitle
	}
	return model.Project{
		Version: model.ProjectVersion,
		Meta: model.ProjectMeta{
			Title:          title,
			Created:        em.now().UTC().Format(createdLayout),
			Classification: ProjectClassification,
		},
		Canvas:   em.projectCanvas(),
		Elements: model.ElementsCopy(em.elements),
	}
}

// ProjectImport replaces the store state with the document. Selection and
// both history stacks are cleared, since a load is a fresh baseline, and the
// id generator is reseeded past every loaded id.
func (em *ElementManager) ProjectImport(doc model.Project) {
	ctx := context.Background()

	em.elements = model.ElementsCopy(doc.Elements)
	width, height := doc.Canvas.Width, doc.Canvas.Height
	if width <= 0 {
		width = config.DefaultCanvasWidth
	}
	if height <= 0 {
		height = config.DefaultCanvasHeight
	}
	em.canvas = model.Canvas{Width: width, Height: height, MapFileName: doc.Canvas.MapFileName}
	em.selectedID = ""
	em.history.HistoryReset()
	em.ids.Reseed(nextSeed(em.elements))
	em.MarkSaved()

	em.logger.Info(ctx, "Project imported", log.Fields{
		"elements": len(em.elements),
		"width":    width,
		"height":   height,
		"nextID":   em.ids.Peek(),
	})
	em.publish(event.ProjectLoaded, doc.Meta.Title)
	em.publish(event.ElementsChanged, nil)
	em.publish(event.SelectionChanged, "")
	em.publish(event.HistoryChanged, nil)
}

func (em *ElementManager) projectCanvas() model.ProjectCanvas {
	return model.ProjectCanvas{
		Width:       em.canvas.Width,
		Height:      em.canvas.Height,
		MapFileName: em.canvas.MapFileName,
	}
}
