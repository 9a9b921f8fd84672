package data

import (
	"context"
	"math"

	"mcoo/local-app/internal/event"
	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
)

const (
	MinZoom = 0.25
	MaxZoom = 8
)

// Canvas returns the canvas dimensions and map reference.
func (em *ElementManager) Canvas() model.Canvas {
	return em.canvas
}

// Zoom returns the current zoom factor.
func (em *ElementManager) Zoom() float64 {
	return em.zoom
}

// GridSize returns the grid spacing in pixels; 0 means no grid.
func (em *ElementManager) GridSize() int {
	return em.gridSize
}

// ZoomSet sets the zoom factor, clamped to [MinZoom, MaxZoom]. NaN is ignored.
func (em *ElementManager) ZoomSet(z float64) {
	if math.IsNaN(z) {
		return
	}
	em.zoom = min(max(z, MinZoom), MaxZoom)
	em.publish(event.ViewChanged, em.zoom)
}

// ZoomReset returns to 1:1.
func (em *ElementManager) ZoomReset() {
	em.ZoomSet(1)
}

// GridSizeSet sets the grid spacing; 0 or less turns the grid off.
func (em *ElementManager) GridSizeSet(n int) {
	em.gridSize = max(n, 0)
	em.publish(event.ViewChanged, em.gridSize)
}

// CanvasSizeSet resizes the canvas. Non-positive dimensions are ignored.
func (em *ElementManager) CanvasSizeSet(width, height int) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	em.canvas.Width, em.canvas.Height = width, height
	em.logger.Debug(context.Background(), "Canvas resized", log.Fields{"width": width, "height": height})
	em.publish(event.ViewChanged, em.canvas)
	return true
}

// MapImageSet installs a map image: the canvas takes the image size and the
// zoom returns to 1.
func (em *ElementManager) MapImageSet(img model.MapImage) bool {
	if img.Width <= 0 || img.Height <= 0 {
		return false
	}
	em.canvas = model.Canvas{
		Width:       img.Width,
		Height:      img.Height,
		MapFileName: img.FileName,
		MapPath:     img.Path,
	}
	em.zoom = 1

	em.logger.Info(context.Background(), "Map image set", log.Fields{"file": img.FileName, "width": img.Width, "height": img.Height})
	em.publish(event.ViewChanged, em.canvas)
	return true
}

// MapImageClear drops the map reference and keeps the canvas size.
func (em *ElementManager) MapImageClear() {
	em.canvas.MapFileName = ""
	em.canvas.MapPath = ""
	em.publish(event.ViewChanged, em.canvas)
}
