package data

import (
	"context"
	"math"

	"mcoo/local-app/internal/event"
	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
)

// Transform is the outcome of a resize/rotate gesture: the new top-left
// position, the scale applied to the current size, and the absolute rotation.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// MaxCoordinate bounds positions and sizes accepted from direct manipulation.
const MaxCoordinate = 1 << 30

// ElementMove commits a drag. The position is rounded to whole pixels and
// snapped to the grid when one is set. Locked elements are left in place,
// and so is any element given a non-finite or out-of-range position.
func (em *ElementManager) ElementMove(id string, x, y float64) bool {
	i := em.indexOf(id)
	if i < 0 || em.elements[i].Locked || !inRange(x) || !inRange(y) {
		return false
	}

	el := &em.elements[i]
	el.X, el.Y = em.snap(x), em.snap(y)

	em.logger.Debug(context.Background(), "Element moved", log.Fields{"id": id, "x": el.X, "y": el.Y})
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementTransform commits a resize/rotate gesture. Width and height never
// drop below model.MinElementSize. Locked elements are left untouched, as are
// elements whose resulting geometry would be non-finite or out of range.
func (em *ElementManager) ElementTransform(id string, t Transform) bool {
	i := em.indexOf(id)
	if i < 0 || em.elements[i].Locked {
		return false
	}

	el := &em.elements[i]
	w, h := float64(el.W)*t.ScaleX, float64(el.H)*t.ScaleY
	if !inRange(t.X) || !inRange(t.Y) || !inRange(w) || !inRange(h) ||
		math.IsNaN(t.Rotation) || math.IsInf(t.Rotation, 0) {
		return false
	}

	el.X = round(t.X)
	el.Y = round(t.Y)
	el.W = max(model.MinElementSize, round(w))
	el.H = max(model.MinElementSize, round(h))
	el.Rotation = t.Rotation

	em.logger.Debug(context.Background(), "Element transformed", log.Fields{"id": id, "w": el.W, "h": el.H, "rotation": el.Rotation})
	em.publish(event.ElementsChanged, id)
	return true
}

func (em *ElementManager) snap(v float64) int {
	if em.gridSize <= 0 {
		return round(v)
	}
	g := float64(em.gridSize)
	return round(v/g) * em.gridSize
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && math.Abs(v) <= MaxCoordinate
}
