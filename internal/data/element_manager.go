package data

import (
	"context"
	"fmt"
	"math"
	"time"

	"mcoo/local-app/internal/config"
	"mcoo/local-app/internal/event"
	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
)

// DuplicateOffset is the x and y shift applied to a duplicated element.
const DuplicateOffset = 20

// ElementManager is the single source of truth for canvas contents, selection,
// canvas size, map reference and view state. List order is z-order: index 0
// renders first, the last element renders on top.
//
// ElementManager is not safe for concurrent use; callers deliver one
// operation at a time.
type ElementManager struct {
	elements   []model.Element
	selectedID string
	canvas     model.Canvas
	zoom       float64
	gridSize   int
	savedPrint string

	ids          *IDGenerator
	history      *HistoryManager
	eventManager *event.EventManager
	logger       *log.Logger
	now          func() time.Time
}

// NewElementManager creates an empty store sized from cfg.
func NewElementManager(cfg *model.Config, eventManager *event.EventManager, logger *log.Logger) (*ElementManager, error) {
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}
	ctx := context.Background()
	logger.Info(ctx, "Creating new ElementManager", nil)

	if cfg == nil {
		logger.Error(ctx, "Config not initialized", nil)
		return nil, fmt.Errorf("config not initialized")
	}
	if eventManager == nil {
		logger.Error(ctx, "EventManager not initialized", nil)
		return nil, fmt.Errorf("eventManager not initialized")
	}

	width, height := cfg.CanvasWidth, cfg.CanvasHeight
	if width <= 0 {
		width = config.DefaultCanvasWidth
	}
	if height <= 0 {
		height = config.DefaultCanvasHeight
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = config.DefaultHistoryLimit
	}

	em := &ElementManager{
		elements:     []model.Element{},
		canvas:       model.Canvas{Width: width, Height: height},
		zoom:         1,
		ids:          NewIDGenerator(),
		history:      NewHistoryManager(limit),
		eventManager: eventManager,
		logger:       logger,
		now:          time.Now,
	}
	em.savedPrint = em.Fingerprint()

	logger.Info(ctx, "ElementManager created successfully", log.Fields{"canvasWidth": width, "canvasHeight": height, "historyLimit": limit})
	return em, nil
}

// ElementAdd places a new element and returns its id. Fields selected by
// filter override the baseline (visible, unlocked, unrotated, empty body).
// The element is centered on the canvas unless info.Spawn pins it to the
// top or bottom edge at full canvas width. The new element becomes topmost
// and selected.
func (em *ElementManager) ElementAdd(info model.ElementInfo, filter model.ElementFilter) string {
	ctx := context.Background()

	el := model.Element{
		ID:      em.ids.Next(),
		Visible: true,
	}
	filter.Apply(&el, info)

	switch info.Spawn {
	case model.SpawnTop:
		el.X, el.Y, el.W = 0, 0, em.canvas.Width
	case model.SpawnBottom:
		el.X, el.Y, el.W = 0, em.canvas.Height-el.H, em.canvas.Width
	default:
		el.X = round(float64(em.canvas.Width)/2 - float64(el.W)/2)
		el.Y = round(float64(em.canvas.Height)/2 - float64(el.H)/2)
	}

	em.pushHistory()
	em.elements = append(em.elements, el)
	em.selectedID = el.ID

	em.logger.Debug(ctx, "Element added", log.Fields{"id": el.ID, "type": el.Type, "x": el.X, "y": el.Y, "spawn": info.Spawn.String()})
	em.publish(event.ElementsChanged, el.ID)
	em.publish(event.SelectionChanged, el.ID)
	return el.ID
}

// ElementUpdate merges the filtered fields onto the element without recording
// history. This is the live path for drags and property edits.
func (em *ElementManager) ElementUpdate(id string, info model.ElementInfo, filter model.ElementFilter) bool {
	i := em.indexOf(id)
	if i < 0 {
		return false
	}
	filter.Apply(&em.elements[i], info)
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementUpdateWithHistory records a snapshot and then merges like ElementUpdate.
// A snapshot is recorded for every call, including calls naming an unknown id.
func (em *ElementManager) ElementUpdateWithHistory(id string, info model.ElementInfo, filter model.ElementFilter) bool {
	em.pushHistory()
	i := em.indexOf(id)
	if i < 0 {
		em.logger.Debug(context.Background(), "Element not found for update", log.Fields{"id": id})
		return false
	}
	filter.Apply(&em.elements[i], info)
	em.logger.Debug(context.Background(), "Element updated", log.Fields{"id": id})
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementDelete removes the element and clears the selection, whichever
// element was selected.
func (em *ElementManager) ElementDelete(id string) bool {
	em.pushHistory()

	i := em.indexOf(id)
	if i >= 0 {
		em.elements = append(em.elements[:i:i], em.elements[i+1:]...)
	}
	em.selectedID = ""

	em.logger.Debug(context.Background(), "Element deleted", log.Fields{"id": id, "found": i >= 0})
	em.publish(event.ElementsChanged, id)
	em.publish(event.SelectionChanged, "")
	return i >= 0
}

// ElementsClear removes every element. An empty store is left untouched.
func (em *ElementManager) ElementsClear() bool {
	if len(em.elements) == 0 {
		return false
	}
	em.pushHistory()
	count := len(em.elements)
	em.elements = []model.Element{}
	em.selectedID = ""

	em.logger.Debug(context.Background(), "Elements cleared", log.Fields{"count": count})
	em.publish(event.ElementsChanged, nil)
	em.publish(event.SelectionChanged, "")
	return true
}

// ElementDuplicate copies the element under a fresh id, offset by
// DuplicateOffset on both axes, as the new topmost and selected element.
// It returns the id of the copy.
func (em *ElementManager) ElementDuplicate(id string) (string, bool) {
	i := em.indexOf(id)
	if i < 0 {
		return "", false
	}

	dup := em.elements[i]
	dup.ID = em.ids.Next()
	dup.X += DuplicateOffset
	dup.Y += DuplicateOffset

	em.pushHistory()
	em.elements = append(em.elements, dup)
	em.selectedID = dup.ID

	em.logger.Debug(context.Background(), "Element duplicated", log.Fields{"source": id, "id": dup.ID})
	em.publish(event.ElementsChanged, dup.ID)
	em.publish(event.SelectionChanged, dup.ID)
	return dup.ID, true
}

// ElementToggleVisibility flips the visible flag without recording history.
func (em *ElementManager) ElementToggleVisibility(id string) bool {
	i := em.indexOf(id)
	if i < 0 {
		return false
	}
	em.elements[i].Visible = !em.elements[i].Visible
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementToggleLock flips the locked flag without recording history.
func (em *ElementManager) ElementToggleLock(id string) bool {
	i := em.indexOf(id)
	if i < 0 {
		return false
	}
	em.elements[i].Locked = !em.elements[i].Locked
	em.publish(event.ElementsChanged, id)
	return true
}

// ElementSelect sets the selection directly. The id is not validated;
// an empty id clears the selection.
func (em *ElementManager) ElementSelect(id string) {
	em.selectedID = id
	em.publish(event.SelectionChanged, id)
}

// Undo restores the state before the last recorded mutation and clears the selection.
func (em *ElementManager) Undo() bool {
	prev, ok := em.history.Undo(em.elements)
	if !ok {
		return false
	}
	em.elements = prev
	em.selectedID = ""

	em.logger.Debug(context.Background(), "Undo", log.Fields{"past": em.history.PastLen(), "future": em.history.FutureLen()})
	em.publish(event.ElementsChanged, nil)
	em.publish(event.SelectionChanged, "")
	em.publish(event.HistoryChanged, nil)
	return true
}

// Redo reapplies the last undone mutation and clears the selection.
func (em *ElementManager) Redo() bool {
	next, ok := em.history.Redo(em.elements)
	if !ok {
		return false
	}
	em.elements = next
	em.selectedID = ""

	em.logger.Debug(context.Background(), "Redo", log.Fields{"past": em.history.PastLen(), "future": em.history.FutureLen()})
	em.publish(event.ElementsChanged, nil)
	em.publish(event.SelectionChanged, "")
	em.publish(event.HistoryChanged, nil)
	return true
}

// Elements returns a copy of the element list in z-order.
func (em *ElementManager) Elements() []model.Element {
	return model.ElementsCopy(em.elements)
}

// Element returns a copy of the element with the given id.
func (em *ElementManager) Element(id string) (model.Element, bool) {
	i := em.indexOf(id)
	if i < 0 {
		return model.Element{}, false
	}
	return em.elements[i], true
}

// ElementIndex returns the z-order position of the element, or -1.
func (em *ElementManager) ElementIndex(id string) int {
	return em.indexOf(id)
}

// Len returns the number of elements.
func (em *ElementManager) Len() int {
	return len(em.elements)
}

// SelectedID returns the selected id, or "" when nothing is selected.
func (em *ElementManager) SelectedID() string {
	return em.selectedID
}

// Selected returns a copy of the selected element.
func (em *ElementManager) Selected() (model.Element, bool) {
	if em.selectedID == "" {
		return model.Element{}, false
	}
	return em.Element(em.selectedID)
}

// HistoryPastLen returns the number of undo steps available.
func (em *ElementManager) HistoryPastLen() int {
	return em.history.PastLen()
}

// HistoryFutureLen returns the number of redo steps available.
func (em *ElementManager) HistoryFutureLen() int {
	return em.history.FutureLen()
}

// NextID returns the numeric suffix of the id the next new element will get.
func (em *ElementManager) NextID() int {
	return em.ids.Peek()
}

func (em *ElementManager) indexOf(id string) int {
	for i := range em.elements {
		if em.elements[i].ID == id {
			return i
		}
	}
	return -1
}

// pushHistory records the current list before a mutation.
func (em *ElementManager) pushHistory() {
	em.history.HistoryAdd(em.elements)
	em.publish(event.HistoryChanged, nil)
}

func (em *ElementManager) publish(t event.EventType, data interface{}) {
	em.eventManager.Publish(event.Event{Type: t, Data: data})
}

// round rounds half towards positive infinity, matching the editor's
// pixel rounding for negative coordinates.
func round(f float64) int {
	return int(math.Floor(f + 0.5))
}
