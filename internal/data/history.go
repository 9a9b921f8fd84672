// Package data provides the editor state core: the element store,
// its undo/redo history and project export/import.
// This file contains the snapshot history used for undo and redo.
package data

import "mcoo/local-app/internal/model"

// HistoryManager keeps bounded past and future stacks of element list snapshots.
// past runs oldest to newest; future holds redo candidates, nearest first.
type HistoryManager struct {
	past   [][]model.Element
	future [][]model.Element
	limit  int
}

// NewHistoryManager creates a HistoryManager holding at most limit entries per stack.
func NewHistoryManager(limit int) *HistoryManager {
	if limit < 1 {
		limit = 1
	}
	return &HistoryManager{limit: limit}
}

// HistoryAdd records a snapshot of the state a mutation is about to change.
// Any redo candidates are discarded.
func (hm *HistoryManager) HistoryAdd(current []model.Element) {
	hm.past = append(hm.past, model.ElementsCopy(current))
	if len(hm.past) > hm.limit {
		hm.past = hm.past[len(hm.past)-hm.limit:]
	}
	hm.future = nil
}

// Undo pops the newest past snapshot and pushes current onto the future stack.
// It reports false when there is nothing to undo.
func (hm *HistoryManager) Undo(current []model.Element) ([]model.Element, bool) {
	if len(hm.past) == 0 {
		return nil, false
	}
	prev := hm.past[len(hm.past)-1]
	hm.past = hm.past[:len(hm.past)-1]

	future := make([][]model.Element, 0, len(hm.future)+1)
	future = append(future, model.ElementsCopy(current))
	future = append(future, hm.future...)
	if len(future) > hm.limit {
		future = future[:hm.limit]
	}
	hm.future = future

	return prev, true
}

// Redo takes the nearest future snapshot and pushes current onto the past stack.
// It reports false when there is nothing to redo.
func (hm *HistoryManager) Redo(current []model.Element) ([]model.Element, bool) {
	if len(hm.future) == 0 {
		return nil, false
	}
	next := hm.future[0]
	hm.future = hm.future[1:]

	hm.past = append(hm.past, model.ElementsCopy(current))
	if len(hm.past) > hm.limit {
		hm.past = hm.past[len(hm.past)-hm.limit:]
	}

	return next, true
}

// HistoryReset clears both stacks.
func (hm *HistoryManager) HistoryReset() {
	hm.past = nil
	hm.future = nil
}

func (hm *HistoryManager) PastLen() int   { return len(hm.past) }
func (hm *HistoryManager) FutureLen() int { return len(hm.future) }
func (hm *HistoryManager) Limit() int     { return hm.limit }

// Past returns copies of the past snapshots, oldest first.
func (hm *HistoryManager) Past() [][]model.Element {
	out := make([][]model.Element, len(hm.past))
	for i, s := range hm.past {
		out[i] = model.ElementsCopy(s)
	}
	return out
}
