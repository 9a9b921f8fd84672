package data

import (
	"fmt"
	"testing"

	"mcoo/local-app/internal/model"
)

func snapshot(labels ...string) []model.Element {
	out := make([]model.Element, len(labels))
	for i, l := range labels {
		out[i] = model.Element{ID: fmt.Sprintf("el_%04d", i+1), Label: l}
	}
	return out
}

func TestHistoryManager_LimitEvictsOldest(t *testing.T) {
	hm := NewHistoryManager(50)
	for i := 0; i < 60; i++ {
		hm.HistoryAdd(snapshot(fmt.Sprint(i)))
	}

	if got := hm.PastLen(); got != 50 {
		t.Fatalf("PastLen() = %d, want 50", got)
	}
	past := hm.Past()
	if got := past[0][0].Label; got != "10" {
		t.Errorf("oldest kept snapshot = %q, want %q", got, "10")
	}
	if got := past[49][0].Label; got != "59" {
		t.Errorf("newest snapshot = %q, want %q", got, "59")
	}
}

func TestHistoryManager_UndoRedo(t *testing.T) {
	hm := NewHistoryManager(50)
	if _, ok := hm.Undo(nil); ok {
		t.Errorf("Undo() on empty history reported true")
	}
	if _, ok := hm.Redo(nil); ok {
		t.Errorf("Redo() on empty history reported true")
	}

	hm.HistoryAdd(snapshot())
	hm.HistoryAdd(snapshot("a"))
	current := snapshot("a", "b")

	prev, ok := hm.Undo(current)
	if !ok || len(prev) != 1 {
		t.Fatalf("Undo() = (%v, %v), want one element", prev, ok)
	}
	if hm.PastLen() != 1 || hm.FutureLen() != 1 {
		t.Errorf("after undo past/future = %d/%d, want 1/1", hm.PastLen(), hm.FutureLen())
	}

	next, ok := hm.Redo(prev)
	if !ok || len(next) != 2 || next[1].Label != "b" {
		t.Fatalf("Redo() = (%v, %v), want the two element state", next, ok)
	}
	if hm.PastLen() != 2 || hm.FutureLen() != 0 {
		t.Errorf("after redo past/future = %d/%d, want 2/0", hm.PastLen(), hm.FutureLen())
	}
}

func TestHistoryManager_AddClearsFuture(t *testing.T) {
	hm := NewHistoryManager(50)
	hm.HistoryAdd(snapshot())
	hm.Undo(snapshot("a"))
	if hm.FutureLen() != 1 {
		t.Fatalf("FutureLen() = %d, want 1", hm.FutureLen())
	}

	hm.HistoryAdd(snapshot("b"))
	if hm.FutureLen() != 0 {
		t.Errorf("FutureLen() after HistoryAdd = %d, want 0", hm.FutureLen())
	}
}

func TestHistoryManager_FutureLimit(t *testing.T) {
	hm := NewHistoryManager(3)
	for i := 0; i < 3; i++ {
		hm.HistoryAdd(snapshot(fmt.Sprint(i)))
	}
	current := snapshot("current")
	for hm.PastLen() > 0 {
		current, _ = hm.Undo(current)
	}
	if hm.FutureLen() != 3 {
		t.Errorf("FutureLen() = %d, want 3", hm.FutureLen())
	}
}

func TestHistoryManager_SnapshotsAreCopies(t *testing.T) {
	hm := NewHistoryManager(50)
	state := snapshot("before")
	hm.HistoryAdd(state)
	state[0].Label = "after"

	prev, _ := hm.Undo(state)
	if prev[0].Label != "before" {
		t.Errorf("snapshot label = %q, want %q", prev[0].Label, "before")
	}
}

func TestHistoryManager_Reset(t *testing.T) {
	hm := NewHistoryManager(50)
	hm.HistoryAdd(snapshot())
	hm.HistoryAdd(snapshot("a"))
	hm.Undo(snapshot("a", "b"))

	hm.HistoryReset()
	if hm.PastLen() != 0 || hm.FutureLen() != 0 {
		t.Errorf("after reset past/future = %d/%d, want 0/0", hm.PastLen(), hm.FutureLen())
	}
}
