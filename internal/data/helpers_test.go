package data

import (
	"io"
	"testing"
	"time"

	"mcoo/local-app/internal/config"
	"mcoo/local-app/internal/event"
	"mcoo/local-app/internal/log"
	"mcoo/local-app/internal/model"
)

func newTestManager(t *testing.T) *ElementManager {
	t.Helper()
	logger := log.New(io.Discard, log.LevelError)
	t.Cleanup(func() { logger.Close() })

	em, err := NewElementManager(config.ConfigDefault(), event.NewEventManager(logger), logger)
	if err != nil {
		t.Fatalf("NewElementManager() error = %v", err)
	}
	em.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }
	return em
}

func addBox(em *ElementManager, label string, w, h int) string {
	return em.ElementAdd(
		model.ElementInfo{Type: "unit", Label: label, W: w, H: h, Color: "#000000", Opacity: 1},
		model.ElementFilter{Type: true, Label: true, W: true, H: true, Color: true, Opacity: true},
	)
}

func ids(elements []model.Element) []string {
	out := make([]string, len(elements))
	for i, el := range elements {
		out[i] = el.ID
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
