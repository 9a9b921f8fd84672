// Package event lets observers follow editor state changes without a direct dependency
package event

import (
	"context"
	"sync"

	"mcoo/local-app/internal/log"
)

// EventType represents the type of event
type EventType int

const (
	ElementsChanged EventType = iota
	SelectionChanged
	HistoryChanged
	ViewChanged
	ProjectLoaded
)

// String returns the string representation of the EventType
func (t EventType) String() string {
	switch t {
	case ElementsChanged:
		return "elements_changed"
	case SelectionChanged:
		return "selection_changed"
	case HistoryChanged:
		return "history_changed"
	case ViewChanged:
		return "view_changed"
	case ProjectLoaded:
		return "project_loaded"
	default:
		return "unknown"
	}
}

// Event represents an event with its type and associated data
type Event struct {
	Type EventType
	Data interface{}
}

// EventHandler is a function type for event handlers
type EventHandler func(Event)

// EventManager manages event subscriptions and publications
type EventManager struct {
	subscribers map[EventType][]EventHandler
	mu          sync.RWMutex
	logger      *log.Logger
}

// NewEventManager creates a new EventManager instance
func NewEventManager(logger *log.Logger) *EventManager {
	return &EventManager{
		subscribers: make(map[EventType][]EventHandler),
		logger:      logger,
	}
}

// Subscribe adds a new event handler for a specific event type
func (em *EventManager) Subscribe(eventType EventType, handler EventHandler) {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.subscribers[eventType] = append(em.subscribers[eventType], handler)
}

// Publish delivers an event to all subscribed handlers in subscription order.
// Handlers run on the caller's goroutine; a panicking handler is logged and skipped.
func (em *EventManager) Publish(event Event) {
	em.mu.RLock()
	handlers := append([]EventHandler(nil), em.subscribers[event.Type]...)
	em.mu.RUnlock()

	for _, handler := range handlers {
		em.call(handler, event)
	}
}

func (em *EventManager) call(h EventHandler, event Event) {
	defer func() {
		if r := recover(); r != nil && em.logger != nil {
			em.logger.Error(context.Background(), "Panic in event handler", log.Fields{
				"event": event.Type.String(),
				"panic": r,
			})
		}
	}()
	h(event)
}
