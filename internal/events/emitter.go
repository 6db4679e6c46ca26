package events

import (
	"context"
	"log/slog"
	"sync"
)

// subscription pairs a handler with the event type it listens to.
// An empty eventType matches every event.
type subscription struct {
	eventType string
	handler   EventHandler
}

// InMemoryEventEmitter is a simple implementation of the EventEmitter interface
// that stores registered handlers in memory and dispatches events to them
// synchronously, in registration order.
type InMemoryEventEmitter struct {
	subscriptions []subscription
	mu            sync.RWMutex
	logger        *slog.Logger
}

// NewInMemoryEventEmitter creates a new instance of InMemoryEventEmitter.
func NewInMemoryEventEmitter(logger *slog.Logger) *InMemoryEventEmitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventEmitter{
		subscriptions: make([]subscription, 0),
		logger:        logger.With("component", "in_memory_event_emitter"),
	}
}

// RegisterHandler adds a handler that receives every event.
func (e *InMemoryEventEmitter) RegisterHandler(handler EventHandler) {
	e.Subscribe("", handler)
}

// Subscribe adds a handler that only receives events of the given type.
func (e *InMemoryEventEmitter) Subscribe(eventType string, handler EventHandler) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subscriptions = append(e.subscriptions, subscription{eventType: eventType, handler: handler})
	e.logger.Debug("registered new event handler",
		"event_type", eventType,
		"handler_count", len(e.subscriptions))
}

// EmitEvent publishes the given event to all matching handlers.
// If any handler returns an error, the event will still be sent to all other handlers,
// and the first error encountered will be returned.
func (e *InMemoryEventEmitter) EmitEvent(ctx context.Context, event *Event) error {
	e.mu.RLock()
	handlers := make([]EventHandler, 0, len(e.subscriptions))
	for _, sub := range e.subscriptions {
		if sub.eventType == "" || sub.eventType == event.Type {
			handlers = append(handlers, sub.handler)
		}
	}
	e.mu.RUnlock()

	e.logger.Debug("emitting event",
		"event_id", event.ID,
		"event_type", event.Type,
		"handler_count", len(handlers))

	if len(handlers) == 0 {
		e.logger.Warn("no handlers registered for event",
			"event_id", event.ID,
			"event_type", event.Type)
		return nil
	}

	var firstErr error
	for i, handler := range handlers {
		if err := handler.HandleEvent(ctx, event); err != nil {
			e.logger.Error("handler failed to process event",
				"error", err,
				"handler_index", i,
				"event_id", event.ID,
				"event_type", event.Type)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}
