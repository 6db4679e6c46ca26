package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-vocab/internal/events"
)

// MockEventEmitter implements events.EventEmitter and records every event.
type MockEventEmitter struct {
	mu     sync.Mutex
	Events []*events.Event
	Err    error
}

var _ events.EventEmitter = (*MockEventEmitter)(nil)

// EmitEvent implements the events.EventEmitter interface
func (m *MockEventEmitter) EmitEvent(_ context.Context, event *events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, event)
	return m.Err
}

// Emitted returns a copy of the recorded events.
func (m *MockEventEmitter) Emitted() []*events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*events.Event, len(m.Events))
	copy(out, m.Events)
	return out
}
