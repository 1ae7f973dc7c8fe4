package events

import (
	"log/slog"
	"slices"
	"sync"
)

// InMemoryEventStore keeps every stream in memory. Subscribers are called
// synchronously in append order once the store lock is released.
type InMemoryEventStore struct {
	mu          sync.RWMutex
	streams     map[string][]Event
	log         []Event
	subscribers map[string][]EventHandler
	logger      *slog.Logger
}

func NewInMemoryEventStore(logger *slog.Logger) *InMemoryEventStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &InMemoryEventStore{
		streams:     make(map[string][]Event),
		subscribers: make(map[string][]EventHandler),
		logger:      logger,
	}
}

// AppendEvent stamps the event with the next version of its stream
func (s *InMemoryEventStore) AppendEvent(streamID string, event Event) error {
	s.mu.Lock()
	stamped := BaseEvent{
		EventType:    event.Type(),
		Stream:       streamID,
		EventData:    event.Data(),
		EventTime:    event.Timestamp(),
		EventVersion: len(s.streams[streamID]) + 1,
	}
	s.streams[streamID] = append(s.streams[streamID], stamped)
	s.log = append(s.log, stamped)
	handlers := slices.Clone(s.subscribers[stamped.EventType])
	s.mu.Unlock()

	s.dispatch(handlers, stamped)
	return nil
}

// ReadEvents returns a copy of the stream starting at fromVersion (1-based)
func (s *InMemoryEventStore) ReadEvents(streamID string, fromVersion int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stream := s.streams[streamID]
	start := max(fromVersion, 1) - 1
	if start >= len(stream) {
		return []Event{}, nil
	}
	return slices.Clone(stream[start:]), nil
}

// ReadAllEvents returns a copy of every event from the 0-based position on
func (s *InMemoryEventStore) ReadAllEvents(fromPosition int) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := max(fromPosition, 0)
	if start >= len(s.log) {
		return []Event{}, nil
	}
	return slices.Clone(s.log[start:]), nil
}

// Len returns the number of events across all streams
func (s *InMemoryEventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.log)
}

func (s *InMemoryEventStore) Subscribe(eventTypes []string, handler EventHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, eventType := range eventTypes {
		s.subscribers[eventType] = append(s.subscribers[eventType], handler)
	}
	return nil
}

func (s *InMemoryEventStore) Unsubscribe(handler EventHandler) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for eventType, handlers := range s.subscribers {
		s.subscribers[eventType] = slices.DeleteFunc(handlers, func(h EventHandler) bool { return h == handler })
	}
	return nil
}

// dispatch runs handlers in subscription order; a failing handler does not stop the rest
func (s *InMemoryEventStore) dispatch(handlers []EventHandler, event Event) {
	for _, h := range handlers {
		if !h.CanHandle(event.Type()) {
			continue
		}
		if err := h.Handle(event); err != nil {
			s.logger.Error("Event handler failed",
				"event", event.Type(),
				"stream", event.StreamID(),
				"version", event.Version(),
				"error", err)
		}
	}
}
