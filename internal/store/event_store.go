package store

import (
	"errors"
	"sync"

	"github.com/isdelr/event-service/internal/models"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrDuplicateID = errors.New("duplicate id")
)

// EventStore holds every event in memory for the lifetime of the process.
// It is safe for concurrent use.
type EventStore struct {
	mu     sync.RWMutex
	events map[string]models.Event
	order  []string // ids in insertion order
}

// NewEventStore creates an empty EventStore.
func NewEventStore() *EventStore {
	return &EventStore{
		events: make(map[string]models.Event),
	}
}

// Put inserts a new event. Existing ids are never overwritten.
func (s *EventStore) Put(event models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[event.ID]; exists {
		return ErrDuplicateID
	}
	s.events[event.ID] = event
	s.order = append(s.order, event.ID)
	return nil
}

// Get returns the event stored under id.
func (s *EventStore) Get(id string) (models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	event, ok := s.events[id]
	if !ok {
		return models.Event{}, ErrNotFound
	}
	return event, nil
}

// List returns a copy of all stored events.
func (s *EventStore) List() []models.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]models.Event, 0, len(s.order))
	for _, id := range s.order {
		events = append(events, s.events[id])
	}
	return events
}

// Len returns the number of stored events.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events)
}
