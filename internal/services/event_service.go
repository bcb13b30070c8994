package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/isdelr/event-service/internal/clock"
	"github.com/isdelr/event-service/internal/models"
	"github.com/isdelr/event-service/internal/store"
	"github.com/isdelr/event-service/internal/websocket"
	"github.com/rs/zerolog/log"
)

// EventServiceProvider defines the interface for event services.
type EventServiceProvider interface {
	CreateEvent(payload models.CreateEventPayload) (models.Event, error)
	GetAllEvents() []models.Event
	GetEventByID(id string) (models.Event, error)
}

// Publisher receives encoded notifications about created events.
type Publisher interface {
	Publish(message []byte)
}

// EventService provides business logic for event management.
type EventService struct {
	store     *store.EventStore
	publisher Publisher
	clock     clock.Clock
}

// NewEventService creates a new EventService. publisher may be nil.
func NewEventService(store *store.EventStore, publisher Publisher, clk clock.Clock) *EventService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &EventService{
		store:     store,
		publisher: publisher,
		clock:     clk,
	}
}

// CreateEvent validates the payload and stores a new event.
func (s *EventService) CreateEvent(payload models.CreateEventPayload) (models.Event, error) {
	if err := payload.Validate(); err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		ID:          uuid.NewString(),
		Title:       payload.Title.Value,
		Description: payload.Description,
		Date:        payload.Date.Value,
		Location:    payload.Location,
		CreatedAt:   s.clock.Now(),
	}

	if err := s.store.Put(event); err != nil {
		return models.Event{}, fmt.Errorf("store event %s: %w", event.ID, err)
	}

	log.Info().Str("event_id", event.ID).Str("title", event.Title).Msg("Event created")
	s.notify(event)
	return event, nil
}

// GetAllEvents returns every stored event.
func (s *EventService) GetAllEvents() []models.Event {
	return s.store.List()
}

// GetEventByID retrieves a single event by its ID.
func (s *EventService) GetEventByID(id string) (models.Event, error) {
	event, err := s.store.Get(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.Event{}, models.ErrEventNotFound
		}
		return models.Event{}, err
	}
	return event, nil
}

func (s *EventService) notify(event models.Event) {
	if s.publisher == nil {
		return
	}
	msg, err := websocket.NewMessage(websocket.ActionEventCreated, event)
	if err != nil {
		log.Error().Err(err).Str("event_id", event.ID).Msg("Failed to encode event notification")
		return
	}
	s.publisher.Publish(msg)
}
