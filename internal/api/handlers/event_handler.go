package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/event-service/internal/models"
	"github.com/isdelr/event-service/internal/services"
	"github.com/rs/zerolog/log"
)

const (
	msgInvalidEventData = "Invalid event data"
	msgEventNotFound    = "Event not found"
)

// EventHandler handles HTTP requests related to events.
type EventHandler struct {
	service services.EventServiceProvider
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(service services.EventServiceProvider) *EventHandler {
	return &EventHandler{service: service}
}

// Create handles the request to create a new event.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload models.CreateEventPayload
	if err := decodeJSON(r.Body, &payload); err != nil {
		log.Warn().Err(err).Msg("Rejected unparseable event body")
		writeError(w, http.StatusBadRequest, msgInvalidEventData)
		return
	}

	event, err := h.service.CreateEvent(payload)
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			log.Warn().Strs("missing", verr.Missing).Msg("Rejected incomplete event")
			writeError(w, http.StatusBadRequest, msgInvalidEventData+": missing "+strings.Join(verr.Missing, ", "))
		case errors.Is(err, models.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, msgInvalidEventData)
		default:
			log.Error().Err(err).Msg("Failed to create event")
			writeError(w, http.StatusInternalServerError, "Failed to create event")
		}
		return
	}

	writeJSON(w, http.StatusCreated, event)
}

// GetAll handles the request to list every event.
func (h *EventHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.GetAllEvents())
}

// Get handles the request to get a single event by its ID.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	event, err := h.service.GetEventByID(id)
	if err != nil {
		if errors.Is(err, models.ErrEventNotFound) {
			writeError(w, http.StatusNotFound, msgEventNotFound)
			return
		}
		log.Error().Err(err).Str("event_id", id).Msg("Failed to get event")
		writeError(w, http.StatusInternalServerError, "Failed to get event")
		return
	}

	writeJSON(w, http.StatusOK, event)
}
