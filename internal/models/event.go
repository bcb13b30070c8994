package models

import (
	"encoding/json"
	"errors"
	"time"
)

var (
	// ErrEventNotFound is returned when no event exists for an id.
	ErrEventNotFound = errors.New("event not found")
	// ErrInvalidInput is returned when a create payload is missing or incomplete.
	ErrInvalidInput = errors.New("invalid event data")
)

// Event is a scheduled happening created through the API.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // stored verbatim, e.g. "2024-12-31"
	Location    string    `json:"location"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateEventPayload is the request body accepted by POST /events.
// Required fields only need to be present; "" and null are accepted.
type CreateEventPayload struct {
	Title       PresentString `json:"title" validate:"required"`
	Description string        `json:"description"`
	Date        PresentString `json:"date" validate:"required"`
	Location    string        `json:"location"`
}

// PresentString is a string that remembers whether its JSON key was
// supplied. A null value counts as supplied and reads as "".
type PresentString struct {
	Present bool
	Value   string
}

// PresentValue returns a supplied PresentString holding v.
func PresentValue(v string) PresentString {
	return PresentString{Present: true, Value: v}
}

func (s *PresentString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = PresentString{Present: true}
		return nil
	}
	var v string
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = PresentValue(v)
	return nil
}

func (s PresentString) MarshalJSON() ([]byte, error) {
	if !s.Present {
		return []byte("null"), nil
	}
	return json.Marshal(s.Value)
}
