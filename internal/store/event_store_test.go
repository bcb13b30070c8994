package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/isdelr/event-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(id string) models.Event {
	return models.Event{
		ID:        id,
		Title:     "Event " + id,
		Date:      "2024-12-31",
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEventStore_PutGet(t *testing.T) {
	s := NewEventStore()
	ev := newEvent("a")

	require.NoError(t, s.Put(ev))

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, ev, got)
}

func TestEventStore_GetMissing(t *testing.T) {
	s := NewEventStore()

	_, err := s.Get("nonexistent-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventStore_PutDuplicateKeepsOriginal(t *testing.T) {
	s := NewEventStore()
	require.NoError(t, s.Put(newEvent("a")))

	dup := newEvent("a")
	dup.Title = "other"
	assert.ErrorIs(t, s.Put(dup), ErrDuplicateID)

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Event a", got.Title)
	assert.Equal(t, 1, s.Len())
}

func TestEventStore_ListEmpty(t *testing.T) {
	s := NewEventStore()

	events := s.List()
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestEventStore_ListInsertionOrder(t *testing.T) {
	s := NewEventStore()
	for _, id := range []string{"c", "a", "b"} {
		require.NoError(t, s.Put(newEvent(id)))
	}

	events := s.List()
	require.Len(t, events, 3)
	assert.Equal(t, "c", events[0].ID)
	assert.Equal(t, "a", events[1].ID)
	assert.Equal(t, "b", events[2].ID)
}

func TestEventStore_ListReturnsCopy(t *testing.T) {
	s := NewEventStore()
	require.NoError(t, s.Put(newEvent("a")))

	events := s.List()
	events[0].Title = "mutated"

	got, err := s.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "Event a", got.Title)
}

func TestEventStore_ConcurrentPut(t *testing.T) {
	s := NewEventStore()
	const writers = 50

	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.Put(newEvent(fmt.Sprintf("ev-%d", i))))
			_ = s.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, writers, s.Len())
	assert.Len(t, s.List(), writers)
}
