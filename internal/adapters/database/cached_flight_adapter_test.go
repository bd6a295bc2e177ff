package database_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skyexp/booking-backend/internal/adapters/database"
	"github.com/skyexp/booking-backend/internal/domain/entities"
)

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if data, ok := c.entries[key]; ok {
		return data, nil
	}
	return nil, errors.New("key not found")
}

func (c *fakeCache) Set(ctx context.Context, key string, value []byte, ttlSeconds int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *fakeCache) Exists(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok, nil
}

type stubFlightRepo struct {
	flights map[string]*entities.Flight
	calls   int
}

func (s *stubFlightRepo) Create(ctx context.Context, flight *entities.Flight) error {
	s.flights[flight.ID] = flight
	return nil
}

func (s *stubFlightRepo) GetByID(ctx context.Context, id string) (*entities.Flight, error) {
	s.calls++
	if flight, ok := s.flights[id]; ok {
		return flight, nil
	}
	return nil, errors.New("not found")
}

func (s *stubFlightRepo) GetByIDs(ctx context.Context, ids []string) ([]*entities.Flight, error) {
	s.calls++
	result := []*entities.Flight{}
	for _, id := range ids {
		if flight, ok := s.flights[id]; ok {
			result = append(result, flight)
		}
	}
	return result, nil
}

func (s *stubFlightRepo) List(ctx context.Context) ([]*entities.Flight, error) {
	s.calls++
	result := []*entities.Flight{}
	for _, flight := range s.flights {
		result = append(result, flight)
	}
	return result, nil
}

func (s *stubFlightRepo) Update(ctx context.Context, flight *entities.Flight) error {
	s.flights[flight.ID] = flight
	return nil
}

func (s *stubFlightRepo) Delete(ctx context.Context, id string) error {
	delete(s.flights, id)
	return nil
}

func (s *stubFlightRepo) Exists(ctx context.Context, id string) (bool, error) {
	s.calls++
	_, ok := s.flights[id]
	return ok, nil
}

func TestCachedFlightAdapter_GetByID(t *testing.T) {
	t.Run("serves a cached flight without touching the store", func(t *testing.T) {
		cache := newFakeCache()
		cached, _ := json.Marshal(&entities.Flight{ID: "f1", Title: "Lagoon Tour"})
		cache.entries["flight:f1"] = cached

		repo := &stubFlightRepo{flights: map[string]*entities.Flight{}}
		adapter := database.NewCachedFlightAdapter(repo, cache, nil)

		flight, err := adapter.GetByID(context.Background(), "f1")

		assert.NoError(t, err)
		assert.Equal(t, "Lagoon Tour", flight.Title)
		assert.Zero(t, repo.calls)
	})

	t.Run("falls through to the store on a miss", func(t *testing.T) {
		repo := &stubFlightRepo{flights: map[string]*entities.Flight{
			"f1": {ID: "f1", Title: "Lagoon Tour"},
		}}
		adapter := database.NewCachedFlightAdapter(repo, newFakeCache(), nil)

		flight, err := adapter.GetByID(context.Background(), "f1")

		assert.NoError(t, err)
		assert.Equal(t, "Lagoon Tour", flight.Title)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("falls through on a corrupt cache entry and logs the decode failure", func(t *testing.T) {
		var logged bytes.Buffer
		log.SetOutput(&logged)
		t.Cleanup(func() { log.SetOutput(os.Stderr) })

		cache := newFakeCache()
		cache.entries["flight:f1"] = []byte("{corrupt")

		repo := &stubFlightRepo{flights: map[string]*entities.Flight{
			"f1": {ID: "f1", Title: "Lagoon Tour"},
		}}
		adapter := database.NewCachedFlightAdapter(repo, cache, nil)

		flight, err := adapter.GetByID(context.Background(), "f1")

		assert.NoError(t, err)
		assert.Equal(t, "Lagoon Tour", flight.Title)
		assert.Equal(t, 1, repo.calls)
		assert.Contains(t, logged.String(), "invalid character")
	})
}

func TestCachedFlightAdapter_Invalidation(t *testing.T) {
	t.Run("update drops the flight and list entries", func(t *testing.T) {
		cache := newFakeCache()
		cache.entries["flight:f1"] = []byte(`{}`)
		cache.entries["flights:list"] = []byte(`[]`)

		repo := &stubFlightRepo{flights: map[string]*entities.Flight{
			"f1": {ID: "f1"},
		}}
		adapter := database.NewCachedFlightAdapter(repo, cache, nil)

		err := adapter.Update(context.Background(), &entities.Flight{ID: "f1", Title: "Renamed"})
		require.NoError(t, err)

		_, hasFlight := cache.entries["flight:f1"]
		_, hasList := cache.entries["flights:list"]
		assert.False(t, hasFlight)
		assert.False(t, hasList)
	})

	t.Run("existence checks bypass the cache", func(t *testing.T) {
		cache := newFakeCache()
		repo := &stubFlightRepo{flights: map[string]*entities.Flight{
			"f1": {ID: "f1"},
		}}
		adapter := database.NewCachedFlightAdapter(repo, cache, nil)

		exists, err := adapter.Exists(context.Background(), "f1")
		assert.NoError(t, err)
		assert.True(t, exists)
		assert.Equal(t, 1, repo.calls)
		assert.Empty(t, cache.entries)
	})
}
