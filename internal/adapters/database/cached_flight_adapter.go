package database

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/providers"
	"github.com/skyexp/booking-backend/internal/domain/repositories"
	"github.com/skyexp/booking-backend/internal/infrastructure/observability"
)

// CachedFlightAdapter wraps FlightAdapter with read-through caching for the
// public catalog endpoints. Writes invalidate; existence checks and batch
// reads pass straight through so the reservation and dashboard paths always
// see current data.
type CachedFlightAdapter struct {
	adapter repositories.FlightRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedFlightAdapter creates a new cached flight adapter
func NewCachedFlightAdapter(adapter repositories.FlightRepository, cache providers.CacheProvider, metrics *observability.Metrics) repositories.FlightRepository {
	return &CachedFlightAdapter{
		adapter: adapter,
		cache:   cache,
		metrics: metrics,
	}
}

// Cache TTLs (in seconds)
const (
	flightByIDTTL  = 300 // 5 minutes for a single flight
	flightsListTTL = 180 // 3 minutes for the catalog list
)

const flightsListCacheKey = "flights:list"

func flightCacheKey(id string) string {
	return fmt.Sprintf("flight:%s", id)
}

// GetByID retrieves a flight by ID with caching
func (a *CachedFlightAdapter) GetByID(ctx context.Context, id string) (*entities.Flight, error) {
	cacheKey := flightCacheKey(id)

	if cached, err := a.cache.Get(ctx, cacheKey); err == nil {
		var flight entities.Flight
		unmarshalErr := json.Unmarshal(cached, &flight)
		if unmarshalErr == nil {
			observability.RecordCacheHit(ctx, a.metrics, "flight")
			return &flight, nil
		}
		// Corrupt entry: fall through to the database
		log.Printf("Failed to unmarshal cached flight %s: %v", id, unmarshalErr)
	}
	observability.RecordCacheMiss(ctx, a.metrics, "flight")

	flight, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	a.storeAsync(cacheKey, flight, flightByIDTTL)
	return flight, nil
}

// List retrieves the flight catalog with caching
func (a *CachedFlightAdapter) List(ctx context.Context) ([]*entities.Flight, error) {
	if cached, err := a.cache.Get(ctx, flightsListCacheKey); err == nil {
		var flights []*entities.Flight
		unmarshalErr := json.Unmarshal(cached, &flights)
		if unmarshalErr == nil {
			observability.RecordCacheHit(ctx, a.metrics, "flights:list")
			return flights, nil
		}
		log.Printf("Failed to unmarshal cached flight list: %v", unmarshalErr)
	}
	observability.RecordCacheMiss(ctx, a.metrics, "flights:list")

	flights, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	a.storeAsync(flightsListCacheKey, flights, flightsListTTL)
	return flights, nil
}

// GetByIDs passes through; the dashboard batch resolve must not serve stale rows
func (a *CachedFlightAdapter) GetByIDs(ctx context.Context, ids []string) ([]*entities.Flight, error) {
	return a.adapter.GetByIDs(ctx, ids)
}

// Exists passes through; reservation creation checks the live catalog
func (a *CachedFlightAdapter) Exists(ctx context.Context, id string) (bool, error) {
	return a.adapter.Exists(ctx, id)
}

// Create creates a flight and invalidates the catalog list
func (a *CachedFlightAdapter) Create(ctx context.Context, flight *entities.Flight) error {
	if err := a.adapter.Create(ctx, flight); err != nil {
		return err
	}
	a.invalidate(ctx, flightsListCacheKey)
	return nil
}

// Update updates a flight and invalidates its cache entries
func (a *CachedFlightAdapter) Update(ctx context.Context, flight *entities.Flight) error {
	if err := a.adapter.Update(ctx, flight); err != nil {
		return err
	}
	a.invalidate(ctx, flightCacheKey(flight.ID), flightsListCacheKey)
	return nil
}

// Delete deletes a flight and invalidates its cache entries
func (a *CachedFlightAdapter) Delete(ctx context.Context, id string) error {
	if err := a.adapter.Delete(ctx, id); err != nil {
		return err
	}
	a.invalidate(ctx, flightCacheKey(id), flightsListCacheKey)
	return nil
}

// storeAsync updates the cache off the request path with a fresh context,
// since the request context may already be done by the time the write runs.
func (a *CachedFlightAdapter) storeAsync(key string, value interface{}, ttl int) {
	go func() {
		bgCtx := context.Background()
		data, err := json.Marshal(value)
		if err != nil {
			return
		}
		if err := a.cache.Set(bgCtx, key, data, ttl); err != nil {
			log.Printf("Failed to cache %s: %v", key, err)
		}
	}()
}

func (a *CachedFlightAdapter) invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := a.cache.Delete(ctx, key); err != nil {
			log.Printf("Failed to invalidate cache key %s: %v", key, err)
		}
	}
}
