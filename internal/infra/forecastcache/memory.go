// Package forecastcache provides weather.Store implementations.
package forecastcache

import (
	"context"
	"sync"
	"time"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/weather"
)

type cachedForecast struct {
	payload   weather.Forecast
	expiresAt time.Time
}

// MemoryStore is an in-memory implementation of the forecast store for
// tests/dev.
type MemoryStore struct {
	mu        sync.RWMutex
	forecasts map[string]cachedForecast
	now       func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		forecasts: make(map[string]cachedForecast),
		now:       time.Now,
	}
}

// Get implements weather.Store.
func (s *MemoryStore) Get(_ context.Context, key string) (weather.Forecast, bool, error) {
	s.mu.RLock()
	record, ok := s.forecasts[key]
	s.mu.RUnlock()
	if !ok {
		return weather.Forecast{}, false, nil
	}
	if s.hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.forecasts, key)
		s.mu.Unlock()
		return weather.Forecast{}, false, nil
	}
	return record.payload, true, nil
}

// Set implements weather.Store with optional TTL.
func (s *MemoryStore) Set(_ context.Context, key string, forecast weather.Forecast, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.forecasts[key] = cachedForecast{
		payload:   forecast,
		expiresAt: exp,
	}
	return nil
}

func (s *MemoryStore) hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(s.now())
}

var _ weather.Store = (*MemoryStore)(nil)
