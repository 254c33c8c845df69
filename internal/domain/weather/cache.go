package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Client fetches a multi-day forecast for a location.
type Client interface {
	Forecast(ctx context.Context, location string, days int) (Forecast, error)
}

// Store caches forecasts keyed by location and window size.
type Store interface {
	Get(ctx context.Context, key string) (Forecast, bool, error)
	Set(ctx context.Context, key string, forecast Forecast, ttl time.Duration) error
}

// CachedClient decorates a Client with a forecast cache. Upstream data only
// refreshes hourly, so repeated lookups for the same trip window are served
// from the store.
type CachedClient struct {
	client Client
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedClient wires the caching decorator.
func NewCachedClient(client Client, store Store, ttl time.Duration, logger *slog.Logger) *CachedClient {
	return &CachedClient{
		client: client,
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "weather.cache"),
	}
}

// Forecast implements Client.
func (c *CachedClient) Forecast(ctx context.Context, location string, days int) (Forecast, error) {
	key := cacheKey(location, days)

	cached, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.logger.Warn("forecast cache read failed", "key", key, "error", err)
	} else if ok {
		return cached, nil
	}

	forecast, err := c.client.Forecast(ctx, location, days)
	if err != nil {
		return Forecast{}, err
	}

	if err := c.store.Set(ctx, key, forecast, c.ttl); err != nil {
		c.logger.Warn("forecast cache write failed", "key", key, "error", err)
	}
	return forecast, nil
}

func cacheKey(location string, days int) string {
	return fmt.Sprintf("forecast:%s:%d", location, days)
}

var _ Client = (*CachedClient)(nil)
