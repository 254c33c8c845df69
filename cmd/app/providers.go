package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/querylog"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/weather"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/config"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/forecastcache"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/llm/gemini"
	querylogrepo "github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/querylog"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/weatherapi"
)

func provideGeminiClient(cfg *config.Config, logger *slog.Logger) (*gemini.Client, error) {
	return gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, logger)
}

func provideWeatherClient(cfg *config.Config, logger *slog.Logger) (weather.Client, error) {
	client, err := weatherapi.NewClient(cfg.Weather.APIKey, cfg.Weather.BaseURL)
	if err != nil {
		return nil, err
	}
	if cfg.Weather.CacheTTL <= 0 {
		return client, nil
	}
	return weather.NewCachedClient(client, provideForecastStore(cfg, logger), cfg.Weather.CacheTTL, logger), nil
}

func provideForecastStore(cfg *config.Config, logger *slog.Logger) weather.Store {
	if cfg.Weather.Redis.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return forecastcache.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return forecastcache.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("forecast valkey store enabled", "addr", cfg.Weather.Redis.Addr)
			return forecastcache.NewValkeyStore(client, "weather")
		}
	}
	return forecastcache.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Weather.Redis.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Weather.Redis.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Weather.Redis.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

func provideQueryLogRepository(cfg *config.Config, logger *slog.Logger) querylog.Repository {
	fallback := querylogrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.QueryLog.Postgres.DSN)
	if dsn == "" {
		logger.Info("querylog postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.QueryLog.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.QueryLog.Postgres.MaxConns
	}
	if cfg.QueryLog.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.QueryLog.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("querylog postgres repository enabled")
	return querylogrepo.NewPostgresRepository(pool)
}
