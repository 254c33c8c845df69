// Package config loads runtime configuration from YAML and environment
// variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Weather  WeatherConfig  `yaml:"weather"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	QueryLog QueryLogConfig `yaml:"queryLog"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// WeatherConfig contains weatherapi.com settings plus forecast cache tuning.
type WeatherConfig struct {
	APIKey   string        `yaml:"apiKey"`
	BaseURL  string        `yaml:"baseUrl"`
	CacheTTL time.Duration `yaml:"cacheTtl"`
	Redis    RedisConfig   `yaml:"redis"`
}

// RedisConfig contains connection information for cache storage.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// GeminiConfig contains Google Gemini settings.
type GeminiConfig struct {
	APIKey  string `yaml:"apiKey"`
	BaseURL string `yaml:"baseUrl"`
	Model   string `yaml:"model"`
}

// QueryLogConfig controls query history persistence.
type QueryLogConfig struct {
	Postgres PostgresConfig `yaml:"postgres"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		origins := make([]string, 0)
		for _, origin := range strings.Split(v, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				origins = append(origins, trimmed)
			}
		}
		cfg.HTTP.AllowedOrigins = origins
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_API_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("WEATHER_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Weather.CacheTTL = parsed
		}
	}
	if v := os.Getenv("WEATHER_REDIS_ENABLED"); v != "" {
		cfg.Weather.Redis.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("WEATHER_REDIS_ADDR"); v != "" {
		cfg.Weather.Redis.Addr = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_BASE_URL"); v != "" {
		cfg.Gemini.BaseURL = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		cfg.Gemini.Model = v
	}
	if v := os.Getenv("QUERYLOG_POSTGRES_DSN"); v != "" {
		cfg.QueryLog.Postgres.DSN = v
	}
	if v := os.Getenv("QUERYLOG_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.QueryLog.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("QUERYLOG_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.QueryLog.Postgres.MinConns = int32(parsed)
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 90 * time.Second,
			AllowedOrigins: []string{
				"http://localhost:3000",
			},
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		Weather: WeatherConfig{
			BaseURL:  "https://api.weatherapi.com/v1",
			CacheTTL: 30 * time.Minute,
			Redis: RedisConfig{
				Enabled: false,
				Addr:    "",
			},
		},
		Gemini: GeminiConfig{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta",
			Model:   "gemini-2.0-flash",
		},
		QueryLog: QueryLogConfig{
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
	}
}

// Validate ensures the configuration is safe to use. Both upstream API keys
// are hard requirements: without them every recommendation request would
// fail at runtime.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if strings.TrimSpace(c.Weather.APIKey) == "" {
		return errors.New("weather.apiKey cannot be empty")
	}
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return errors.New("gemini.apiKey cannot be empty")
	}
	if c.Weather.CacheTTL < 0 {
		return errors.New("weather.cacheTtl cannot be negative")
	}
	if c.Weather.Redis.Enabled && strings.TrimSpace(c.Weather.Redis.Addr) == "" {
		return errors.New("weather.redis.addr cannot be empty when redis cache is enabled")
	}
	if strings.TrimSpace(c.Gemini.Model) == "" {
		return errors.New("gemini.model cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
