// Package weatherapi implements the weather.Client port against the
// weatherapi.com forecast endpoint.
package weatherapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/weather"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// Client fetches daily forecasts from weatherapi.com.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds an API client. The key is mandatory: without it every
// forecast call would fail and both recommendation flows depend on one.
func NewClient(apiKey, baseURL string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("weatherapi: api key is required")
	}
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Forecast implements weather.Client. The location is passed through as the
// free-form "q" query weatherapi accepts, typically "City,Country".
func (c *Client) Forecast(ctx context.Context, location string, days int) (weather.Forecast, error) {
	if days < 1 {
		days = 1
	}
	if days > weather.MaxForecastDays {
		days = weather.MaxForecastDays
	}

	query := url.Values{}
	query.Set("key", c.apiKey)
	query.Set("q", location)
	query.Set("days", fmt.Sprintf("%d", days))
	query.Set("aqi", "no")
	query.Set("alerts", "no")
	endpoint := c.baseURL + "/forecast.json?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("build forecast request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Forecast{}, fmt.Errorf("forecast request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Forecast{}, fmt.Errorf("read forecast response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Forecast{}, fmt.Errorf("decode forecast response: %w", err)
	}

	return normalizeForecast(raw), nil
}

type apiResponse struct {
	Location apiLocation `json:"location"`
	Forecast apiForecast `json:"forecast"`
}

type apiLocation struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

type apiForecast struct {
	ForecastDay []apiForecastDay `json:"forecastday"`
}

type apiForecastDay struct {
	Date string `json:"date"`
	Day  apiDay `json:"day"`
}

type apiDay struct {
	MinTempC     float64      `json:"mintemp_c"`
	MaxTempC     float64      `json:"maxtemp_c"`
	AvgTempC     float64      `json:"avgtemp_c"`
	ChanceOfRain int          `json:"daily_chance_of_rain"`
	Condition    apiCondition `json:"condition"`
}

type apiCondition struct {
	Text string `json:"text"`
}

func normalizeForecast(raw apiResponse) weather.Forecast {
	days := make([]weather.ForecastDay, 0, len(raw.Forecast.ForecastDay))
	seen := make(map[string]struct{})
	for _, fd := range raw.Forecast.ForecastDay {
		if _, ok := seen[fd.Date]; ok {
			continue
		}
		seen[fd.Date] = struct{}{}
		days = append(days, weather.ForecastDay{
			Date:         fd.Date,
			MinTempC:     fd.Day.MinTempC,
			MaxTempC:     fd.Day.MaxTempC,
			AvgTempC:     fd.Day.AvgTempC,
			Condition:    fd.Day.Condition.Text,
			ChanceOfRain: fd.Day.ChanceOfRain,
		})
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	return weather.Forecast{
		Location: raw.Location.Name,
		Country:  raw.Location.Country,
		Days:     days,
	}
}

var _ weather.Client = (*Client)(nil)
