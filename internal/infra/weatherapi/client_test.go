package weatherapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

const forecastPayload = `{
	"location": {"name": "Paris", "country": "France"},
	"forecast": {"forecastday": [
		{"date": "2024-06-02", "day": {"mintemp_c": 13.2, "maxtemp_c": 23.4, "avgtemp_c": 18.1, "daily_chance_of_rain": 10, "condition": {"text": "Sunny"}}},
		{"date": "2024-06-01", "day": {"mintemp_c": 12.0, "maxtemp_c": 22.5, "avgtemp_c": 17.3, "daily_chance_of_rain": 40, "condition": {"text": "Patchy rain possible"}}},
		{"date": "2024-06-01", "day": {"mintemp_c": 0, "maxtemp_c": 0, "avgtemp_c": 0, "daily_chance_of_rain": 0, "condition": {"text": "Duplicate"}}}
	]}
}`

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient("  ", "")
	require.Error(t, err)
}

func TestForecastParsesAndNormalizes(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/forecast.json", r.URL.Path)
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(forecastPayload))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL+"/v1")
	require.NoError(t, err)

	forecast, err := client.Forecast(context.Background(), "Paris,France", 3)
	require.NoError(t, err)

	require.Equal(t, "test-key", gotQuery["key"])
	require.Equal(t, "Paris,France", gotQuery["q"])
	require.Equal(t, "3", gotQuery["days"])
	require.Equal(t, "no", gotQuery["aqi"])
	require.Equal(t, "no", gotQuery["alerts"])

	require.Equal(t, "Paris", forecast.Location)
	require.Equal(t, "France", forecast.Country)

	// Duplicate dates collapse and days come back sorted.
	require.Len(t, forecast.Days, 2)
	require.Equal(t, "2024-06-01", forecast.Days[0].Date)
	require.Equal(t, "Patchy rain possible", forecast.Days[0].Condition)
	require.Equal(t, 40, forecast.Days[0].ChanceOfRain)
	require.Equal(t, "2024-06-02", forecast.Days[1].Date)
	require.InDelta(t, 18.1, forecast.Days[1].AvgTempC, 1e-9)
}

func TestForecastClampsDayWindow(t *testing.T) {
	var gotDays string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotDays = r.URL.Query().Get("days")
		_, _ = w.Write([]byte(`{"location":{},"forecast":{"forecastday":[]}}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL)
	require.NoError(t, err)

	_, err = client.Forecast(context.Background(), "Paris,France", 30)
	require.NoError(t, err)
	require.Equal(t, "14", gotDays)

	_, err = client.Forecast(context.Background(), "Paris,France", 0)
	require.NoError(t, err)
	require.Equal(t, "1", gotDays)
}

func TestForecastUpstreamErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL)
	require.NoError(t, err)

	_, err = client.Forecast(context.Background(), "Nowhereville", 3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=400")
}

func TestForecastMalformedBodyErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer server.Close()

	client, err := NewClient("test-key", server.URL)
	require.NoError(t, err)

	_, err = client.Forecast(context.Background(), "Paris,France", 3)
	require.Error(t, err)
}
