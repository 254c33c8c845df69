package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/baggage"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/itinerary"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/querylog"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/config"
	apperrors "github.com/bpmghb/backend-projeto-PedroErnesto/pkg/errors"
)

type stubBaggageService struct {
	recommendFn func(ctx context.Context, req baggage.Request) (baggage.Response, error)
}

func (s *stubBaggageService) Recommend(ctx context.Context, req baggage.Request) (baggage.Response, error) {
	if s.recommendFn == nil {
		return baggage.Response{}, nil
	}
	return s.recommendFn(ctx, req)
}

type stubItineraryService struct {
	planFn func(ctx context.Context, req itinerary.Request) (itinerary.Response, error)
}

func (s *stubItineraryService) Plan(ctx context.Context, req itinerary.Request) (itinerary.Response, error) {
	if s.planFn == nil {
		return itinerary.Response{}, nil
	}
	return s.planFn(ctx, req)
}

type stubQueries struct {
	entries      []querylog.Entry
	destinations []string
	err          error
	lastType     string
}

func (s *stubQueries) Save(_ context.Context, entry querylog.Entry) (querylog.Entry, error) {
	return entry, nil
}

func (s *stubQueries) FindByType(_ context.Context, requestType string) ([]querylog.Entry, error) {
	s.lastType = requestType
	return s.entries, s.err
}

func (s *stubQueries) Destinations(_ context.Context, requestType string) ([]string, error) {
	s.lastType = requestType
	return s.destinations, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
	}
}

func newRouterUnderTest(baggageSvc baggage.Service, itinerarySvc itinerary.Service, queries querylog.Repository) http.Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(baggageSvc, itinerarySvc, queries, logger)
	return NewRouter(testConfig(), handler).Handler
}

func performRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeErrorBody(t *testing.T, payload []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(payload, &body))
	return body
}

const validTravelBody = `{"city":"Paris","country":"France","startDate":"2024-06-01","endDate":"2024-06-03"}`

func TestRouter_BaggageSuccess(t *testing.T) {
	resp := baggage.Response{
		Destination:       "Paris, France",
		TravelPeriod:      "2024-06-01 a 2024-06-03",
		EssentialClothing: []baggage.ClothingItem{{Type: "Camisetas", Quantity: 5, Description: "Para o dia a dia"}},
		Accessories:       []string{"Relógio"},
		Toiletries:        []string{},
		Electronics:       []string{},
		Documents:         []string{},
	}
	svc := &stubBaggageService{
		recommendFn: func(_ context.Context, req baggage.Request) (baggage.Response, error) {
			require.Equal(t, "Paris", req.City)
			require.Equal(t, "France", req.Country)
			return resp, nil
		},
	}

	recorder := performRequest(newRouterUnderTest(svc, &stubItineraryService{}, &stubQueries{}), http.MethodPost, "/bagagem", validTravelBody)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got baggage.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, resp, got)
}

func TestRouter_BaggageMissingFields(t *testing.T) {
	recorder := performRequest(newRouterUnderTest(&stubBaggageService{}, &stubItineraryService{}, &stubQueries{}), http.MethodPost, "/bagagem", `{"city":"Paris"}`)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_BaggageInvalidDates(t *testing.T) {
	svc := &stubBaggageService{
		recommendFn: func(_ context.Context, _ baggage.Request) (baggage.Response, error) {
			return baggage.Response{}, apperrors.Wrap("invalid_input", "dates must be formatted as YYYY-MM-DD with startDate before endDate", nil)
		},
	}

	recorder := performRequest(newRouterUnderTest(svc, &stubItineraryService{}, &stubQueries{}), http.MethodPost, "/bagagem", validTravelBody)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
}

func TestRouter_BaggageWeatherOutage(t *testing.T) {
	svc := &stubBaggageService{
		recommendFn: func(_ context.Context, _ baggage.Request) (baggage.Response, error) {
			return baggage.Response{}, apperrors.Wrap("weather_error", "failed to fetch forecast from WeatherAPI", nil)
		},
	}

	recorder := performRequest(newRouterUnderTest(svc, &stubItineraryService{}, &stubQueries{}), http.MethodPost, "/bagagem", validTravelBody)
	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "weather_unavailable", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "WeatherAPI")
}

func TestRouter_ItinerarySuccess(t *testing.T) {
	resp := itinerary.Response{
		Destination: "Lisboa, Portugal",
		DayPlans: []itinerary.DayPlan{{
			Date:                "2024-06-01",
			MorningActivities:   []itinerary.Activity{},
			AfternoonActivities: []itinerary.Activity{},
			EveningActivities:   []itinerary.Activity{},
		}},
		GeneralTips: []string{},
	}
	svc := &stubItineraryService{
		planFn: func(_ context.Context, req itinerary.Request) (itinerary.Response, error) {
			require.Equal(t, "Paris", req.City)
			return resp, nil
		},
	}

	recorder := performRequest(newRouterUnderTest(&stubBaggageService{}, svc, &stubQueries{}), http.MethodPost, "/roteiro", validTravelBody)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got itinerary.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, resp, got)
}

func TestRouter_DestinationsByType(t *testing.T) {
	queries := &stubQueries{destinations: []string{"Paris, France", "Oslo, Norway"}}
	router := newRouterUnderTest(&stubBaggageService{}, &stubItineraryService{}, queries)

	recorder := performRequest(router, http.MethodGet, "/bagagem/destinos", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, querylog.TypeBaggage, queries.lastType)

	var got []string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, queries.destinations, got)

	recorder = performRequest(router, http.MethodGet, "/roteiro/destinos", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, querylog.TypeItinerary, queries.lastType)
}

func TestRouter_HistoryByType(t *testing.T) {
	queries := &stubQueries{entries: []querylog.Entry{{
		ID:          "4a3d1577-4a8e-4ab5-b8a5-9d7c1fa2b233",
		Destination: "Paris, France",
		RequestType: querylog.TypeItinerary,
	}}}
	router := newRouterUnderTest(&stubBaggageService{}, &stubItineraryService{}, queries)

	recorder := performRequest(router, http.MethodGet, "/roteiro/historico", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, querylog.TypeItinerary, queries.lastType)

	var got []querylog.Entry
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Paris, France", got[0].Destination)
}

func TestRouter_About(t *testing.T) {
	recorder := performRequest(newRouterUnderTest(&stubBaggageService{}, &stubItineraryService{}, &stubQueries{}), http.MethodGet, "/sobre", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var got AboutResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, "Travel Assistant API", got.Name)
	require.Len(t, got.Endpoints, 7)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newRouterUnderTest(&stubBaggageService{}, &stubItineraryService{}, &stubQueries{})

	req := httptest.NewRequest(http.MethodOptions, "/bagagem", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.NotEmpty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_RateLimitExceeded(t *testing.T) {
	cfg := testConfig()
	cfg.HTTP.RateLimit = config.RateLimitConfig{Enabled: true, RequestsPerMinute: 60, Burst: 1}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := NewHandler(&stubBaggageService{}, &stubItineraryService{}, &stubQueries{}, logger)
	router := NewRouter(cfg, handler).Handler

	first := performRequest(router, http.MethodGet, "/sobre", "")
	require.Equal(t, http.StatusOK, first.Code)

	second := performRequest(router, http.MethodGet, "/sobre", "")
	require.Equal(t, http.StatusTooManyRequests, second.Code)

	errBody := decodeErrorBody(t, second.Body.Bytes())
	require.Equal(t, "rate_limit_exceeded", errBody["error"]["code"])
}
