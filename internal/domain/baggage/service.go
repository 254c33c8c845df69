package baggage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/aijson"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/querylog"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/trip"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/weather"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/llm/gemini"
	apperrors "github.com/bpmghb/backend-projeto-PedroErnesto/pkg/errors"
)

// Service exposes climate-aware baggage recommendations.
type Service interface {
	Recommend(ctx context.Context, req Request) (Response, error)
}

// AIClient generates model text for a prompt. Unavailability is an in-band
// result, never an error.
type AIClient interface {
	Generate(ctx context.Context, prompt string) gemini.Result
}

type service struct {
	weather weather.Client
	ai      AIClient
	queries querylog.Repository
	logger  *slog.Logger
	now     func() time.Time
}

// NewService wires up the baggage recommendation domain.
func NewService(weatherClient weather.Client, aiClient AIClient, queries querylog.Repository, logger *slog.Logger) Service {
	return &service{
		weather: weatherClient,
		ai:      aiClient,
		queries: queries,
		logger:  logger.With("component", "baggage.service"),
		now:     time.Now,
	}
}

// Recommend resolves a recommendation through the model pipeline and falls
// back to deterministic synthesis whenever the model output is unusable.
// Only the weather fetch can fail the request.
func (s *service) Recommend(ctx context.Context, req Request) (Response, error) {
	period, err := trip.ParsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return Response{}, apperrors.Wrap("invalid_input", "dates must be formatted as YYYY-MM-DD with startDate before endDate", err)
	}

	location := req.City + "," + req.Country
	forecast, err := s.weather.Forecast(ctx, location, period.ForecastDays(weather.MaxForecastDays))
	if err != nil {
		return Response{}, apperrors.Wrap("weather_error", "failed to fetch forecast from WeatherAPI", err)
	}
	s.logger.Info("forecast fetched", "location", location, "days", len(forecast.Days))

	result := s.ai.Generate(ctx, buildPrompt(req, forecast))

	var resp Response
	if result.Unavailable {
		s.logger.Warn("gemini unavailable, synthesizing baggage recommendation", "destination", req.City)
		resp = fallbackResponse(req, forecast)
	} else {
		resp = s.resolveModelText(result.Text, req, forecast)
	}

	s.record(ctx, req, resp)
	return resp, nil
}

// resolveModelText turns raw model output into a Response, routing both
// extraction misses and parse failures to the synthesizer.
func (s *service) resolveModelText(text string, req Request, forecast weather.Forecast) Response {
	jsonText, ok := aijson.Extract(text)
	if !ok {
		s.logger.Warn("no JSON found in gemini output, synthesizing baggage recommendation", "destination", req.City)
		return fallbackResponse(req, forecast)
	}
	resp, err := parseResponse(jsonText)
	if err != nil {
		s.logger.Warn("gemini output malformed, synthesizing baggage recommendation", "destination", req.City, "error", err)
		return fallbackResponse(req, forecast)
	}
	return resp
}

// parseResponse decodes the extracted JSON into the response schema. No
// partial population: anything structurally wrong rejects the whole payload.
func parseResponse(jsonText string) (Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(jsonText), &resp); err != nil {
		return Response{}, err
	}
	if strings.TrimSpace(resp.Destination) == "" {
		return Response{}, errors.New("destination missing")
	}
	if len(resp.EssentialClothing) == 0 {
		return Response{}, errors.New("essential clothing missing")
	}
	resp.Accessories = ensureList(resp.Accessories)
	resp.Toiletries = ensureList(resp.Toiletries)
	resp.Electronics = ensureList(resp.Electronics)
	resp.Documents = ensureList(resp.Documents)
	return resp, nil
}

func ensureList(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func (s *service) record(ctx context.Context, req Request, resp Response) {
	reqJSON, err := json.Marshal(req)
	if err != nil {
		s.logger.Warn("failed to serialize query request", "error", err)
		return
	}
	respJSON, err := json.Marshal(resp)
	if err != nil {
		s.logger.Warn("failed to serialize query response", "error", err)
		return
	}

	entry := querylog.Entry{
		Destination:  req.City + ", " + req.Country,
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		RequestType:  querylog.TypeBaggage,
		RequestJSON:  string(reqJSON),
		ResponseJSON: string(respJSON),
		Timestamp:    s.now(),
	}
	if _, err := s.queries.Save(ctx, entry); err != nil {
		s.logger.Warn("failed to record baggage query", "destination", entry.Destination, "error", err)
	}
}
