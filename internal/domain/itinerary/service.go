package itinerary

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

// Service exposes climate-aware day-by-day itinerary planning.
type Service interface {
	Plan(ctx context.Context, req Request) (Response, error)
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

// NewService wires up the itinerary planning domain.
func NewService(weatherClient weather.Client, aiClient AIClient, queries querylog.Repository, logger *slog.Logger) Service {
	return &service{
		weather: weatherClient,
		ai:      aiClient,
		queries: queries,
		logger:  logger.With("component", "itinerary.service"),
		now:     time.Now,
	}
}

// Plan resolves an itinerary through the model pipeline and falls back to
// deterministic synthesis whenever the model output is unusable. Only the
// weather fetch can fail the request.
func (s *service) Plan(ctx context.Context, req Request) (Response, error) {
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
		s.logger.Warn("gemini unavailable, synthesizing itinerary", "destination", req.City)
		resp = fallbackResponse(req, period, forecast)
	} else {
		resp = s.resolveModelText(result.Text, req, period, forecast)
	}

	s.record(ctx, req, resp)
	return resp, nil
}

func (s *service) resolveModelText(text string, req Request, period trip.Period, forecast weather.Forecast) Response {
	jsonText, ok := aijson.Extract(text)
	if !ok {
		s.logger.Warn("no JSON found in gemini output, synthesizing itinerary", "destination", req.City)
		return fallbackResponse(req, period, forecast)
	}
	resp, err := parseResponse(jsonText)
	if err != nil {
		s.logger.Warn("gemini output malformed, synthesizing itinerary", "destination", req.City, "error", err)
		return fallbackResponse(req, period, forecast)
	}
	return resp
}

// parseResponse decodes the extracted JSON into the response schema. No
// partial population: anything structurally wrong rejects the whole payload.
// Every list field is normalized to an empty slice so consumers never see
// null where a list belongs.
func parseResponse(jsonText string) (Response, error) {
	var resp Response
	if err := json.Unmarshal([]byte(jsonText), &resp); err != nil {
		return Response{}, err
	}
	if strings.TrimSpace(resp.Destination) == "" {
		return Response{}, errors.New("destination missing")
	}
	if len(resp.DayPlans) == 0 {
		return Response{}, errors.New("day plans missing")
	}
	if resp.WeatherSummary.DailyWeather == nil {
		resp.WeatherSummary.DailyWeather = []DailyWeather{}
	}
	for i := range resp.DayPlans {
		resp.DayPlans[i].MorningActivities = ensureActivities(resp.DayPlans[i].MorningActivities)
		resp.DayPlans[i].AfternoonActivities = ensureActivities(resp.DayPlans[i].AfternoonActivities)
		resp.DayPlans[i].EveningActivities = ensureActivities(resp.DayPlans[i].EveningActivities)
	}
	if resp.GeneralTips == nil {
		resp.GeneralTips = []string{}
	}
	return resp, nil
}

func ensureActivities(items []Activity) []Activity {
	if items == nil {
		return []Activity{}
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
		RequestType:  querylog.TypeItinerary,
		RequestJSON:  string(reqJSON),
		ResponseJSON: string(respJSON),
		Timestamp:    s.now(),
	}
	if _, err := s.queries.Save(ctx, entry); err != nil {
		s.logger.Warn("failed to record itinerary query", "destination", entry.Destination, "error", err)
	}
}
