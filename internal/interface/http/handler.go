// Package http exposes the travel assistant over a Gin router.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/baggage"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/itinerary"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/querylog"
	apperrors "github.com/bpmghb/backend-projeto-PedroErnesto/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	baggageSvc   baggage.Service
	itinerarySvc itinerary.Service
	queries      querylog.Repository
	logger       *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(baggageSvc baggage.Service, itinerarySvc itinerary.Service, queries querylog.Repository, logger *slog.Logger) *Handler {
	return &Handler{
		baggageSvc:   baggageSvc,
		itinerarySvc: itinerarySvc,
		queries:      queries,
		logger:       logger.With("component", "http.handler"),
	}
}

// RecommendBaggage handles the baggage recommendation endpoint.
func (h *Handler) RecommendBaggage(c *gin.Context) {
	var req baggage.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.baggageSvc.Recommend(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, recommendationError(err, "baggage_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PlanItinerary handles the itinerary planning endpoint.
func (h *Handler) PlanItinerary(c *gin.Context) {
	var req itinerary.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.itinerarySvc.Plan(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, recommendationError(err, "itinerary_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// BaggageDestinations lists the distinct destinations already queried for
// baggage recommendations.
func (h *Handler) BaggageDestinations(c *gin.Context) {
	h.destinations(c, querylog.TypeBaggage)
}

// BaggageHistory lists past baggage recommendation queries.
func (h *Handler) BaggageHistory(c *gin.Context) {
	h.history(c, querylog.TypeBaggage)
}

// ItineraryDestinations lists the distinct destinations already queried for
// itineraries.
func (h *Handler) ItineraryDestinations(c *gin.Context) {
	h.destinations(c, querylog.TypeItinerary)
}

// ItineraryHistory lists past itinerary queries.
func (h *Handler) ItineraryHistory(c *gin.Context) {
	h.history(c, querylog.TypeItinerary)
}

func (h *Handler) destinations(c *gin.Context, requestType string) {
	destinations, err := h.queries.Destinations(c.Request.Context(), requestType)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "history_failed", "failed to load query history", err))
		return
	}
	c.JSON(http.StatusOK, destinations)
}

func (h *Handler) history(c *gin.Context, requestType string) {
	entries, err := h.queries.FindByType(c.Request.Context(), requestType)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "history_failed", "failed to load query history", err))
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AboutResponse describes the API for the metadata endpoint.
type AboutResponse struct {
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Version      string          `json:"version"`
	Organization string          `json:"organization"`
	ContactEmail string          `json:"contactEmail"`
	Endpoints    []AboutEndpoint `json:"endpoints"`
}

// AboutEndpoint documents one exposed route.
type AboutEndpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// About returns static API metadata.
func (h *Handler) About(c *gin.Context) {
	c.JSON(http.StatusOK, AboutResponse{
		Name:         "Travel Assistant API",
		Description:  "API para assistente de viagens com recomendação de bagagem e roteiros baseados no clima",
		Version:      "1.0.0",
		Organization: "Aluno: Pedro Ernesto",
		ContactEmail: "pedrobrernesto@hotmail.com",
		Endpoints: []AboutEndpoint{
			{Path: "/bagagem", Method: "POST", Description: "Gerar recomendação de bagagem com base no clima"},
			{Path: "/bagagem/destinos", Method: "GET", Description: "Listar destinos já consultados para bagagem"},
			{Path: "/bagagem/historico", Method: "GET", Description: "Listar histórico de consultas de bagagem"},
			{Path: "/roteiro", Method: "POST", Description: "Gerar roteiro de viagem com base no clima"},
			{Path: "/roteiro/destinos", Method: "GET", Description: "Listar destinos já consultados para roteiros"},
			{Path: "/roteiro/historico", Method: "GET", Description: "Listar histórico de consultas de roteiros"},
			{Path: "/sobre", Method: "GET", Description: "Informações sobre a API"},
		},
	})
}

// recommendationError maps domain error codes onto transport responses. A
// weather failure is surfaced as an upstream outage, never a client fault.
func recommendationError(err error, code string) *HTTPError {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "weather_error"):
		status = http.StatusServiceUnavailable
		code = "weather_unavailable"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
