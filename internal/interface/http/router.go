package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/config"
)

// NewRouter wires up the HTTP handlers and returns a configured server.
func NewRouter(cfg *config.Config, handler *Handler) *http.Server {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(
		gin.Recovery(),
		requestLogger(handler.logger),
		corsMiddleware(cfg.HTTP.AllowedOrigins),
		errorHandlingMiddleware(handler.logger),
		rateLimitMiddleware(cfg.HTTP.RateLimit, handler.logger),
	)

	bagagem := router.Group("/bagagem")
	{
		bagagem.POST("", handler.RecommendBaggage)
		bagagem.GET("/destinos", handler.BaggageDestinations)
		bagagem.GET("/historico", handler.BaggageHistory)
	}

	roteiro := router.Group("/roteiro")
	{
		roteiro.POST("", handler.PlanItinerary)
		roteiro.GET("/destinos", handler.ItineraryDestinations)
		roteiro.GET("/historico", handler.ItineraryHistory)
	}

	router.GET("/sobre", handler.About)

	return &http.Server{
		Addr:           cfg.HTTP.Address,
		Handler:        router,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		MaxHeaderBytes: 1 << 20,
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("http request", "method", c.Request.Method, "path", c.Request.URL.Path, "status", c.Writer.Status(), "latency_ms", latency.Milliseconds())
	}
}
