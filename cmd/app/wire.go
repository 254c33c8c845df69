//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/bootstrap"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/baggage"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/itinerary"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/config"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/infra/llm/gemini"
	httpiface "github.com/bpmghb/backend-projeto-PedroErnesto/internal/interface/http"
	"github.com/bpmghb/backend-projeto-PedroErnesto/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideGeminiClient,
		provideWeatherClient,
		provideQueryLogRepository,
		baggage.NewService,
		itinerary.NewService,
		wire.Bind(new(baggage.AIClient), new(*gemini.Client)),
		wire.Bind(new(itinerary.AIClient), new(*gemini.Client)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
