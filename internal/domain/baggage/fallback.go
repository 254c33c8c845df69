package baggage

import (
	"math"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/weather"
)

// Fixed defaults used when no forecast data is available.
const (
	defaultAvgTemp = 20
	defaultMinTemp = 15
	defaultMaxTemp = 25
)

// Accessories switch to the sun-oriented set above this average.
const sunnyAccessoryThreshold = 20

// climateBand couples a temperature breakpoint with the clothing set for
// everything above it. Bands are evaluated top to bottom, first match wins;
// the avgTemp > minAvg comparison makes each boundary value fall into the
// colder band (25.0 is ameno, 15.0 is frio, 5.0 is muito frio).
type climateBand struct {
	minAvg      float64
	description string
	clothing    []ClothingItem
}

var hotClothing = []ClothingItem{
	{Type: "Camisetas leves", Quantity: 7, Description: "Uma para cada dia"},
	{Type: "Shorts/Bermudas", Quantity: 4, Description: "Para dias quentes"},
	{Type: "Roupas de banho", Quantity: 2, Description: "Para piscina ou praia"},
}

var mildClothing = []ClothingItem{
	{Type: "Camisetas", Quantity: 5, Description: "Para diversas ocasiões"},
	{Type: "Calças leves", Quantity: 3, Description: "Jeans ou calças confortáveis"},
	{Type: "Camisas de manga longa", Quantity: 2, Description: "Para noites mais frescas"},
}

var coldClothing = []ClothingItem{
	{Type: "Blusas de lã", Quantity: 3, Description: "Para se manter aquecido"},
	{Type: "Calças", Quantity: 3, Description: "Jeans ou calças quentes"},
	{Type: "Casaco", Quantity: 1, Description: "Casaco quente para temperaturas baixas"},
	{Type: "Cachecol e luvas", Quantity: 1, Description: "Para proteção extra"},
}

// The two coldest bands share the clothing set but keep distinct summary
// descriptions.
var climateBands = []climateBand{
	{minAvg: 25, description: "Clima quente", clothing: hotClothing},
	{minAvg: 15, description: "Clima ameno", clothing: mildClothing},
	{minAvg: 5, description: "Clima frio", clothing: coldClothing},
	{minAvg: math.Inf(-1), description: "Clima muito frio", clothing: coldClothing},
}

var invariantClothing = []ClothingItem{
	{Type: "Roupa íntima", Quantity: 7, Description: "Uma para cada dia da semana"},
	{Type: "Meias", Quantity: 7, Description: "Um par para cada dia"},
}

func bandFor(avgTemp float64) climateBand {
	for _, band := range climateBands {
		if avgTemp > band.minAvg {
			return band
		}
	}
	return climateBands[len(climateBands)-1]
}

// fallbackResponse synthesizes a complete recommendation from the forecast
// aggregates alone. It is total: an empty forecast yields the fixed default
// temperatures so every downstream table still selects a row.
func fallbackResponse(req Request, forecast weather.Forecast) Response {
	summary := summarizeWeather(forecast.Days)
	avgTemp := summary.AverageTemperature
	band := bandFor(avgTemp)

	clothing := make([]ClothingItem, 0, len(band.clothing)+len(invariantClothing))
	clothing = append(clothing, band.clothing...)
	clothing = append(clothing, invariantClothing...)

	var accessories []string
	if avgTemp > sunnyAccessoryThreshold {
		accessories = []string{"Óculos de sol", "Chapéu/boné", "Protetor solar"}
	} else {
		accessories = []string{"Cachecol", "Gorro", "Luvas"}
	}
	accessories = append(accessories, "Relógio", "Bolsa/mochila para passeios")

	return Response{
		Destination:       req.City + ", " + req.Country,
		TravelPeriod:      req.StartDate + " a " + req.EndDate,
		WeatherSummary:    summary,
		EssentialClothing: clothing,
		Accessories:       accessories,
		Toiletries: []string{
			"Escova de dentes",
			"Pasta de dente",
			"Sabonete",
			"Shampoo",
			"Desodorante",
			"Hidratante",
		},
		Electronics: []string{
			"Celular",
			"Carregador",
			"Adaptador de tomada",
			"Power bank",
			"Câmera (opcional)",
		},
		Documents: []string{
			"Passaporte",
			"Carteira de identidade",
			"Cartões",
			"Seguro viagem",
			"Vouchers de reserva",
		},
		SpecialRecommendations: specialRecommendationsFor(avgTemp),
		PackingTips: "Faça uma lista de verificação antes de sair. " +
			"Separe líquidos em embalagens pequenas para transporte em avião. " +
			"Enrole as roupas para economizar espaço. " +
			"Coloque itens pesados na parte inferior da mala.",
	}
}

func summarizeWeather(days []weather.ForecastDay) WeatherSummary {
	if len(days) == 0 {
		return WeatherSummary{
			Description:        "Dados climáticos não disponíveis",
			AverageTemperature: defaultAvgTemp,
			MinTemperature:     defaultMinTemp,
			MaxTemperature:     defaultMaxTemp,
			Precipitation:      "Informação não disponível",
			Humidity:           "Informação não disponível",
			Wind:               "Informação não disponível",
		}
	}

	var total float64
	minTemp := days[0].MinTempC
	maxTemp := days[0].MaxTempC
	for _, day := range days {
		total += day.AvgTempC
		minTemp = math.Min(minTemp, day.MinTempC)
		maxTemp = math.Max(maxTemp, day.MaxTempC)
	}
	avgTemp := total / float64(len(days))

	return WeatherSummary{
		Description:        bandFor(avgTemp).description + " para o período da viagem",
		AverageTemperature: avgTemp,
		MinTemperature:     minTemp,
		MaxTemperature:     maxTemp,
		Precipitation:      "Verifique a previsão diária para detalhes",
		Humidity:           "Média para o período",
		Wind:               "Verifique a previsão diária para detalhes",
	}
}

// specialRecommendationsFor merges the two coldest bands into one message,
// mirroring the three-way split of the clothing table.
func specialRecommendationsFor(avgTemp float64) string {
	switch {
	case avgTemp > 25:
		return "Prepare-se para o calor com roupas leves e de cores claras. Leve protetor solar e mantenha-se hidratado. Considere um chapéu para proteção contra o sol."
	case avgTemp > 15:
		return "O clima será ameno, então leve roupas versáteis que possam ser usadas em camadas. Manhãs e noites podem ser mais frescas."
	default:
		return "Prepare-se para o frio com roupas quentes e em camadas. Um bom casaco, cachecol e luvas são essenciais. Meias térmicas também são recomendadas."
	}
}
