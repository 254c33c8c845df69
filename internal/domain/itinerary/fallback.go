package itinerary

import (
	"strconv"
	"strings"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/trip"
	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/weather"
)

// Per-day recommendation messages, selected by precedence: rain always wins
// over the temperature checks.
const (
	rainyDayAdvice    = "Dia com previsão de chuva. Considere atividades internas ou leve um guarda-chuva."
	hotDayAdvice      = "Dia quente. Leve protetor solar, óculos de sol e mantenha-se hidratado."
	coldDayAdvice     = "Dia frio. Leve roupas adequadas e considere atividades internas."
	pleasantDayAdvice = "Clima agradável para atividades ao ar livre."
)

const (
	hotDayMaxTemp  = 30
	coldDayMinTemp = 10
)

var rainKeywords = []string{"chuva", "rain"}

// fallbackResponse synthesizes a complete itinerary from the forecast
// alone: a fixed three-slot activity template per calendar day, capped at
// the number of forecast days available.
func fallbackResponse(req Request, period trip.Period, forecast weather.Forecast) Response {
	dailyWeather := make([]DailyWeather, 0, len(forecast.Days))
	for _, day := range forecast.Days {
		dailyWeather = append(dailyWeather, DailyWeather{
			Date:      day.Date,
			Condition: day.Condition,
			MinTemp:   day.MinTempC,
			MaxTemp:   day.MaxTempC,
			Rainfall:  strconv.Itoa(day.ChanceOfRain) + "%",
		})
	}

	dayPlans := make([]DayPlan, 0, len(dailyWeather))
	current := period.Start
	for idx := 0; !current.After(period.End) && idx < len(dailyWeather); idx++ {
		dayPlans = append(dayPlans, DayPlan{
			Date:                       current.Format("2006-01-02"),
			WeatherDescription:         "Previsão para o dia: " + dailyWeather[idx].Condition,
			MorningActivities:          morningActivities(),
			AfternoonActivities:        afternoonActivities(),
			EveningActivities:          eveningActivities(),
			WeatherBasedRecommendation: dayAdvice(dailyWeather[idx]),
		})
		current = current.AddDate(0, 0, 1)
	}

	return Response{
		Destination:  req.City + ", " + req.Country,
		TravelPeriod: req.StartDate + " a " + req.EndDate,
		WeatherSummary: WeatherSummary{
			Description:  "Previsão do tempo para o período da viagem",
			DailyWeather: dailyWeather,
		},
		DayPlans: dayPlans,
		GeneralTips: []string{
			"Verifique a previsão do tempo diariamente",
			"Leve roupas adequadas para o clima local",
			"Tenha um plano alternativo para dias chuvosos",
			"Respeite os costumes locais",
		},
		LocalCuisineRecommendations: "Experimente os pratos típicos da região. Pesquise restaurantes bem avaliados próximos a cada atração.",
		TransportationTips:          "Verifique as opções de transporte público disponíveis. Considere aplicativos de transporte para maior conveniência.",
	}
}

// dayAdvice picks the weather guidance for one day. The rain keyword check
// runs first so a rainy 35°C day still cites rain guidance.
func dayAdvice(day DailyWeather) string {
	condition := strings.ToLower(day.Condition)
	for _, keyword := range rainKeywords {
		if strings.Contains(condition, keyword) {
			return rainyDayAdvice
		}
	}
	if day.MaxTemp > hotDayMaxTemp {
		return hotDayAdvice
	}
	if day.MinTemp < coldDayMinTemp {
		return coldDayAdvice
	}
	return pleasantDayAdvice
}

func morningActivities() []Activity {
	return []Activity{
		{
			Name:                 "Café da manhã",
			Description:          "Experimente a gastronomia local",
			Location:             "Hotel ou café próximo",
			IndoorOutdoor:        "indoor",
			WeatherConsideration: "Atividade interna não afetada pelo clima",
		},
		{
			Name:                 "Passeio cultural",
			Description:          "Visite um ponto turístico popular",
			Location:             "Centro da cidade",
			IndoorOutdoor:        "both",
			WeatherConsideration: "Verifique o clima antes de sair",
		},
	}
}

func afternoonActivities() []Activity {
	return []Activity{
		{
			Name:                 "Almoço",
			Description:          "Restaurante recomendado",
			Location:             "Área turística",
			IndoorOutdoor:        "indoor",
			WeatherConsideration: "Atividade interna não afetada pelo clima",
		},
		{
			Name:                 "Passeio ao ar livre",
			Description:          "Explore parques ou atrações locais",
			Location:             "Região central",
			IndoorOutdoor:        "outdoor",
			WeatherConsideration: "Considere alternativas internas em caso de chuva",
		},
	}
}

func eveningActivities() []Activity {
	return []Activity{
		{
			Name:                 "Jantar",
			Description:          "Experimente a culinária local",
			Location:             "Restaurante recomendado",
			IndoorOutdoor:        "indoor",
			WeatherConsideration: "Atividade interna não afetada pelo clima",
		},
		{
			Name:                 "Caminhada noturna",
			Description:          "Aprecie as luzes da cidade",
			Location:             "Centro histórico",
			IndoorOutdoor:        "outdoor",
			WeatherConsideration: "Verifique previsão de chuva antes de sair",
		},
	}
}
