package itinerary

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/weather"
)

// buildPrompt renders the fixed itinerary instruction template. The field
// enumeration must stay aligned with Response; see the baggage variant for
// the same constraint.
func buildPrompt(req Request, forecast weather.Forecast) string {
	var b strings.Builder

	b.WriteString("Você é um assistente de viagem especializado em criar roteiros personalizados baseados no clima. ")
	b.WriteString("Por favor, gere um roteiro detalhado para uma viagem com as seguintes informações:\n\n")

	fmt.Fprintf(&b, "Destino: %s, %s\n", req.City, req.Country)
	fmt.Fprintf(&b, "Período: %s a %s\n", req.StartDate, req.EndDate)
	fmt.Fprintf(&b, "Interesses: %s\n", req.Interests)
	fmt.Fprintf(&b, "Orçamento (1-5): %d\n", req.Budget)
	fmt.Fprintf(&b, "Estilo de viagem: %s\n\n", req.TravelStyle)

	b.WriteString("Dados meteorológicos para o período:\n")
	for _, day := range forecast.Days {
		fmt.Fprintf(&b, "- %s: Temperatura mín: %s°C, máx: %s°C. Condição: %s. Chance de chuva: %d%%\n",
			day.Date, formatTemp(day.MinTempC), formatTemp(day.MaxTempC), day.Condition, day.ChanceOfRain)
	}

	b.WriteString("\nPor favor, forneça um roteiro detalhado no formato JSON com os seguintes campos:\n")
	b.WriteString("1. destination (destino)\n")
	b.WriteString("2. travelPeriod (período da viagem)\n")
	b.WriteString("3. weatherSummary - com description e dailyWeather (lista de previsões diárias)\n")
	b.WriteString("4. dayPlans - lista de planos diários, cada um com:\n")
	b.WriteString("   - date (data)\n")
	b.WriteString("   - weatherDescription (descrição do clima do dia)\n")
	b.WriteString("   - morningActivities (lista de atividades matutinas)\n")
	b.WriteString("   - afternoonActivities (lista de atividades vespertinas)\n")
	b.WriteString("   - eveningActivities (lista de atividades noturnas)\n")
	b.WriteString("   - weatherBasedRecommendation (recomendação baseada no clima do dia)\n")
	b.WriteString("5. generalTips - lista de dicas gerais para o destino\n")
	b.WriteString("6. localCuisineRecommendations - recomendações gastronômicas locais\n")
	b.WriteString("7. transportationTips - dicas de transporte local\n\n")

	b.WriteString("Cada atividade deve conter:\n")
	b.WriteString("- name (nome da atividade)\n")
	b.WriteString("- description (descrição breve)\n")
	b.WriteString("- location (localização)\n")
	b.WriteString("- indoorOutdoor (\"indoor\", \"outdoor\" ou \"both\")\n")
	b.WriteString("- weatherConsideration (consideração climática para a atividade)\n\n")

	b.WriteString("Importante: retorne SOMENTE o JSON, sem explicações adicionais. O JSON deve estar bem formatado e válido.")

	return b.String()
}

func formatTemp(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
