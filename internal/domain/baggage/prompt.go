package baggage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bpmghb/backend-projeto-PedroErnesto/internal/domain/weather"
)

// buildPrompt renders the fixed instruction template for the model. The
// enumerated field list must stay aligned with Response: the parser has no
// schema negotiation, only the deterministic fallback behind it.
func buildPrompt(req Request, forecast weather.Forecast) string {
	var b strings.Builder

	b.WriteString("Você é um assistente de viagem especializado em recomendações de bagagem baseadas no clima. ")
	b.WriteString("Por favor, gere uma recomendação de bagagem detalhada para uma viagem com as seguintes informações:\n\n")

	fmt.Fprintf(&b, "Destino: %s, %s\n", req.City, req.Country)
	fmt.Fprintf(&b, "Período: %s a %s\n", req.StartDate, req.EndDate)
	fmt.Fprintf(&b, "Propósito da viagem: %s\n", req.TravelPurpose)
	fmt.Fprintf(&b, "Preferências do usuário: %s\n\n", req.UserPreferences)

	b.WriteString("Dados meteorológicos para o período:\n")
	for _, day := range forecast.Days {
		fmt.Fprintf(&b, "- %s: Temperatura mín: %s°C, máx: %s°C. Condição: %s. Chance de chuva: %d%%\n",
			day.Date, formatTemp(day.MinTempC), formatTemp(day.MaxTempC), day.Condition, day.ChanceOfRain)
	}

	b.WriteString("\nPor favor, forneça uma recomendação de bagagem detalhada no formato JSON com os seguintes campos:\n")
	b.WriteString("1. destination (destino)\n")
	b.WriteString("2. travelPeriod (período da viagem)\n")
	b.WriteString("3. weatherSummary - com description, averageTemperature, minTemperature, maxTemperature, precipitation, humidity, wind\n")
	b.WriteString("4. essentialClothing - lista de itens com type, quantity e description\n")
	b.WriteString("5. accessories - lista de acessórios recomendados\n")
	b.WriteString("6. toiletries - lista de itens de higiene pessoal\n")
	b.WriteString("7. electronics - lista de eletrônicos recomendados\n")
	b.WriteString("8. documents - lista de documentos necessários\n")
	b.WriteString("9. specialRecommendations - recomendações específicas para o destino e clima\n")
	b.WriteString("10. packingTips - dicas gerais para fazer a mala\n\n")

	b.WriteString("Importante: retorne SOMENTE o JSON, sem explicações adicionais. O JSON deve estar bem formatado e válido.")

	return b.String()
}

func formatTemp(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
