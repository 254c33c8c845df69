package baggage

// Request captures the payload accepted by the baggage recommendation
// endpoint.
type Request struct {
	City            string `json:"city" binding:"required"`
	Country         string `json:"country" binding:"required"`
	StartDate       string `json:"startDate" binding:"required"`
	EndDate         string `json:"endDate" binding:"required"`
	TravelPurpose   string `json:"travelPurpose"`
	UserPreferences string `json:"userPreferences"`
}

// Response is the structured baggage recommendation serialized back to API
// consumers. The field set is the schema the prompt asks the model for and
// the one the fallback synthesizer fills.
type Response struct {
	Destination            string         `json:"destination"`
	TravelPeriod           string         `json:"travelPeriod"`
	WeatherSummary         WeatherSummary `json:"weatherSummary"`
	EssentialClothing      []ClothingItem `json:"essentialClothing"`
	Accessories            []string       `json:"accessories"`
	Toiletries             []string       `json:"toiletries"`
	Electronics            []string       `json:"electronics"`
	Documents              []string       `json:"documents"`
	SpecialRecommendations string         `json:"specialRecommendations"`
	PackingTips            string         `json:"packingTips"`
}

// WeatherSummary condenses the forecast window for the response header.
type WeatherSummary struct {
	Description        string  `json:"description"`
	AverageTemperature float64 `json:"averageTemperature"`
	MinTemperature     float64 `json:"minTemperature"`
	MaxTemperature     float64 `json:"maxTemperature"`
	Precipitation      string  `json:"precipitation"`
	Humidity           string  `json:"humidity"`
	Wind               string  `json:"wind"`
}

// ClothingItem is one recommended garment with a suggested quantity.
type ClothingItem struct {
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
}
