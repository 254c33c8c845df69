package itinerary

// Request captures the payload accepted by the itinerary endpoint.
type Request struct {
	City        string `json:"city" binding:"required"`
	Country     string `json:"country" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Interests   string `json:"interests"`
	Budget      int    `json:"budget" binding:"omitempty,min=1,max=5"`
	TravelStyle string `json:"travelStyle"`
}

// Response is the structured day-by-day itinerary serialized back to API
// consumers.
type Response struct {
	Destination                 string         `json:"destination"`
	TravelPeriod                string         `json:"travelPeriod"`
	WeatherSummary              WeatherSummary `json:"weatherSummary"`
	DayPlans                    []DayPlan      `json:"dayPlans"`
	GeneralTips                 []string       `json:"generalTips"`
	LocalCuisineRecommendations string         `json:"localCuisineRecommendations"`
	TransportationTips          string         `json:"transportationTips"`
}

// WeatherSummary carries the per-day forecast echoed in the response.
type WeatherSummary struct {
	Description  string         `json:"description"`
	DailyWeather []DailyWeather `json:"dailyWeather"`
}

// DailyWeather is one forecast day as presented to API consumers.
type DailyWeather struct {
	Date      string  `json:"date"`
	Condition string  `json:"condition"`
	MinTemp   float64 `json:"minTemp"`
	MaxTemp   float64 `json:"maxTemp"`
	Rainfall  string  `json:"rainfall"`
}

// DayPlan groups the activities suggested for a single calendar day.
type DayPlan struct {
	Date                       string     `json:"date"`
	WeatherDescription         string     `json:"weatherDescription"`
	MorningActivities          []Activity `json:"morningActivities"`
	AfternoonActivities        []Activity `json:"afternoonActivities"`
	EveningActivities          []Activity `json:"eveningActivities"`
	WeatherBasedRecommendation string     `json:"weatherBasedRecommendation"`
}

// Activity is a single itinerary suggestion.
type Activity struct {
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Location             string `json:"location"`
	IndoorOutdoor        string `json:"indoorOutdoor"`
	WeatherConsideration string `json:"weatherConsideration"`
}
