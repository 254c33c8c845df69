package weather

// Forecast holds the per-day aggregates for a location, ordered by date.
type Forecast struct {
	Location string        `json:"location"`
	Country  string        `json:"country"`
	Days     []ForecastDay `json:"days"`
}

// ForecastDay is a single day of aggregated weather data.
type ForecastDay struct {
	Date         string  `json:"date"`
	MinTempC     float64 `json:"minTempC"`
	MaxTempC     float64 `json:"maxTempC"`
	AvgTempC     float64 `json:"avgTempC"`
	Condition    string  `json:"condition"`
	ChanceOfRain int     `json:"chanceOfRain"`
}

// MaxForecastDays is the upstream forecast window limit.
const MaxForecastDays = 14
