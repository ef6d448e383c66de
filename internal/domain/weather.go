package domain

// WeatherSnapshot is a point-in-time reading from the weather provider.
// It is sourced once per request and never persisted.
type WeatherSnapshot struct {
	TemperatureC float64 `json:"temp"`
	Condition    string  `json:"condition"`
	HumidityPct  float64 `json:"humidity"`
	RainProbPct  float64 `json:"rain_prob"`
	WindSpeedKmh float64 `json:"wind_speed"`
	PressureHpa  float64 `json:"pressure"`
}

// MarketSnapshot is the market provider's view of one crop at one location.
type MarketSnapshot struct {
	Crop     string `json:"crop"`
	AvgPrice string `json:"avg_price"`
	Unit     string `json:"unit"`
	Trend    string `json:"trend"`
	Mandi    string `json:"mandi,omitempty"`
}
