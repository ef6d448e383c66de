package domain

// Season is the Indian cropping season derived from the calendar month.
type Season string

const (
	SeasonRabi   Season = "Rabi"
	SeasonKharif Season = "Kharif"
)

// SeasonForMonth maps a calendar month (1-12) to the cropping season.
// October through March is Rabi, everything else Kharif. This is a fixed
// rule, not configuration.
func SeasonForMonth(month int) Season {
	switch month {
	case 10, 11, 12, 1, 2, 3:
		return SeasonRabi
	default:
		return SeasonKharif
	}
}

// DecisionContext is the single normalized value every downstream advisory
// component consumes. It is built once per request and never mutated.
type DecisionContext struct {
	FarmerName   string        `json:"farmer_name"`
	Crops        []string      `json:"crops"`
	LandInfo     string        `json:"land_info"`
	WaterSource  string        `json:"water_source"`
	Location     string        `json:"location"`
	Season       Season        `json:"current_season"`
	Weather      string        `json:"weather"`
	HumidityPct  float64       `json:"humidity"`
	RainProbPct  float64       `json:"rain_prob"`
	MarketStatus string        `json:"market_status"`
	RiskProfile  RiskTolerance `json:"risk_profile"`

	// SoilMoisture is a live sensor value on the 0-100 scale. Valid only
	// when HasSoilMoisture is set.
	SoilMoisture    float64 `json:"moisture,omitempty"`
	HasSoilMoisture bool    `json:"-"`
}

// PrimaryCrop returns the first crop in the context crop list.
func (c *DecisionContext) PrimaryCrop() string {
	if len(c.Crops) == 0 {
		return ""
	}
	return c.Crops[0]
}
