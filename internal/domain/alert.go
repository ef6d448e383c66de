package domain

// AlertType categorizes a predictive alert.
type AlertType string

const (
	AlertWeatherRisk  AlertType = "WEATHER_RISK"
	AlertPestOutbreak AlertType = "PEST_OUTBREAK"
	AlertMarketTrend  AlertType = "MARKET_TREND"
)

// Alert is a proactively generated warning, not triggered by an explicit
// farmer query. The generator emits alerts in a fixed check order and the
// order is significant to callers.
type Alert struct {
	ID      string    `json:"id"`
	Type    AlertType `json:"type"`
	Title   string    `json:"title"`
	Message string    `json:"message"`
	Urgency Urgency   `json:"urgency"`
	Action  string    `json:"action"`
}
