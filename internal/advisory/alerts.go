package advisory

import (
	"fmt"

	"github.com/nag3003/agrisaarthii/internal/domain"
)

// humidityRiskPct is the humidity above which (strictly) the fungal-risk
// alert fires. Exactly 80 does not fire.
const humidityRiskPct = 80

// summerMonths are the months with elevated sucking-pest activity.
var summerMonths = map[int]bool{3: true, 4: true, 5: true}

// GenerateAlerts scans the context for trend signals and returns zero or
// more alerts. The checks are independent and additive and their order
// fixes the output order: weather risk, seasonal pest, market trend.
// Callers must not assume a fixed count.
func GenerateAlerts(ctx domain.DecisionContext, month int) []domain.Alert {
	var alerts []domain.Alert

	if ctx.HumidityPct > humidityRiskPct {
		alerts = append(alerts, domain.Alert{
			ID:      "p1",
			Type:    domain.AlertWeatherRisk,
			Title:   "High Humidity Alert",
			Message: fmt.Sprintf("Humidity is %g%%. High risk of fungal infection for your %s crop.", ctx.HumidityPct, ctx.PrimaryCrop()),
			Urgency: domain.UrgencyHigh,
			Action:  "Spray prophylactic fungicide (e.g. Saaf 2g/L) today.",
		})
	}

	if summerMonths[month] {
		alerts = append(alerts, domain.Alert{
			ID:      "p2",
			Type:    domain.AlertPestOutbreak,
			Title:   "Sucking Pest Warning",
			Message: "Summer heat increases Thrips and Mites activity in your region.",
			Urgency: domain.UrgencyMedium,
			Action:  "Install yellow sticky traps (10 per acre) immediately.",
		})
	}

	// Static placeholder for the mocked market connector. A real deployment
	// replaces this with a genuine trend computation instead of an
	// unconditional emission.
	alerts = append(alerts, domain.Alert{
		ID:      "p3",
		Type:    domain.AlertMarketTrend,
		Title:   fmt.Sprintf("Price Forecast: %s", ctx.PrimaryCrop()),
		Message: "Market trends suggest a price hike of 20% next week due to low supply.",
		Urgency: domain.UrgencyMedium,
		Action:  "Wait for 5 days before harvesting for better returns.",
	})

	return alerts
}
