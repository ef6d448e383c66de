package advisory

import (
	"strings"
	"testing"
	"time"

	"github.com/nag3003/agrisaarthii/internal/domain"
)

// End-to-end scenario: a Nashik tomato farmer under 85% humidity asking
// about curling yellow leaves.
func TestAdvisoryPipelineScenario(t *testing.T) {
	profile := &domain.FarmerProfile{
		ID:            "f-777",
		Name:          "Sunita",
		Location:      domain.Location{District: "Nashik", State: "Maharashtra"},
		PrimaryCrops:  []string{"Tomato"},
		LandSizeAcres: 1.5,
		WaterAccess:   "Borewell",
		RiskTolerance: domain.RiskMedium,
	}
	weather := domain.WeatherSnapshot{TemperatureC: 31, Condition: "Humid", HumidityPct: 85, RainProbPct: 20}
	market := domain.MarketSnapshot{AvgPrice: "₹2400", Unit: "Quintal"}

	at := time.Date(2024, time.August, 10, 9, 0, 0, 0, time.UTC)
	ctx := Assemble(profile, weather, market, nil, at)

	query := "curling yellow tomato leaves"
	intent := ClassifyIntent(query)
	if intent != domain.IntentPest {
		t.Fatalf("intent = %v, want PEST", intent)
	}

	adv := NewSynthesizer(UUIDSource{}).Synthesize(query, ctx, intent, at)
	if adv.Urgency != domain.UrgencyHigh || adv.Confidence != 0.85 {
		t.Errorf("advice urgency=%v confidence=%v, want High/0.85", adv.Urgency, adv.Confidence)
	}
	if !strings.Contains(adv.Text, "Thrips") || !strings.Contains(adv.Text, "Neem Oil") {
		t.Errorf("advice text missing pathology or remedy: %s", adv.Text)
	}

	// August: humidity alert plus the ever-present market trend, in order.
	alerts := GenerateAlerts(ctx, int(at.Month()))
	if len(alerts) != 2 {
		t.Fatalf("alerts = %d, want 2", len(alerts))
	}
	if alerts[0].Type != domain.AlertWeatherRisk || alerts[1].Type != domain.AlertMarketTrend {
		t.Errorf("alert order = %v, %v", alerts[0].Type, alerts[1].Type)
	}

	// A summer month adds the pest outbreak between them.
	alerts = GenerateAlerts(ctx, 4)
	if len(alerts) != 3 || alerts[1].Type != domain.AlertPestOutbreak {
		t.Errorf("summer alerts = %v", alertTypes(alerts))
	}
}
