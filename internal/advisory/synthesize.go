package advisory

import (
	"fmt"
	"strings"
	"time"

	"github.com/nag3003/agrisaarthii/internal/domain"
)

// Per-branch confidence values. These are contract constants, not tunables.
const (
	confidencePestTomato = 0.85
	confidenceIrrigation = 0.92
	confidenceGeneric    = 0.75
)

// rainDeferralPct is the rain probability above which irrigation advice
// tells the farmer to keep the motor off.
const rainDeferralPct = 60

// Synthesizer turns a classified query plus decision context into one
// Advice value. It performs no I/O; identifiers come from the injected
// source and timestamps from the caller.
type Synthesizer struct {
	ids IDSource
}

// NewSynthesizer creates a Synthesizer. A nil source falls back to the
// clock-derived default.
func NewSynthesizer(ids IDSource) *Synthesizer {
	if ids == nil {
		ids = ClockIDSource{}
	}
	return &Synthesizer{ids: ids}
}

// Synthesize evaluates the branch table top to bottom, first match wins:
// tomato pest, irrigation, then the generic fallback. The generic branch is
// also the failure mode — partial context degrades confidence, it never
// raises.
func (s *Synthesizer) Synthesize(query string, ctx domain.DecisionContext, intent domain.Intent, at time.Time) domain.Advice {
	advice := domain.Advice{
		ID:        s.ids.AdviceID(at),
		Intent:    intent,
		CreatedAt: at,
	}

	q := strings.ToLower(query)

	switch {
	case intent == domain.IntentPest && strings.Contains(q, "tomato"):
		advice.Text = fmt.Sprintf(
			"Namaste %s. Based on the curling leaves in your tomato crop in %s, it is likely a Thrips infestation. "+
				"Since it is %s and %s, the pest spreads fast. "+
				"ACTION: Spray Neem Oil (5ml/L) immediately. If it persists, use imidacloprid (0.5ml/L) in the evening.",
			ctx.FarmerName, ctx.Location, ctx.Season, ctx.Weather)
		advice.Confidence = confidencePestTomato
		advice.Urgency = domain.UrgencyHigh
		advice.Reasoning = "Curling leaves + season/flowering stage = high Thrips probability in this region."

	case intent == domain.IntentIrrigation:
		moisture := "unknown"
		if ctx.HasSoilMoisture {
			moisture = fmt.Sprintf("%g%%", ctx.SoilMoisture)
		}
		if ctx.RainProbPct > rainDeferralPct {
			advice.Text = fmt.Sprintf(
				"%s, your soil moisture is %s. The weather is %s and rain is expected (%g%% probability), "+
					"so DO NOT start the motor today. Save your electricity and water.",
				ctx.FarmerName, moisture, ctx.Weather, ctx.RainProbPct)
		} else {
			advice.Text = fmt.Sprintf(
				"%s, your soil moisture is %s. No significant rain is expected (%g%% probability). "+
					"If the field is dry, run the motor in the early morning or evening to limit evaporation.",
				ctx.FarmerName, moisture, ctx.RainProbPct)
		}
		advice.Confidence = confidenceIrrigation
		advice.Urgency = domain.UrgencyMedium
		advice.Reasoning = "Forecast rain probability and the live soil moisture reading decide motor use ahead of fixed schedules."

	default:
		advice.Text = fmt.Sprintf(
			"I've analyzed your query about %q. Based on your location in %s, please ensure you check for soil health before adding more fertilizer.",
			query, ctx.Location)
		advice.Confidence = confidenceGeneric
		advice.Urgency = domain.UrgencyMedium
		advice.Reasoning = "Generic advice based on region-specific soil types."
	}

	return advice
}
