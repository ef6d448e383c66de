// Package advisory implements the context-aware advisory decision pipeline:
// context assembly, intent classification, advice synthesis, predictive
// alerts and the feedback confidence signal. Everything here is a pure
// function of its inputs; evaluation time is always passed in explicitly so
// tests can pin it.
package advisory

import (
	"fmt"
	"time"

	"github.com/nag3003/agrisaarthii/internal/domain"
)

// SensorTypeSoilMoisture is the only sensor type the pipeline interprets.
const SensorTypeSoilMoisture = "soil_moisture"

// placeholderCrop is substituted when a profile carries no primary crops,
// so downstream synthesis never sees an empty crop list.
const placeholderCrop = "Crops"

// fallbackLocation is used when a profile has neither free-text location
// nor district/state.
const fallbackLocation = "Unknown, India"

// SensorInput is an optional live reading attached to context assembly.
type SensorInput struct {
	Type  string
	Value float64
}

// Assemble merges a farmer profile with best-effort weather and market
// snapshots into the normalized DecisionContext. The profile must be
// non-nil; weather and market may be zero values, in which case documented
// placeholders are used — the pipeline favors degraded advice over no
// advice. Season derives from the evaluation time, never from input.
func Assemble(profile *domain.FarmerProfile, weather domain.WeatherSnapshot, market domain.MarketSnapshot, sensor *SensorInput, at time.Time) domain.DecisionContext {
	crops := profile.PrimaryCrops
	if len(crops) == 0 {
		crops = []string{placeholderCrop}
	}

	condition := weather.Condition
	if condition == "" {
		condition = "N/A"
	}

	price := market.AvgPrice
	if price == "" {
		price = "N/A"
	}

	risk := profile.RiskTolerance
	if risk == "" {
		risk = domain.RiskMedium
	}

	ctx := domain.DecisionContext{
		FarmerName:   profile.Name,
		Crops:        crops,
		LandInfo:     profile.LandDescriptor(),
		WaterSource:  profile.WaterAccess,
		Location:     resolveLocation(profile.Location),
		Season:       domain.SeasonForMonth(int(at.Month())),
		Weather:      fmt.Sprintf("%g°C, %s", weather.TemperatureC, condition),
		HumidityPct:  weather.HumidityPct,
		RainProbPct:  weather.RainProbPct,
		MarketStatus: fmt.Sprintf("Current price for %s: %s", crops[0], price),
		RiskProfile:  risk,
	}

	if sensor != nil && sensor.Type == SensorTypeSoilMoisture {
		ctx.SoilMoisture = sensor.Value
		ctx.HasSoilMoisture = true
	}

	return ctx
}

// resolveLocation picks the context location string: explicit free-text
// first, then "district, state", then the fixed fallback.
func resolveLocation(loc domain.Location) string {
	if loc.Raw != "" {
		return loc.Raw
	}
	if loc.District != "" || loc.State != "" {
		return fmt.Sprintf("%s, %s", loc.District, loc.State)
	}
	return fallbackLocation
}

// DefaultProfile is the single fallback profile factory used when no
// profile can be resolved. Callers must not construct their own
// placeholder farmers.
func DefaultProfile() *domain.FarmerProfile {
	return &domain.FarmerProfile{
		ID:    "f-123",
		Name:  "Ramesh",
		Phone: "919876543210",
		Location: domain.Location{
			District: "Nashik",
			State:    "Maharashtra",
			Lat:      19.99,
			Lon:      73.78,
		},
		PrimaryCrops:  []string{"Tomato", "Onion"},
		LandSizeAcres: 2,
		SoilType:      domain.DefaultSoilType,
		WaterAccess:   "Borewell",
		RiskTolerance: domain.RiskMedium,
		Language:      "hi",
	}
}

// DefaultContext assembles a context from the fallback profile and empty
// snapshots. It exists so degraded code paths share one placeholder
// instead of duplicating literals.
func DefaultContext(at time.Time) domain.DecisionContext {
	return Assemble(DefaultProfile(), domain.WeatherSnapshot{}, domain.MarketSnapshot{}, nil, at)
}
