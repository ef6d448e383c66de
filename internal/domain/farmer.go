// Package domain contains core domain types for the AgriSaarthi backend.
package domain

import (
	"fmt"
	"time"
)

// RiskTolerance is a farmer's stated appetite for risky interventions.
type RiskTolerance string

const (
	RiskLow    RiskTolerance = "Low"
	RiskMedium RiskTolerance = "Medium"
	RiskHigh   RiskTolerance = "High"
)

// DefaultSoilType is assumed when a profile does not specify one.
const DefaultSoilType = "Black Soil"

// Location identifies where a farm is. District/State come from onboarding;
// Raw holds free-text the farmer typed and wins over the structured fields
// when building context strings.
type Location struct {
	District string  `json:"district,omitempty"`
	State    string  `json:"state,omitempty"`
	Raw      string  `json:"raw,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
}

// CropRecord is one entry in a farmer's append-only crop history.
type CropRecord struct {
	Crop   string `json:"crop"`
	Season string `json:"season"`
	Year   int    `json:"year"`
	Yield  string `json:"yield"`
}

// FarmerProfile is the agronomic baseline for one registered farmer.
type FarmerProfile struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Phone         string        `json:"phone"`
	Location      Location      `json:"location"`
	PrimaryCrops  []string      `json:"primary_crops"`
	LandSizeAcres float64       `json:"land_size"`
	SoilType      string        `json:"soil_type"`
	WaterAccess   string        `json:"water_access"`
	RiskTolerance RiskTolerance `json:"risk_tolerance"`
	Language      string        `json:"language"`
	CropHistory   []CropRecord  `json:"crop_history,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PrimaryCrop returns the first crop in the ordered primary crop list,
// the farmer's "default crop" for context strings.
func (p *FarmerProfile) PrimaryCrop() string {
	if len(p.PrimaryCrops) == 0 {
		return ""
	}
	return p.PrimaryCrops[0]
}

// LandDescriptor renders the land holding as a human-readable phrase.
func (p *FarmerProfile) LandDescriptor() string {
	soil := p.SoilType
	if soil == "" {
		soil = DefaultSoilType
	}
	return fmt.Sprintf("%g acres of %s", p.LandSizeAcres, soil)
}
