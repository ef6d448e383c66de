// Package provider defines the collaborator boundaries the advisory core
// consumes: weather, market, speech and vision. Each boundary is an
// interface with one static in-memory implementation for tests and demo
// mode, and a production implementation swapped in at composition time.
// Mock values never live inside the decision logic itself.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/nag3003/agrisaarthii/internal/domain"
)

// WeatherProvider fetches a point-in-time weather reading for coordinates.
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error)
}

// StaticWeather returns a fixed snapshot. Used in demo mode and tests; the
// humidity is deliberately high enough to trigger the fungal-risk alert.
type StaticWeather struct{}

func (StaticWeather) Current(context.Context, float64, float64) (domain.WeatherSnapshot, error) {
	return domain.WeatherSnapshot{
		TemperatureC: 32,
		Condition:    "Sunny but Cloudy",
		HumidityPct:  85,
		RainProbPct:  15,
		WindSpeedKmh: 12,
		PressureHpa:  1012,
	}, nil
}

// OpenWeatherClient talks to the OpenWeatherMap current-conditions API.
type OpenWeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewOpenWeatherClient creates a live weather provider. baseURL may be
// empty to use the public endpoint.
func NewOpenWeatherClient(apiKey, baseURL string) *OpenWeatherClient {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5/weather"
	}
	return &OpenWeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *OpenWeatherClient) Current(ctx context.Context, lat, lon float64) (domain.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%g", lat))
	q.Set("lon", fmt.Sprintf("%g", lon))
	q.Set("units", "metric")
	q.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("fetch weather: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherSnapshot{}, fmt.Errorf("weather API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Main struct {
			Temp     float64 `json:"temp"`
			Humidity float64 `json:"humidity"`
			Pressure float64 `json:"pressure"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
		Wind struct {
			Speed float64 `json:"speed"`
		} `json:"wind"`
		Rain map[string]float64 `json:"rain"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.WeatherSnapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	snap := domain.WeatherSnapshot{
		TemperatureC: payload.Main.Temp,
		HumidityPct:  payload.Main.Humidity,
		PressureHpa:  payload.Main.Pressure,
		WindSpeedKmh: payload.Wind.Speed * 3.6,
	}
	if len(payload.Weather) > 0 {
		snap.Condition = payload.Weather[0].Main
	}
	// The current-conditions API has no rain probability; approximate from
	// recent precipitation presence.
	if len(payload.Rain) > 0 {
		snap.RainProbPct = 80
	}
	return snap, nil
}
