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

// MarketProvider fetches mandi prices for a crop at a location.
type MarketProvider interface {
	Prices(ctx context.Context, crop, location string) (domain.MarketSnapshot, error)
}

// StaticMarket mimics the Agmarknet response shape with fixed values.
type StaticMarket struct{}

func (StaticMarket) Prices(_ context.Context, crop, location string) (domain.MarketSnapshot, error) {
	return domain.MarketSnapshot{
		Crop:     crop,
		AvgPrice: "2100",
		Unit:     "Quintal",
		Trend:    "up",
		Mandi:    location + " Mandi",
	}, nil
}

// MandiClient talks to a mandi price aggregation API.
type MandiClient struct {
	baseURL string
	client  *http.Client
}

// NewMandiClient creates a live market provider.
func NewMandiClient(baseURL string) *MandiClient {
	return &MandiClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *MandiClient) Prices(ctx context.Context, crop, location string) (domain.MarketSnapshot, error) {
	q := url.Values{}
	q.Set("crop", crop)
	q.Set("location", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/prices?"+q.Encode(), nil)
	if err != nil {
		return domain.MarketSnapshot{}, fmt.Errorf("build market request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.MarketSnapshot{}, fmt.Errorf("fetch market prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.MarketSnapshot{}, fmt.Errorf("market API returned status %d", resp.StatusCode)
	}

	var snap domain.MarketSnapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return domain.MarketSnapshot{}, fmt.Errorf("decode market response: %w", err)
	}
	if snap.Crop == "" {
		snap.Crop = crop
	}
	return snap, nil
}
