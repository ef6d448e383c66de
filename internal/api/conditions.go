package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/nag3003/agrisaarthii/internal/advisory"
	"github.com/nag3003/agrisaarthii/internal/identity"
)

// ConditionsHandler exposes the raw weather and market snapshots the
// pipeline consumes, for clients that render them directly.
type ConditionsHandler struct {
	*Handler
}

// NewConditionsHandler creates the conditions handler.
func NewConditionsHandler(base *Handler) *ConditionsHandler {
	return &ConditionsHandler{Handler: base}
}

// RegisterRoutes registers conditions routes.
func (h *ConditionsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/weather", h.Weather)
		r.Post("/market/prices", h.MarketPrices)
	})
}

// Weather returns the current snapshot for the given coordinates, defaulting
// to the caller's profile location.
func (h *ConditionsHandler) Weather(w http.ResponseWriter, r *http.Request) {
	lat, latErr := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, lonErr := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if latErr != nil || lonErr != nil {
		farmerID := identity.FarmerIDFromContext(r.Context())
		profile, err := h.repo.GetProfile(r.Context(), farmerID)
		if err != nil || profile == nil {
			profile = advisory.DefaultProfile()
		}
		lat, lon = profile.Location.Lat, profile.Location.Lon
	}

	snap, err := h.weather.Current(r.Context(), lat, lon)
	if err != nil {
		slog.Error("Weather fetch failed", "error", err)
		Error(w, http.StatusBadGateway, "weather service unavailable")
		return
	}

	JSON(w, http.StatusOK, snap)
}

type marketRequest struct {
	Crop     string `json:"crop"`
	Location string `json:"location"`
}

// MarketPrices returns the latest mandi snapshot for a crop.
func (h *ConditionsHandler) MarketPrices(w http.ResponseWriter, r *http.Request) {
	var req marketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Crop == "" {
		Error(w, http.StatusBadRequest, "crop is required")
		return
	}

	snap, err := h.market.Prices(r.Context(), req.Crop, req.Location)
	if err != nil {
		slog.Error("Market fetch failed", "error", err, "crop", req.Crop)
		Error(w, http.StatusBadGateway, "market service unavailable")
		return
	}

	JSON(w, http.StatusOK, snap)
}
