package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nag3003/agrisaarthii/internal/advisory"
	"github.com/nag3003/agrisaarthii/internal/config"
	"github.com/nag3003/agrisaarthii/internal/domain"
	"github.com/nag3003/agrisaarthii/internal/identity"
	"github.com/nag3003/agrisaarthii/internal/provider"
	"github.com/nag3003/agrisaarthii/internal/sensor"
)

// AdvisoryHandler serves the query-to-advice pipeline and the predictive
// alert feed.
type AdvisoryHandler struct {
	*Handler
	synth       *advisory.Synthesizer
	registry    *sensor.Registry
	transcriber provider.Transcriber
	cfg         *config.Config
}

// NewAdvisoryHandler creates the advisory handler.
func NewAdvisoryHandler(base *Handler, synth *advisory.Synthesizer, registry *sensor.Registry, transcriber provider.Transcriber, cfg *config.Config) *AdvisoryHandler {
	return &AdvisoryHandler{
		Handler:     base,
		synth:       synth,
		registry:    registry,
		transcriber: transcriber,
		cfg:         cfg,
	}
}

// RegisterRoutes registers advisory routes.
func (h *AdvisoryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/query/advice", h.QueryAdvice)
		r.Post("/voice/query", h.VoiceQuery)
		r.Get("/advice/recent", h.RecentAdvice)
		r.Get("/alerts/predictive", h.PredictiveAlerts)
		r.Post("/fallback/sms", h.SMSFallback)
	})
}

type adviceRequest struct {
	Text string `json:"text"`
}

// QueryAdvice runs a free-text query through the full pipeline: context
// assembly, intent classification, synthesis, then the advice log.
func (h *AdvisoryHandler) QueryAdvice(w http.ResponseWriter, r *http.Request) {
	var req adviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	h.respondWithAdvice(w, r, req.Text, nil)
}

// VoiceQuery transcribes an uploaded recording and runs the resulting text
// through the same pipeline as a typed query.
func (h *AdvisoryHandler) VoiceQuery(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("audio")
	if err != nil {
		Error(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	text, err := h.transcriber.Transcribe(r.Context(), file, header.Filename)
	if err != nil {
		slog.Error("Transcription failed", "error", err)
		Error(w, http.StatusBadGateway, "transcription failed")
		return
	}

	h.respondWithAdvice(w, r, text, map[string]interface{}{"transcript": text})
}

// respondWithAdvice is the shared tail of the typed and voice flows. Extra
// fields are merged into the response object.
func (h *AdvisoryHandler) respondWithAdvice(w http.ResponseWriter, r *http.Request, text string, extra map[string]interface{}) {
	ctx := r.Context()
	farmerID := identity.FarmerIDFromContext(ctx)
	now := time.Now()

	decisionCtx := h.assembleContext(r, farmerID, now)
	intent := advisory.ClassifyIntent(text)
	advice := h.synth.Synthesize(text, decisionCtx, intent, now)

	if err := h.repo.SaveAdvice(ctx, farmerID, &advice); err != nil {
		slog.Error("Failed to log advice", "error", err, "farmer_id", farmerID)
	}

	resp := map[string]interface{}{"advice": advice}
	for k, v := range extra {
		resp[k] = v
	}
	JSON(w, http.StatusOK, resp)
}

// RecentAdvice returns the newest logged advisories for the farmer, for
// devices re-syncing after an offline stretch.
func (h *AdvisoryHandler) RecentAdvice(w http.ResponseWriter, r *http.Request) {
	farmerID := identity.FarmerIDFromContext(r.Context())

	limit := 5
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 && v <= 50 {
		limit = v
	}

	advice, err := h.repo.RecentAdvice(r.Context(), farmerID, limit)
	if err != nil {
		slog.Error("Failed to load recent advice", "error", err, "farmer_id", farmerID)
		Error(w, http.StatusInternalServerError, "failed to load advice log")
		return
	}
	if advice == nil {
		advice = []*domain.Advice{}
	}

	JSON(w, http.StatusOK, map[string]interface{}{"advice": advice})
}

// PredictiveAlerts evaluates the alert rules against the farmer's current
// context.
func (h *AdvisoryHandler) PredictiveAlerts(w http.ResponseWriter, r *http.Request) {
	farmerID := identity.FarmerIDFromContext(r.Context())
	now := time.Now()

	decisionCtx := h.assembleContext(r, farmerID, now)
	alerts := advisory.GenerateAlerts(decisionCtx, int(now.Month()))

	JSON(w, http.StatusOK, alerts)
}

type smsRequest struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// SMSFallback answers queries arriving through an SMS gateway. Known
// patterns get an immediate reply; everything else is queued for a callback.
func (h *AdvisoryHandler) SMSFallback(w http.ResponseWriter, r *http.Request) {
	var req smsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	q := strings.ToLower(req.Message)
	var reply string
	if strings.Contains(q, "tomato") && strings.Contains(q, "curl") {
		reply = "AgriSaarthi: Tomato leaf curling is likely Thrips. Spray Neem Oil (5ml/L). For more details, call 1800-AGRI."
	} else {
		reply = "AgriSaarthi: Query received. Our expert will call you back within 30 minutes."
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "SMS_SENT",
		"to":        req.Phone,
		"message":   reply,
		"timestamp": time.Now(),
	})
}

// assembleContext gathers the profile, best-effort weather and market
// snapshots, and any fresh soil moisture reading for the farmer.
func (h *AdvisoryHandler) assembleContext(r *http.Request, farmerID string, at time.Time) domain.DecisionContext {
	ctx := r.Context()

	profile, err := h.repo.GetProfile(ctx, farmerID)
	if err != nil {
		slog.Warn("Profile lookup failed, using fallback", "error", err, "farmer_id", farmerID)
	}
	if profile == nil {
		profile = advisory.DefaultProfile()
	}

	var weather domain.WeatherSnapshot
	if snap, err := h.weather.Current(ctx, profile.Location.Lat, profile.Location.Lon); err != nil {
		slog.Warn("Weather unavailable, degrading context", "error", err, "farmer_id", farmerID)
	} else {
		weather = snap
	}

	var market domain.MarketSnapshot
	if snap, err := h.market.Prices(ctx, profile.PrimaryCrop(), profile.Location.District); err != nil {
		slog.Warn("Market prices unavailable, degrading context", "error", err, "farmer_id", farmerID)
	} else {
		market = snap
	}

	var sensorInput *advisory.SensorInput
	if reading, ok := h.registry.Latest(farmerID, advisory.SensorTypeSoilMoisture, h.cfg.SensorMaxAge); ok {
		sensorInput = &advisory.SensorInput{Type: reading.Type, Value: reading.Value}
	}

	return advisory.Assemble(profile, weather, market, sensorInput, at)
}
