package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nag3003/agrisaarthii/internal/domain"
	"github.com/nag3003/agrisaarthii/internal/knowledge"
	"github.com/nag3003/agrisaarthii/internal/provider"
)

// KnowledgeHandler serves the embedded offline knowledge base and the crop
// vision diagnosis flow.
type KnowledgeHandler struct {
	kb     *knowledge.Base
	vision provider.CropVision
}

// NewKnowledgeHandler creates the knowledge handler.
func NewKnowledgeHandler(kb *knowledge.Base, vision provider.CropVision) *KnowledgeHandler {
	return &KnowledgeHandler{kb: kb, vision: vision}
}

// RegisterRoutes registers knowledge routes.
func (h *KnowledgeHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/knowledge/calendar", h.CropCalendar)
		r.Get("/knowledge/seasonal", h.SeasonalAdvice)
		r.Post("/vision/diagnosis", h.Diagnose)
	})
}

// CropCalendar returns the stage-by-stage calendar for a crop, for clients
// to cache ahead of going offline.
func (h *KnowledgeHandler) CropCalendar(w http.ResponseWriter, r *http.Request) {
	crop := r.URL.Query().Get("crop")
	if crop == "" {
		Error(w, http.StatusBadRequest, "crop is required")
		return
	}

	stages, ok := h.kb.CropCalendar(crop)
	if !ok {
		JSON(w, http.StatusNotFound, map[string]interface{}{
			"message":         "Calendar not found for this crop/region.",
			"available_crops": h.kb.Crops(),
		})
		return
	}

	JSON(w, http.StatusOK, stages)
}

// SeasonalAdvice returns the cacheable advice line for a crop in the
// current season.
func (h *KnowledgeHandler) SeasonalAdvice(w http.ResponseWriter, r *http.Request) {
	crop := r.URL.Query().Get("crop")
	if crop == "" {
		Error(w, http.StatusBadRequest, "crop is required")
		return
	}

	season := domain.SeasonForMonth(int(time.Now().Month()))
	JSON(w, http.StatusOK, map[string]interface{}{
		"season": season,
		"crop":   crop,
		"advice": h.kb.SeasonalAdvice(season, crop),
	})
}

// Diagnose classifies a crop photo into a disease diagnosis with a remedy.
func (h *KnowledgeHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	file, _, err := r.FormFile("image")
	if err != nil {
		Error(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()

	diag, err := h.vision.Diagnose(r.Context(), file)
	if err != nil {
		slog.Error("Vision diagnosis failed", "error", err)
		Error(w, http.StatusBadGateway, "diagnosis failed")
		return
	}

	JSON(w, http.StatusOK, diag)
}
