package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nag3003/agrisaarthii/internal/advisory"
	"github.com/nag3003/agrisaarthii/internal/domain"
	"github.com/nag3003/agrisaarthii/internal/identity"
)

// FeedbackHandler records advisory outcomes and serves the learning stats
// derived from them.
type FeedbackHandler struct {
	*Handler
}

// NewFeedbackHandler creates the feedback handler.
func NewFeedbackHandler(base *Handler) *FeedbackHandler {
	return &FeedbackHandler{Handler: base}
}

// RegisterRoutes registers feedback routes.
func (h *FeedbackHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/feedback/outcome", h.RecordOutcome)
		r.Get("/feedback/stats", h.LearningStats)
		r.Post("/sync/batch", h.SyncBatch)
	})
}

type outcomeRequest struct {
	AdviceID    string `json:"advice_id"`
	ActionTaken bool   `json:"action_taken"`
	Details     string `json:"details"`
}

// RecordOutcome stores whether the farmer followed a prior advisory. The
// stored advice is never altered; the reply carries the refreshed
// confidence signal.
func (h *FeedbackHandler) RecordOutcome(w http.ResponseWriter, r *http.Request) {
	var req outcomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.AdviceID == "" {
		Error(w, http.StatusBadRequest, "advice_id is required")
		return
	}

	farmerID := identity.FarmerIDFromContext(r.Context())
	record := &domain.FeedbackRecord{
		FarmerID:    farmerID,
		AdviceID:    req.AdviceID,
		ActionTaken: req.ActionTaken,
		Outcome:     req.Details,
		RecordedAt:  time.Now(),
	}

	if err := h.repo.SaveFeedback(r.Context(), record); err != nil {
		slog.Error("Failed to save feedback", "error", err, "farmer_id", farmerID)
		Error(w, http.StatusInternalServerError, "failed to record outcome")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"status":                "recorded",
		"impact":                "Model confidence updated",
		"new_system_confidence": advisory.OutcomeSignal(req.ActionTaken),
	})
}

// LearningStats reports how often this farmer acted on past advisories.
func (h *FeedbackHandler) LearningStats(w http.ResponseWriter, r *http.Request) {
	farmerID := identity.FarmerIDFromContext(r.Context())

	stats, err := h.repo.LearningStats(r.Context(), farmerID)
	if err != nil {
		slog.Error("Failed to compute learning stats", "error", err, "farmer_id", farmerID)
		Error(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"total_advisories": stats.TotalAdvisories,
		"actions_followed": stats.ActionsFollowed,
		"success_rate":     stats.SuccessRate(),
	})
}

type syncItem struct {
	Type        string `json:"type"`
	AdviceID    string `json:"advice_id"`
	ActionTaken bool   `json:"action_taken"`
	Details     string `json:"details"`
}

type syncRequest struct {
	Batch []syncItem `json:"batch"`
}

// SyncBatch replays feedback that a device queued while offline. Unknown
// item types are skipped rather than failing the batch.
func (h *FeedbackHandler) SyncBatch(w http.ResponseWriter, r *http.Request) {
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	farmerID := identity.FarmerIDFromContext(r.Context())
	now := time.Now()

	synced := 0
	for _, item := range req.Batch {
		if item.Type != "FEEDBACK" || item.AdviceID == "" {
			continue
		}
		details := item.Details
		if details == "" {
			details = "Offline Sync"
		}
		record := &domain.FeedbackRecord{
			FarmerID:    farmerID,
			AdviceID:    item.AdviceID,
			ActionTaken: item.ActionTaken,
			Outcome:     details,
			RecordedAt:  now,
		}
		if err := h.repo.SaveFeedback(r.Context(), record); err != nil {
			slog.Error("Failed to sync feedback item", "error", err, "farmer_id", farmerID, "advice_id", item.AdviceID)
			continue
		}
		synced++
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"synced_count": synced,
		"status":       "SUCCESS",
		"timestamp":    now,
	})
}
