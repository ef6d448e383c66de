package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nag3003/agrisaarthii/internal/domain"
	"github.com/nag3003/agrisaarthii/internal/identity"
)

// ProfileHandler serves farmer profile reads and updates.
type ProfileHandler struct {
	*Handler
}

// NewProfileHandler creates the profile handler.
func NewProfileHandler(base *Handler) *ProfileHandler {
	return &ProfileHandler{Handler: base}
}

// RegisterRoutes registers profile routes.
func (h *ProfileHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/profile", func(r chi.Router) {
		r.Get("/{id}", h.GetProfile)
		r.Put("/", h.UpsertProfile)
	})
}

// GetProfile returns a farmer profile by ID.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	profile, err := h.repo.GetProfile(r.Context(), id)
	if err != nil {
		slog.Error("Failed to load profile", "error", err, "farmer_id", id)
		Error(w, http.StatusInternalServerError, "failed to load profile")
		return
	}
	if profile == nil {
		Error(w, http.StatusNotFound, "profile not found")
		return
	}

	JSON(w, http.StatusOK, profile)
}

// UpsertProfile creates or replaces the caller's profile. The profile ID is
// taken from the resolved identity, never from the body.
func (h *ProfileHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	var profile domain.FarmerProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if profile.Name == "" {
		Error(w, http.StatusBadRequest, "name is required")
		return
	}

	farmerID := identity.FarmerIDFromContext(r.Context())
	profile.ID = farmerID

	existing, err := h.repo.GetProfile(r.Context(), farmerID)
	if err != nil {
		slog.Error("Failed to load profile for update", "error", err, "farmer_id", farmerID)
		Error(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	now := time.Now()
	profile.UpdatedAt = now
	if existing != nil && !existing.CreatedAt.IsZero() {
		profile.CreatedAt = existing.CreatedAt
	} else {
		profile.CreatedAt = now
	}

	if err := h.repo.UpsertProfile(r.Context(), &profile); err != nil {
		slog.Error("Failed to save profile", "error", err, "farmer_id", farmerID)
		Error(w, http.StatusInternalServerError, "failed to save profile")
		return
	}

	JSON(w, http.StatusOK, &profile)
}
