// Package identity resolves which farmer a request belongs to.
//
// Authentication proper is out of scope for this service; the mobile client
// sends its registered farmer ID in a header and the middleware guarantees
// downstream handlers always see a usable ID with a profile row behind it.
package identity

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/nag3003/agrisaarthii/internal/advisory"
	"github.com/nag3003/agrisaarthii/internal/store"
)

const (
	// FarmerHeaderName carries the farmer ID on every API request.
	FarmerHeaderName = "X-Farmer-ID"

	// DefaultFarmerID is used when the client sends nothing, so the demo
	// flow works without onboarding.
	DefaultFarmerID = "f-123"
)

type contextKey int

const farmerIDKey contextKey = iota

var farmerIDPattern = regexp.MustCompile(`^[A-Za-z0-9._:-]{1,64}$`)

// FarmerIDFromContext extracts the resolved farmer ID from the request
// context.
func FarmerIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(farmerIDKey).(string); ok {
		return v
	}
	return DefaultFarmerID
}

func sanitizeFarmerID(id string) string {
	id = strings.TrimSpace(id)
	if id == "" || !farmerIDPattern.MatchString(id) {
		return DefaultFarmerID
	}
	return id
}

func farmerIDFromRequest(r *http.Request) string {
	id := r.Header.Get(FarmerHeaderName)
	if id == "" {
		id = r.URL.Query().Get("farmer_id")
	}
	return sanitizeFarmerID(id)
}

func ensureProfile(ctx context.Context, repo store.Repository, farmerID string) error {
	profile, err := repo.GetProfile(ctx, farmerID)
	if err != nil {
		return err
	}
	if profile != nil {
		return nil
	}

	fallback := advisory.DefaultProfile()
	fallback.ID = farmerID
	now := time.Now()
	fallback.CreatedAt = now
	fallback.UpdatedAt = now
	return repo.UpsertProfile(ctx, fallback)
}

// Middleware resolves the farmer ID and lazily creates a default profile
// row for first-contact farmers.
func Middleware(repo store.Repository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			farmerID := farmerIDFromRequest(r)

			if err := ensureProfile(r.Context(), repo, farmerID); err != nil {
				http.Error(w, `{"error":"failed to initialize farmer profile"}`, http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), farmerIDKey, farmerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
