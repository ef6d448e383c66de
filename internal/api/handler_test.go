//nolint:revive // "api" package name is intentionally concise for this layer.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/nag3003/agrisaarthii/internal/domain"
)

// fakeRepo is an in-memory Repository for handler tests.
type fakeRepo struct {
	mu       sync.Mutex
	profiles map[string]*domain.FarmerProfile
	advice   []*domain.Advice
	feedback []*domain.FeedbackRecord
	stats    domain.LearningStats
	pingErr  error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{profiles: make(map[string]*domain.FarmerProfile)}
}

func (f *fakeRepo) GetProfile(_ context.Context, id string) (*domain.FarmerProfile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profiles[id], nil
}

func (f *fakeRepo) UpsertProfile(_ context.Context, p *domain.FarmerProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles[p.ID] = p
	return nil
}

func (f *fakeRepo) SaveAdvice(_ context.Context, _ string, a *domain.Advice) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.advice = append(f.advice, a)
	return nil
}

func (f *fakeRepo) RecentAdvice(_ context.Context, _ string, limit int) ([]*domain.Advice, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.advice) > limit {
		return f.advice[len(f.advice)-limit:], nil
	}
	return f.advice, nil
}

func (f *fakeRepo) SaveFeedback(_ context.Context, rec *domain.FeedbackRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.feedback = append(f.feedback, rec)
	return nil
}

func (f *fakeRepo) LearningStats(context.Context, string) (domain.LearningStats, error) {
	return f.stats, nil
}

func (f *fakeRepo) PurgeOlderThan(context.Context, time.Time) (int64, int64, error) {
	return 0, 0, nil
}

func (f *fakeRepo) Ping(context.Context) error { return f.pingErr }
func (f *fakeRepo) Close() error               { return nil }

type fakeWeather struct {
	snap domain.WeatherSnapshot
	err  error
}

func (f fakeWeather) Current(context.Context, float64, float64) (domain.WeatherSnapshot, error) {
	return f.snap, f.err
}

type fakeMarket struct {
	snap domain.MarketSnapshot
}

func (f fakeMarket) Prices(context.Context, string, string) (domain.MarketSnapshot, error) {
	return f.snap, nil
}

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	data := map[string]string{"foo": "bar"}

	JSON(w, http.StatusOK, data)

	resp := w.Result()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %s", ct)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got["foo"] != "bar" {
		t.Errorf("Expected foo=bar, got %v", got["foo"])
	}
}

func TestError(t *testing.T) {
	w := httptest.NewRecorder()

	Error(w, http.StatusBadRequest, "bad input")

	resp := w.Result()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", resp.StatusCode)
	}

	var got map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if got["error"] != "bad input" {
		t.Errorf("Expected error message, got %v", got)
	}
}

func TestHealthOK(t *testing.T) {
	h := NewHealthHandler(newFakeRepo())
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	h.Health(w, r)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}

func TestHealthDegraded(t *testing.T) {
	repo := newFakeRepo()
	repo.pingErr = errors.New("locked")
	h := NewHealthHandler(repo)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	h.Health(w, r)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}
