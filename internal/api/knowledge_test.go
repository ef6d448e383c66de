package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nag3003/agrisaarthii/internal/knowledge"
	"github.com/nag3003/agrisaarthii/internal/provider"
)

func newTestKnowledgeHandler(t *testing.T) *KnowledgeHandler {
	t.Helper()
	kb, err := knowledge.Load()
	if err != nil {
		t.Fatalf("Failed to load knowledge base: %v", err)
	}
	return NewKnowledgeHandler(kb, provider.StaticVision{})
}

func TestCropCalendarTomato(t *testing.T) {
	h := newTestKnowledgeHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/knowledge/calendar?crop=Tomato", nil)
	w := httptest.NewRecorder()

	h.CropCalendar(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var stages []knowledge.CalendarStage
	if err := json.NewDecoder(w.Body).Decode(&stages); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(stages) != 5 {
		t.Fatalf("Expected 5 tomato stages, got %d", len(stages))
	}
	if stages[0].ID != "t1" || stages[0].Stage != "Sowing" {
		t.Errorf("Unexpected first stage: %+v", stages[0])
	}
}

func TestCropCalendarUnknownCrop(t *testing.T) {
	h := newTestKnowledgeHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/knowledge/calendar?crop=Dragonfruit", nil)
	w := httptest.NewRecorder()

	h.CropCalendar(w, r)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}

func TestCropCalendarRequiresCrop(t *testing.T) {
	h := newTestKnowledgeHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/knowledge/calendar", nil)
	w := httptest.NewRecorder()

	h.CropCalendar(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestSeasonalAdviceNamesCropAndSeason(t *testing.T) {
	h := newTestKnowledgeHandler(t)

	r := httptest.NewRequest(http.MethodGet, "/api/knowledge/seasonal?crop=Onion", nil)
	w := httptest.NewRecorder()

	h.SeasonalAdvice(w, r)

	var resp map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["crop"] != "Onion" {
		t.Errorf("Expected Onion, got %v", resp["crop"])
	}
	if resp["advice"] == "" || resp["season"] == "" {
		t.Errorf("Expected advice and season, got %v", resp)
	}
}

func TestDiagnoseReturnsCatalogEntry(t *testing.T) {
	h := newTestKnowledgeHandler(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", "leaf.jpg")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("jpeg bytes")); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/api/vision/diagnosis", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	h.Diagnose(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var diag provider.Diagnosis
	if err := json.NewDecoder(w.Body).Decode(&diag); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if diag.Diagnosis == "" || diag.Remedy == "" {
		t.Errorf("Expected a populated diagnosis, got %+v", diag)
	}
}

func TestDiagnoseRequiresImage(t *testing.T) {
	h := newTestKnowledgeHandler(t)

	r := httptest.NewRequest(http.MethodPost, "/api/vision/diagnosis", nil)
	w := httptest.NewRecorder()

	h.Diagnose(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}
