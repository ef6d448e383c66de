package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nag3003/agrisaarthii/internal/advisory"
	"github.com/nag3003/agrisaarthii/internal/config"
	"github.com/nag3003/agrisaarthii/internal/domain"
	"github.com/nag3003/agrisaarthii/internal/provider"
	"github.com/nag3003/agrisaarthii/internal/sensor"
)

func newTestAdvisoryHandler(repo *fakeRepo, humidity float64) *AdvisoryHandler {
	repo.profiles["f-123"] = &domain.FarmerProfile{
		ID:           "f-123",
		Name:         "Ramesh",
		PrimaryCrops: []string{"Tomato", "Onion"},
		Location:     domain.Location{District: "Nashik", State: "Maharashtra"},
	}
	weather := fakeWeather{snap: domain.WeatherSnapshot{
		TemperatureC: 32,
		Condition:    "Sunny but Cloudy",
		HumidityPct:  humidity,
		RainProbPct:  15,
	}}
	market := fakeMarket{snap: domain.MarketSnapshot{Crop: "Tomato", AvgPrice: "2100", Trend: "up"}}
	base := NewHandler(repo, weather, market)
	cfg := &config.Config{SensorMaxAge: 30 * time.Minute}
	return NewAdvisoryHandler(base, advisory.NewSynthesizer(nil), sensor.NewRegistry(), provider.StaticTranscriber{}, cfg)
}

func TestQueryAdvicePestBranch(t *testing.T) {
	repo := newFakeRepo()
	h := newTestAdvisoryHandler(repo, 85)

	body := strings.NewReader(`{"text": "My tomato leaves are curling, some pest maybe"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/query/advice", body)
	w := httptest.NewRecorder()

	h.QueryAdvice(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Advice domain.Advice `json:"advice"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if resp.Advice.Intent != domain.IntentPest {
		t.Errorf("Expected PEST intent, got %s", resp.Advice.Intent)
	}
	if resp.Advice.Confidence != 0.85 {
		t.Errorf("Expected confidence 0.85, got %v", resp.Advice.Confidence)
	}
	if resp.Advice.Urgency != domain.UrgencyHigh {
		t.Errorf("Expected High urgency, got %s", resp.Advice.Urgency)
	}
	if !strings.Contains(resp.Advice.Text, "Ramesh") || !strings.Contains(resp.Advice.Text, "Nashik, Maharashtra") {
		t.Errorf("Advice should address the farmer and location: %s", resp.Advice.Text)
	}

	if len(repo.advice) != 1 {
		t.Fatalf("Expected 1 logged advisory, got %d", len(repo.advice))
	}
	if repo.advice[0].ID != resp.Advice.ID {
		t.Error("Logged advisory should match the response")
	}
}

func TestQueryAdviceInvalidBody(t *testing.T) {
	h := newTestAdvisoryHandler(newFakeRepo(), 85)

	r := httptest.NewRequest(http.MethodPost, "/api/query/advice", strings.NewReader("{"))
	w := httptest.NewRecorder()

	h.QueryAdvice(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestVoiceQueryTranscribesAndAdvises(t *testing.T) {
	repo := newFakeRepo()
	h := newTestAdvisoryHandler(repo, 85)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("audio", "query.wav")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake audio bytes")); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/api/voice/query", &buf)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()

	h.VoiceQuery(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Transcript string        `json:"transcript"`
		Advice     domain.Advice `json:"advice"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Transcript == "" {
		t.Error("Expected a transcript in the response")
	}
	// The canned transcription mentions curling tomato leaves.
	if resp.Advice.Intent != domain.IntentPest {
		t.Errorf("Expected PEST intent from transcript, got %s", resp.Advice.Intent)
	}
}

func TestVoiceQueryMissingFile(t *testing.T) {
	h := newTestAdvisoryHandler(newFakeRepo(), 85)

	r := httptest.NewRequest(http.MethodPost, "/api/voice/query", strings.NewReader(""))
	w := httptest.NewRecorder()

	h.VoiceQuery(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestPredictiveAlertsHighHumidity(t *testing.T) {
	h := newTestAdvisoryHandler(newFakeRepo(), 85)

	r := httptest.NewRequest(http.MethodGet, "/api/alerts/predictive", nil)
	w := httptest.NewRecorder()

	h.PredictiveAlerts(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var alerts []domain.Alert
	if err := json.NewDecoder(w.Body).Decode(&alerts); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(alerts) < 2 {
		t.Fatalf("Expected at least weather and market alerts, got %d", len(alerts))
	}
	if alerts[0].Type != domain.AlertWeatherRisk {
		t.Errorf("Expected WEATHER_RISK first, got %s", alerts[0].Type)
	}
	if alerts[len(alerts)-1].Type != domain.AlertMarketTrend {
		t.Errorf("Expected MARKET_TREND last, got %s", alerts[len(alerts)-1].Type)
	}
}

func TestPredictiveAlertsModerateHumidity(t *testing.T) {
	h := newTestAdvisoryHandler(newFakeRepo(), 60)

	r := httptest.NewRequest(http.MethodGet, "/api/alerts/predictive", nil)
	w := httptest.NewRecorder()

	h.PredictiveAlerts(w, r)

	var alerts []domain.Alert
	if err := json.NewDecoder(w.Body).Decode(&alerts); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	for _, a := range alerts {
		if a.Type == domain.AlertWeatherRisk {
			t.Errorf("Weather risk alert must not fire at humidity 60: %+v", a)
		}
	}
}

func TestSMSFallbackKnownPattern(t *testing.T) {
	h := newTestAdvisoryHandler(newFakeRepo(), 85)

	body := strings.NewReader(`{"phone": "+919876543210", "message": "my TOMATO leaves curl"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/fallback/sms", body)
	w := httptest.NewRecorder()

	h.SMSFallback(w, r)

	var resp map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp["status"] != "SMS_SENT" {
		t.Errorf("Expected SMS_SENT, got %v", resp["status"])
	}
	msg, _ := resp["message"].(string)
	if !strings.Contains(msg, "Thrips") {
		t.Errorf("Expected immediate Thrips reply, got %q", msg)
	}
}

func TestSMSFallbackUnknownPattern(t *testing.T) {
	h := newTestAdvisoryHandler(newFakeRepo(), 85)

	body := strings.NewReader(`{"phone": "+919876543210", "message": "When to sow wheat?"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/fallback/sms", body)
	w := httptest.NewRecorder()

	h.SMSFallback(w, r)

	var resp map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	msg, _ := resp["message"].(string)
	if !strings.Contains(msg, "call you back") {
		t.Errorf("Expected callback reply, got %q", msg)
	}
}

func TestRecentAdviceEmptyLog(t *testing.T) {
	h := newTestAdvisoryHandler(newFakeRepo(), 85)

	r := httptest.NewRequest(http.MethodGet, "/api/advice/recent", nil)
	w := httptest.NewRecorder()

	h.RecentAdvice(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp struct {
		Advice []domain.Advice `json:"advice"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Advice == nil {
		t.Error("Expected an empty list, not null")
	}
}

func TestRecentAdviceAfterQuery(t *testing.T) {
	repo := newFakeRepo()
	h := newTestAdvisoryHandler(repo, 85)

	body := strings.NewReader(`{"text": "pest on my tomato"}`)
	h.QueryAdvice(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/query/advice", body))

	r := httptest.NewRequest(http.MethodGet, "/api/advice/recent", nil)
	w := httptest.NewRecorder()

	h.RecentAdvice(w, r)

	var resp struct {
		Advice []domain.Advice `json:"advice"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Advice) != 1 {
		t.Fatalf("Expected 1 logged advisory, got %d", len(resp.Advice))
	}
	if resp.Advice[0].Intent != domain.IntentPest {
		t.Errorf("Expected PEST advisory in the log, got %s", resp.Advice[0].Intent)
	}
}

func TestQueryAdviceUsesFreshSensorReading(t *testing.T) {
	repo := newFakeRepo()
	h := newTestAdvisoryHandler(repo, 85)
	h.registry.Record(sensor.Reading{
		FarmerID: "f-123",
		Type:     advisory.SensorTypeSoilMoisture,
		Value:    25.5,
		At:       time.Now(),
	})

	body := strings.NewReader(`{"text": "should I water my field today"}`)
	r := httptest.NewRequest(http.MethodPost, "/api/query/advice", body)
	w := httptest.NewRecorder()

	h.QueryAdvice(w, r)

	var resp struct {
		Advice domain.Advice `json:"advice"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if resp.Advice.Intent != domain.IntentIrrigation {
		t.Fatalf("Expected IRRIGATION intent, got %s", resp.Advice.Intent)
	}
	if !strings.Contains(resp.Advice.Text, "25.5%") {
		t.Errorf("Advice should cite the live moisture reading: %s", resp.Advice.Text)
	}
}
