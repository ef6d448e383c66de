package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nag3003/agrisaarthii/internal/actuator"
	"github.com/nag3003/agrisaarthii/internal/identity"
	"github.com/nag3003/agrisaarthii/internal/irrigation"
	"github.com/nag3003/agrisaarthii/internal/sensor"
)

// IoTHandler serves the one-shot sensor evaluation route and the manual
// motor override.
type IoTHandler struct {
	eval *sensor.Evaluator
	sink actuator.Sink
}

// NewIoTHandler creates the IoT handler.
func NewIoTHandler(eval *sensor.Evaluator, sink actuator.Sink) *IoTHandler {
	return &IoTHandler{eval: eval, sink: sink}
}

// RegisterRoutes registers IoT routes.
func (h *IoTHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/iot", func(r chi.Router) {
		r.Post("/sensor-data", h.SensorData)
		r.Post("/motor", h.ControlMotor)
	})
}

// SensorData evaluates a single reading posted over HTTP, for gateways that
// cannot hold a WebSocket open.
func (h *IoTHandler) SensorData(w http.ResponseWriter, r *http.Request) {
	var frame sensor.Frame
	if err := json.NewDecoder(r.Body).Decode(&frame); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if frame.Sensor == "" {
		Error(w, http.StatusBadRequest, "sensor type is required")
		return
	}

	farmerID := identity.FarmerIDFromContext(r.Context())
	eval := h.eval.Evaluate(r.Context(), farmerID, frame, time.Now())

	JSON(w, http.StatusOK, eval)
}

type motorRequest struct {
	Action string `json:"action"`
}

// ControlMotor forwards an explicit farmer-initiated switch to the
// actuation sink, bypassing the decision cascade.
func (h *IoTHandler) ControlMotor(w http.ResponseWriter, r *http.Request) {
	var req motorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var action irrigation.Action
	switch strings.ToUpper(strings.TrimSpace(req.Action)) {
	case "ON", string(irrigation.TurnOn):
		action = irrigation.TurnOn
	case "OFF", string(irrigation.TurnOff):
		action = irrigation.TurnOff
	default:
		Error(w, http.StatusBadRequest, "action must be ON or OFF")
		return
	}

	farmerID := identity.FarmerIDFromContext(r.Context())
	if err := h.sink.Switch(r.Context(), farmerID, action, "manual override"); err != nil {
		Error(w, http.StatusBadGateway, "motor gateway unreachable")
		return
	}

	JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "success",
		"action":    action,
		"timestamp": time.Now(),
	})
}
