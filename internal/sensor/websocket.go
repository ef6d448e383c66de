package sensor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/nag3003/agrisaarthii/internal/actuator"
	"github.com/nag3003/agrisaarthii/internal/advisory"
	"github.com/nag3003/agrisaarthii/internal/domain"
	"github.com/nag3003/agrisaarthii/internal/irrigation"
	"github.com/nag3003/agrisaarthii/internal/provider"
	"github.com/nag3003/agrisaarthii/internal/store"
)

// Frame is one message from a field gateway.
type Frame struct {
	Sensor string  `json:"sensor"`
	Value  float64 `json:"value"`
}

// Evaluation is the reply written back for each frame.
type Evaluation struct {
	Sensor         string    `json:"sensor"`
	CurrentValue   float64   `json:"current_value"`
	MotorStatus    string    `json:"motor_status,omitempty"`
	VoiceAlert     string    `json:"voice_alert,omitempty"`
	WeatherContext string    `json:"weather_context,omitempty"`
	Savings        string    `json:"savings_estimate,omitempty"`
	Status         string    `json:"status"`
	Timestamp      time.Time `json:"timestamp"`
}

// Evaluator runs sensor frames through the irrigation decision cascade.
// It is shared between the WebSocket feed and the one-shot HTTP route.
type Evaluator struct {
	registry *Registry
	repo     store.Repository
	weather  provider.WeatherProvider
	sink     actuator.Sink
	logger   *slog.Logger
}

// NewEvaluator creates a sensor evaluator.
func NewEvaluator(registry *Registry, repo store.Repository, weather provider.WeatherProvider, sink actuator.Sink, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Evaluator{
		registry: registry,
		repo:     repo,
		weather:  weather,
		sink:     sink,
		logger:   logger,
	}
}

// WebSocketHandler accepts sensor gateway connections and evaluates each
// frame as it arrives.
type WebSocketHandler struct {
	eval   *Evaluator
	logger *slog.Logger
}

// NewWebSocketHandler creates the sensor-feed handler.
func NewWebSocketHandler(eval *Evaluator, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{eval: eval, logger: logger}
}

// ServeHTTP upgrades the connection and runs the frame loop until the
// gateway disconnects.
func (h *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	farmerID := r.URL.Query().Get("farmer_id")
	if farmerID == "" {
		http.Error(w, `{"error":"farmer_id is required"}`, http.StatusBadRequest)
		return
	}

	// Gateways are headless devices, not browsers; origin checks do not apply.
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		h.logger.Error("Sensor feed accept failed", "farmer_id", farmerID, "error", err)
		return
	}
	defer conn.Close(websocket.StatusInternalError, "connection closed")

	h.logger.Info("Sensor gateway connected", "farmer_id", farmerID)

	ctx := r.Context()
	for {
		var frame Frame
		if err := wsjson.Read(ctx, conn, &frame); err != nil {
			var closeErr websocket.CloseError
			if errors.As(err, &closeErr) || ctx.Err() != nil {
				h.logger.Info("Sensor gateway disconnected", "farmer_id", farmerID)
				conn.Close(websocket.StatusNormalClosure, "")
				return
			}
			h.logger.Warn("Sensor frame read failed", "farmer_id", farmerID, "error", err)
			conn.Close(websocket.StatusInvalidFramePayloadData, "malformed frame")
			return
		}

		eval := h.eval.Evaluate(ctx, farmerID, frame, time.Now())
		if err := wsjson.Write(ctx, conn, eval); err != nil {
			h.logger.Warn("Sensor evaluation write failed", "farmer_id", farmerID, "error", err)
			return
		}
	}
}

// Evaluate records the reading and, for soil moisture, runs the decision
// cascade and forwards actionable commands to the actuation sink.
func (e *Evaluator) Evaluate(ctx context.Context, farmerID string, frame Frame, at time.Time) Evaluation {
	e.registry.Record(Reading{
		FarmerID: farmerID,
		Type:     frame.Sensor,
		Value:    frame.Value,
		At:       at,
	})

	eval := Evaluation{
		Sensor:       frame.Sensor,
		CurrentValue: frame.Value,
		Status:       "recorded",
		Timestamp:    at,
	}

	if frame.Sensor != advisory.SensorTypeSoilMoisture {
		return eval
	}

	profile := e.lookupProfile(ctx, farmerID)

	var weather domain.WeatherSnapshot
	if snap, err := e.weather.Current(ctx, profile.Location.Lat, profile.Location.Lon); err != nil {
		e.logger.Warn("Weather unavailable for sensor evaluation", "farmer_id", farmerID, "error", err)
	} else {
		weather = snap
	}

	decision := irrigation.Decide(frame.Value, weather.RainProbPct, profile.PrimaryCrop())

	eval.Status = "evaluated"
	eval.MotorStatus = string(decision.Action)
	eval.VoiceAlert = decision.Message
	eval.WeatherContext = fmt.Sprintf("Rain Prob: %g%%", weather.RainProbPct)
	if decision.RainDeferred {
		eval.Savings = "Saved ₹25 in electricity by using the rain forecast."
	}

	if decision.Action == irrigation.TurnOn || decision.Action == irrigation.TurnOff {
		if err := e.sink.Switch(ctx, farmerID, decision.Action, decision.Message); err != nil {
			e.logger.Error("Motor actuation failed", "farmer_id", farmerID, "action", decision.Action, "error", err)
		}
	}

	return eval
}

func (e *Evaluator) lookupProfile(ctx context.Context, farmerID string) *domain.FarmerProfile {
	profile, err := e.repo.GetProfile(ctx, farmerID)
	if err != nil {
		e.logger.Warn("Profile lookup failed, using fallback", "farmer_id", farmerID, "error", err)
	}
	if profile == nil {
		return advisory.DefaultProfile()
	}
	return profile
}
