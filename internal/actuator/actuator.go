// Package actuator is the boundary to the physical irrigation motor. The
// decision engine only emits actions; this package carries them to the
// field gateway.
package actuator

import (
	"context"
	"log/slog"

	"github.com/nag3003/agrisaarthii/internal/irrigation"
)

// Sink accepts motor decisions for physical execution. STAY_OFF decisions
// are never forwarded; they are no-ops by definition.
type Sink interface {
	Switch(ctx context.Context, farmerID string, action irrigation.Action, reason string) error
}

// NoopSink logs commands instead of sending them. Used when no motor
// gateway address is configured.
type NoopSink struct {
	logger *slog.Logger
}

// NewNoopSink creates a logging-only sink. A nil logger uses the default.
func NewNoopSink(logger *slog.Logger) *NoopSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoopSink{logger: logger}
}

func (s *NoopSink) Switch(_ context.Context, farmerID string, action irrigation.Action, reason string) error {
	s.logger.Info("Motor command dropped (no gateway configured)",
		"farmer_id", farmerID, "action", action, "reason", reason)
	return nil
}
