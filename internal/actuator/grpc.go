package actuator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/nag3003/agrisaarthii/internal/irrigation"
	"github.com/nag3003/agrisaarthii/internal/proto/motor"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
)

// GrpcSink forwards motor decisions to the field IoT gateway over gRPC.
type GrpcSink struct {
	conn   *grpc.ClientConn
	client motor.MotorGatewayClient
	addr   string
	logger *slog.Logger

	requestTimeout time.Duration
}

// GrpcSinkConfig holds configuration for the gateway client.
type GrpcSinkConfig struct {
	Address          string
	RequestTimeout   time.Duration
	KeepaliveTime    time.Duration
	KeepaliveTimeout time.Duration
}

// DefaultGrpcSinkConfig returns default configuration.
func DefaultGrpcSinkConfig(addr string) GrpcSinkConfig {
	return GrpcSinkConfig{
		Address:          addr,
		RequestTimeout:   10 * time.Second,
		KeepaliveTime:    2 * time.Minute,
		KeepaliveTimeout: 10 * time.Second,
	}
}

// NewGrpcSink creates a gateway client. No network I/O happens until the
// first Switch call.
func NewGrpcSink(cfg GrpcSinkConfig, logger *slog.Logger) (*GrpcSink, error) {
	if logger == nil {
		logger = slog.Default()
	}

	kacp := keepalive.ClientParameters{
		Time:                cfg.KeepaliveTime,
		Timeout:             cfg.KeepaliveTimeout,
		PermitWithoutStream: false,
	}

	conn, err := grpc.NewClient(cfg.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithKeepaliveParams(kacp),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to motor gateway at %s: %w", cfg.Address, err)
	}

	return &GrpcSink{
		conn:           conn,
		client:         motor.NewMotorGatewayClient(conn),
		addr:           cfg.Address,
		logger:         logger,
		requestTimeout: cfg.RequestTimeout,
	}, nil
}

// Switch forwards TURN_ON/TURN_OFF to the gateway. STAY_OFF is dropped
// here as a guard; callers should not send it.
func (s *GrpcSink) Switch(ctx context.Context, farmerID string, action irrigation.Action, reason string) error {
	if action == irrigation.StayOff {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	reply, err := s.client.Switch(ctx, &motor.SwitchRequest{
		FarmerId: farmerID,
		Action:   string(action),
		Reason:   reason,
	})
	if err != nil {
		return fmt.Errorf("motor gateway switch for %s: %w", farmerID, err)
	}

	s.logger.Info("Motor command acknowledged",
		"farmer_id", farmerID, "action", action, "status", reply.GetStatus())
	return nil
}

// Close releases the underlying connection.
func (s *GrpcSink) Close() error {
	return s.conn.Close()
}
