// AgriSaarthi - Smallholder Advisory Backend
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/nag3003/agrisaarthii/internal/actuator"
	"github.com/nag3003/agrisaarthii/internal/advisory"
	"github.com/nag3003/agrisaarthii/internal/api"
	"github.com/nag3003/agrisaarthii/internal/config"
	"github.com/nag3003/agrisaarthii/internal/identity"
	"github.com/nag3003/agrisaarthii/internal/knowledge"
	"github.com/nag3003/agrisaarthii/internal/middleware"
	"github.com/nag3003/agrisaarthii/internal/provider"
	"github.com/nag3003/agrisaarthii/internal/sensor"
	"github.com/nag3003/agrisaarthii/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting server", "port", cfg.Port, "demo_mode", cfg.DemoMode())

	// Initialize dependencies.
	repo, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if closeErr := repo.Close(); closeErr != nil {
			slog.Error("Failed to close repository", "error", closeErr)
		}
	}()

	if err := repo.Ping(context.Background()); err != nil {
		slog.Error("Database health check failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database connected")

	kb, err := knowledge.Load()
	if err != nil {
		slog.Error("Failed to load knowledge base", "error", err)
		os.Exit(1)
	}
	slog.Info("Knowledge base loaded", "crops", kb.Crops())

	// Collaborator providers. Demo mode serves deterministic snapshots so
	// the full flow works without external credentials.
	var weather provider.WeatherProvider = provider.StaticWeather{}
	var market provider.MarketProvider = provider.StaticMarket{}
	if cfg.WeatherAPIKey != "" {
		weather = provider.NewOpenWeatherClient(cfg.WeatherAPIKey, cfg.WeatherAPIURL)
		slog.Info("Live weather provider configured")
	}
	if cfg.MarketAPIURL != "" {
		market = provider.NewMandiClient(cfg.MarketAPIURL)
		slog.Info("Live market provider configured")
	}

	// Motor gateway gRPC client (optional).
	var sink actuator.Sink = actuator.NewNoopSink(logger)
	if cfg.MotorGatewayAddr != "" {
		slog.Info("Connecting to motor gateway via gRPC", "address", cfg.MotorGatewayAddr)
		grpcSink, err := actuator.NewGrpcSink(actuator.DefaultGrpcSinkConfig(cfg.MotorGatewayAddr), logger)
		if err != nil {
			slog.Warn("Failed to connect to motor gateway, commands will be logged only", "error", err)
		} else {
			defer grpcSink.Close()
			sink = grpcSink
		}
	} else {
		slog.Info("Motor actuation disabled (MOTOR_GATEWAY_ADDR not set)")
	}

	// Initialize services.
	registry := sensor.NewRegistry()
	evaluator := sensor.NewEvaluator(registry, repo, weather, sink, logger)
	synth := advisory.NewSynthesizer(advisory.UUIDSource{})

	// Initialize handlers.
	baseHandler := api.NewHandler(repo, weather, market)
	healthHandler := api.NewHealthHandler(repo)
	advisoryHandler := api.NewAdvisoryHandler(baseHandler, synth, registry, provider.StaticTranscriber{}, cfg)
	iotHandler := api.NewIoTHandler(evaluator, sink)
	feedbackHandler := api.NewFeedbackHandler(baseHandler)
	profileHandler := api.NewProfileHandler(baseHandler)
	conditionsHandler := api.NewConditionsHandler(baseHandler)
	knowledgeHandler := api.NewKnowledgeHandler(kb, provider.StaticVision{})
	wsHandler := sensor.NewWebSocketHandler(evaluator, logger)

	// Setup router.
	r := chi.NewRouter()

	// Global middleware.
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(identity.Middleware(repo))

	// Public routes.
	healthHandler.RegisterHealth(r)

	advisoryHandler.RegisterRoutes(r)
	iotHandler.RegisterRoutes(r)
	feedbackHandler.RegisterRoutes(r)
	profileHandler.RegisterRoutes(r)
	conditionsHandler.RegisterRoutes(r)
	knowledgeHandler.RegisterRoutes(r)

	// WebSocket endpoint for field sensor gateways.
	r.Get("/ws/sensors", wsHandler.ServeHTTP)

	// Create server.
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start retention sweeper.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store.StartRetentionSweeper(ctx, repo, cfg.Retention, cfg.SweepInterval)

	// Start server.
	go func() {
		slog.Info("Server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	stop()

	slog.Info("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped successfully")
}
