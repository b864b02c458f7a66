package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	decideReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/decide_reservation"
	getAvailabilityHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_availability"
	getPricesHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_prices"
	getReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_reservation"
	getWorkingHoursHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_working_hours"
	handleTurnHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/handle_turn"
	healthHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/health"
	listPendingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/list_pending_reservations"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/app"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	parkingService "github.com/m04kA/SMC-ParkingService/internal/service/parking"
	decideReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/telemetry"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to config file")
	pflag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting parking-service...")
	log.Info("Configuration loaded from %s", *configPath)

	shutdownTracing := telemetry.Setup(cfg.Metrics.ServiceName, log)

	// Метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	storage, err := app.OpenStorage(context.Background(), cfg.Database, metricsCollector, cfg.Metrics.ServiceName, log)
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer storage.Close()

	// Сервисы
	llmClient := app.NewLLMClient(cfg.LLM, log)
	reservationSvc := app.NewReservationService(storage, log)
	parkingSvc := parkingService.NewService(storage.Parking, log)
	dispatch := app.NewDispatcher(cfg, metricsCollector, log)

	// Use cases
	handleTurnUseCase := app.NewTurnUseCase(llmClient, reservationSvc, storage, log)
	decideReservationUseCase := decideReservationUC.NewUseCase(
		reservationSvc,
		dispatch,
		app.NewSummarizer(llmClient, log),
		log,
	)

	// Handlers
	handleTurn := handleTurnHandler.NewHandler(handleTurnUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	listPending := listPendingHandler.NewHandler(decideReservationUseCase, log)
	decideReservation := decideReservationHandler.NewHandler(decideReservationUseCase, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(parkingSvc, log)
	getPrices := getPricesHandler.NewHandler(parkingSvc, log)
	getAvailability := getAvailabilityHandler.NewHandler(parkingSvc, log)
	health := healthHandler.NewHandler("")

	// Роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES
	// ============================================================

	api.HandleFunc("/turns", handleTurn.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId:[0-9]+}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking/prices", getPrices.Handle).Methods(http.MethodGet)
	api.HandleFunc("/parking/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// ADMIN ROUTES (X-API-Key, если задан ADMIN_API_KEY)
	// ============================================================

	adminOnly := middleware.APIKey(cfg.Admin.APIKey)
	if cfg.Admin.APIKey == "" {
		log.Warn("ADMIN_API_KEY is not set: admin routes are not protected")
	}

	api.Handle("/reservations/pending", adminOnly(http.HandlerFunc(listPending.Handle))).Methods(http.MethodGet)
	api.Handle("/reservations/{reservationId:[0-9]+}/decision", adminOnly(http.HandlerFunc(decideReservation.Handle))).Methods(http.MethodPost)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      otelhttp.NewHandler(r, cfg.Metrics.ServiceName),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Tracing shutdown error: %v", err)
	}

	log.Info("Server stopped gracefully")
}
