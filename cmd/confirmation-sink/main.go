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

	confirmReservationHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/confirm_reservation"
	healthHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/health"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/infra/confirmlog"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/telemetry"
)

const serviceName = "confirmation-sink"

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to config file")
	host := pflag.String("host", "", "listen host (overrides sink.host)")
	port := pflag.Int("port", 0, "listen port (overrides sink.port)")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *host != "" {
		cfg.Sink.Host = *host
	}
	if *port > 0 {
		cfg.Sink.Port = *port
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting %s...", serviceName)
	shutdownTracing := telemetry.Setup(serviceName, log)

	writer := confirmlog.NewWriter(cfg.Confirmations.File)
	confirm := confirmReservationHandler.NewHandler(writer, log)
	health := healthHandler.NewHandler(writer.Path())

	r := mux.NewRouter()
	r.Use(middleware.RequestID(log))

	if cfg.Metrics.Enabled {
		m := metrics.New(serviceName)
		r.Use(middleware.MetricsMiddleware(m))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// Запись только с ключом, если он задан
	protected := middleware.APIKey(cfg.Sink.APIKey)
	r.Handle("/confirmed", protected(http.HandlerFunc(confirm.Handle))).Methods(http.MethodPost)

	if cfg.Sink.APIKey == "" {
		log.Warn("RESERVATION_SERVER_API_KEY is not set: /confirmed accepts unauthenticated writes")
	}

	srv := &http.Server{
		Addr:         cfg.Sink.Addr(),
		Handler:      otelhttp.NewHandler(r, serviceName),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	go func() {
		log.Info("Listening on %s, writing to %s", srv.Addr, writer.Path())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down %s...", serviceName)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("Tracing shutdown error: %v", err)
	}
	log.Info("Server stopped gracefully")
}
