package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-ParkingService/internal/app"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/sinkservice"
	decideReservationUC "github.com/m04kA/SMC-ParkingService/internal/usecase/decide_reservation"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to config file")
	noSummary := pflag.Bool("no-summary", false, "do not ask the LLM for request summaries")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Консоль для диалога: в stderr только предупреждения, если лог-файл не задан
	var log *logger.Logger
	if cfg.Logs.File != "" {
		log, err = logger.New(cfg.Logs.File, cfg.Logs.Level)
	} else {
		log, err = logger.NewWithWriter(os.Stderr, "warn")
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	ctx := context.Background()

	storage, err := app.OpenStorage(ctx, cfg.Database, nil, "", log)
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer storage.Close()

	if cfg.Dispatcher.URL != "" {
		checkSink(ctx, cfg, log)
	}

	llmClient := app.NewLLMClient(cfg.LLM, log)
	useCase := decideReservationUC.NewUseCase(
		app.NewReservationService(storage, log),
		app.NewDispatcher(cfg, nil, log),
		app.NewSummarizer(llmClient, log),
		log,
	)

	withSummary := !*noSummary && llmClient != nil
	if err := newConsole(useCase, os.Stdin, os.Stdout, withSummary).run(ctx); err != nil {
		log.Fatal("Admin console failed: %v", err)
	}
}

// checkSink предупреждает заранее, что подтверждения уйдут в локальный файл
func checkSink(ctx context.Context, cfg *config.Config, log *logger.Logger) {
	client := sinkservice.NewClient(cfg.Dispatcher.URL, cfg.Dispatcher.APIKey, time.Duration(cfg.Dispatcher.Timeout)*time.Second, log)

	health, err := client.Health(ctx)
	if err != nil {
		fmt.Printf("Warning: confirmation sink %s is not reachable (%v); approvals will be written to %s\n\n",
			client.BaseURL(), err, cfg.Confirmations.File)
		return
	}
	fmt.Printf("Confirmation sink %s is up, file: %s\n\n", client.BaseURL(), health.File)
}
