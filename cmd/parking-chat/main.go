package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-ParkingService/internal/app"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to config file")
	pflag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

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

	// Ctrl+C отменяет текущий запрос к модели и завершает чат
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	storage, err := app.OpenStorage(ctx, cfg.Database, nil, "", log)
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer storage.Close()

	llmClient := app.NewLLMClient(cfg.LLM, log)
	if llmClient == nil {
		fmt.Println("OPENAI_API_KEY is not set: answers come from the parking database only.")
	}

	turns := app.NewTurnUseCase(llmClient, app.NewReservationService(storage, log), storage, log)
	if err := chat(ctx, turns, os.Stdin, os.Stdout); err != nil {
		log.Error("Chat stopped: %v", err)
	}
}
