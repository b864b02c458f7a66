// Package app собирает общие для всех бинарников зависимости: хранилище, доставку подтверждений, LLM.
package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/infra/confirmlog"
	"github.com/m04kA/SMC-ParkingService/internal/infra/storage/database"
	parkingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parking"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/llm"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/sinkservice"
	"github.com/m04kA/SMC-ParkingService/internal/service/dispatcher"
	"github.com/m04kA/SMC-ParkingService/internal/service/extractor"
	"github.com/m04kA/SMC-ParkingService/internal/service/qa"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations"
	"github.com/m04kA/SMC-ParkingService/internal/service/summary"
	handleTurn "github.com/m04kA/SMC-ParkingService/internal/usecase/handle_turn"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/sqlbuilder"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

// Storage открытая БД с репозиториями поверх неё
type Storage struct {
	db          *sql.DB
	stopMetrics chan struct{}

	Reservations *reservationRepo.Repository
	Parking      *parkingRepo.Repository
	TxManager    *txmanager.TransactionManager
}

// OpenStorage открывает БД, применяет схему и, если разрешено, заливает справочные данные.
// m может быть nil - тогда метрики пула не собираются.
func OpenStorage(ctx context.Context, cfg config.DatabaseConfig, m *metrics.Metrics, dbName string, log *logger.Logger) (*Storage, error) {
	db, err := database.Open(ctx, database.Options{
		Driver:          cfg.Driver,
		DSN:             cfg.DSN(),
		MaxOpenConns:    cfg.MaxOpenConns,
		MaxIdleConns:    cfg.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx, db, cfg.Driver); err != nil {
		_ = db.Close()
		return nil, err
	}

	if cfg.SeedReferenceData {
		fixture, err := database.DefaultFixture()
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		seeded, err := database.Seed(ctx, db, cfg.Driver, fixture, time.Now())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if seeded {
			log.Info("Reference data seeded (working hours, prices, availability)")
		}
	}

	s := &Storage{db: db, stopMetrics: make(chan struct{})}

	var wrapped *dbmetrics.DB
	if m != nil {
		wrapped = dbmetrics.WrapWithDefault(db, m, dbName, s.stopMetrics)
	} else {
		wrapped = dbmetrics.Wrap(db)
	}

	builder := sqlbuilder.New(cfg.Driver)
	s.Reservations = reservationRepo.NewRepository(wrapped, builder)
	s.Parking = parkingRepo.NewRepository(sqlx.NewDb(db, cfg.Driver), builder)
	s.TxManager = txmanager.NewTransactionManager(wrapped)

	log.Info("Database opened (driver=%s)", cfg.Driver)
	return s, nil
}

// Close останавливает сбор метрик и закрывает БД
func (s *Storage) Close() error {
	close(s.stopMetrics)
	return s.db.Close()
}

// NewReservationService хранилище заявок поверх Storage
func NewReservationService(s *Storage, log *logger.Logger) *reservations.Service {
	return reservations.NewService(s.Reservations, s.TxManager, log)
}

// NewDispatcher диспетчер подтверждений: удалённый sink, если задан url, иначе только локальный журнал
func NewDispatcher(cfg *config.Config, m *metrics.Metrics, log *logger.Logger) *dispatcher.Dispatcher {
	local := confirmlog.NewWriter(cfg.Confirmations.File)

	var remote dispatcher.RemoteSink
	if cfg.Dispatcher.URL != "" {
		remote = sinkservice.NewClient(
			cfg.Dispatcher.URL,
			cfg.Dispatcher.APIKey,
			time.Duration(cfg.Dispatcher.Timeout)*time.Second,
			log,
		)
		log.Info("Confirmations go to sink %s (timeout=%ds), fallback %s",
			cfg.Dispatcher.URL, cfg.Dispatcher.Timeout, cfg.Confirmations.File)
	} else {
		log.Info("Confirmations go to local file %s", cfg.Confirmations.File)
	}

	d := dispatcher.NewDispatcher(remote, local, log)
	if m != nil {
		d.WithMetrics(m.DeliveriesTotal)
	}
	return d
}

// NewLLMClient клиент модели или nil, если api key не задан
func NewLLMClient(cfg config.LLMConfig, log *logger.Logger) *llm.Client {
	if !cfg.Enabled() {
		log.Info("LLM disabled: OPENAI_API_KEY is not set")
		return nil
	}
	log.Info("LLM enabled (model=%s)", cfg.Model)
	return llm.NewClient(cfg.BaseURL, cfg.APIKey, cfg.Model, time.Duration(cfg.Timeout)*time.Second, log)
}

// NewTurnUseCase обработка сообщений: с LLM поля извлекает и на вопросы отвечает модель,
// без LLM поля ищутся как "key: value", а ответ собирается из справочных данных
func NewTurnUseCase(client *llm.Client, store *reservations.Service, s *Storage, log *logger.Logger) *handleTurn.UseCase {
	contextBuilder := qa.NewContextBuilder(s.Parking, log)

	if client == nil {
		return handleTurn.NewUseCase(store, extractor.NewFieldsExtractor(), qa.NewStaticAnswerer(contextBuilder), log)
	}
	return handleTurn.NewUseCase(
		store,
		extractor.NewLLMExtractor(client, log),
		qa.NewLLMAnswerer(client, contextBuilder, log),
		log,
	)
}

// NewSummarizer сводки для администратора; без LLM каждая сводка - ErrNotConfigured
func NewSummarizer(client *llm.Client, log *logger.Logger) *summary.Service {
	if client == nil {
		return summary.NewService(nil, log)
	}
	return summary.NewService(client, log)
}
