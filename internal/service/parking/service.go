package parking

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// Service только чтение справочных данных парковки
type Service struct {
	repo         Repository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(repo Repository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetWorkingHours часы работы по дням
func (s *Service) GetWorkingHours(ctx context.Context) ([]domain.WorkingHours, error) {
	hours, err := s.repo.GetWorkingHours(ctx)
	if err != nil {
		s.logger.Error("GetWorkingHours: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWorkingHours - repository error: %v", ErrInternal, err)
	}
	return hours, nil
}

// GetPrices тарифы
func (s *Service) GetPrices(ctx context.Context) ([]domain.Price, error) {
	prices, err := s.repo.GetPrices(ctx)
	if err != nil {
		s.logger.Error("GetPrices: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetPrices - repository error: %v", ErrInternal, err)
	}
	return prices, nil
}

// GetAvailability сводка свободных слотов на дату. Пустая дата - сегодня.
func (s *Service) GetAvailability(ctx context.Context, date string) (*domain.AvailabilitySummary, error) {
	if date == "" {
		date = s.timeProvider.Now().Format(domain.DateFormat)
	} else if _, err := time.Parse(domain.DateFormat, date); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	summary, err := s.repo.GetAvailabilitySummary(ctx, date)
	if err != nil {
		s.logger.Error("GetAvailability: repository error for date=%s: %v", date, err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}
	return summary, nil
}
