package reservations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/reservation"
)

// Service хранилище заявок: единственный, кто пишет в reservation_requests
type Service struct {
	repo         ReservationRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса заявок
func NewService(repo ReservationRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		repo:         repo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create сохраняет новую заявку в статусе pending и возвращает её ID
func (s *Service) Create(ctx context.Context, draft domain.Draft) (int64, error) {
	draft = draft.Normalize()
	if missing := draft.MissingFields(); len(missing) > 0 {
		s.logger.Warn("Create: missing fields: %s", strings.Join(missing, ", "))
		return 0, fmt.Errorf("%w: missing %s", ErrValidation, strings.Join(missing, ", "))
	}
	// подтверждение пишется одной строкой журнала
	if multiline := draft.MultilineFields(); len(multiline) > 0 {
		s.logger.Warn("Create: line breaks in fields: %s", strings.Join(multiline, ", "))
		return 0, fmt.Errorf("%w: line break in %s", ErrValidation, strings.Join(multiline, ", "))
	}

	created, err := s.repo.Create(ctx, &domain.ReservationRequest{
		Name:        draft.Name,
		Surname:     draft.Surname,
		CarNumber:   draft.CarNumber,
		PeriodStart: draft.PeriodStart,
		PeriodEnd:   draft.PeriodEnd,
		Status:      domain.StatusPending,
		CreatedAt:   s.timeProvider.Now(),
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return 0, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: reservation id=%d created, car=%s, period=%s to %s",
		created.ID, created.CarNumber, created.PeriodStart, created.PeriodEnd)
	return created.ID, nil
}

// ListPending заявки, ожидающие решения, от старых к новым
func (s *Service) ListPending(ctx context.Context) ([]*domain.ReservationRequest, error) {
	pending, err := s.repo.GetByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPending: %d pending reservation(s)", len(pending))
	return pending, nil
}

// GetStatus возвращает заявку для ответа на вопрос о статусе.
// Неизвестный ID - это (nil, false, nil), а не ошибка.
func (s *Service) GetStatus(ctx context.Context, id int64) (*domain.ReservationRequest, bool, error) {
	req, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Info("GetStatus: reservation id=%d not found", id)
			return nil, false, nil
		}
		s.logger.Error("GetStatus: repository error for reservation id=%d: %v", id, err)
		return nil, false, fmt.Errorf("%w: GetStatus - repository error: %v", ErrInternal, err)
	}

	return req, true, nil
}

// GetByID как GetStatus, но неизвестный ID - ErrNotFound
func (s *Service) GetByID(ctx context.Context, id int64) (*domain.ReservationRequest, error) {
	req, found, err := s.GetStatus(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return req, nil
}

// Decide переводит pending заявку в approved или refused и возвращает её новое состояние.
// Повторное решение отклоняется с ErrAlreadyDecided, заявка не меняется.
func (s *Service) Decide(
	ctx context.Context,
	id int64,
	status domain.ReservationStatus,
	comment string,
) (*domain.ReservationRequest, error) {
	if !status.IsTerminal() {
		s.logger.Warn("Decide: invalid status=%s for reservation id=%d", status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	var result *domain.ReservationRequest

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		decidedAt := s.timeProvider.Now()

		err := s.repo.UpdateDecision(txCtx, id, status, comment, decidedAt)
		if errors.Is(err, reservationRepo.ErrNotPending) {
			// Строка не обновилась: либо её нет, либо решение уже принято
			existing, getErr := s.repo.GetByID(txCtx, id)
			if errors.Is(getErr, reservationRepo.ErrReservationNotFound) {
				return ErrNotFound
			}
			if getErr != nil {
				return fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, getErr)
			}
			return fmt.Errorf("%w: reservation id=%d is %s", ErrAlreadyDecided, id, existing.Status)
		}
		if err != nil {
			return fmt.Errorf("%w: Decide - repository error: %v", ErrInternal, err)
		}

		updated, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return fmt.Errorf("%w: Decide - reload reservation: %v", ErrInternal, err)
		}
		result = updated
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			s.logger.Warn("Decide: reservation id=%d not found", id)
		case errors.Is(err, ErrAlreadyDecided):
			s.logger.Warn("Decide: %v", err)
		default:
			s.logger.Error("Decide: failed for reservation id=%d: %v", id, err)
			if !errors.Is(err, ErrInternal) {
				err = fmt.Errorf("%w: Decide - %v", ErrInternal, err)
			}
		}
		return nil, err
	}

	s.logger.Info("Decide: reservation id=%d is now %s", id, result.Status)
	return result, nil
}
