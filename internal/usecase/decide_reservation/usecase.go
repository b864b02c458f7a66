package decide_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/service/reservations"
)

// UseCase решения администратора по заявкам
type UseCase struct {
	reservations ReservationService
	dispatcher   Dispatcher
	summarizer   Summarizer
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. summarizer может быть nil.
func NewUseCase(reservations ReservationService, dispatcher Dispatcher, summarizer Summarizer, logger Logger) *UseCase {
	return &UseCase{
		reservations: reservations,
		dispatcher:   dispatcher,
		summarizer:   summarizer,
		logger:       logger,
	}
}

// Review очередь pending заявок, старые первыми. Сбой сводки не прерывает список.
func (uc *UseCase) Review(ctx context.Context, withSummary bool) ([]PendingItem, error) {
	pending, err := uc.reservations.ListPending(ctx)
	if err != nil {
		uc.logger.Error("Review: failed to list pending: %v", err)
		return nil, fmt.Errorf("%w: failed to list pending: %v", ErrInternal, err)
	}

	items := make([]PendingItem, 0, len(pending))
	for _, req := range pending {
		item := PendingItem{Reservation: req}
		if withSummary && uc.summarizer != nil {
			item.Summary, item.SummaryErr = uc.summarizer.Summarize(ctx, req)
		}
		items = append(items, item)
	}
	return items, nil
}

// Execute применяет решение. При approve сначала фиксируется статус, потом доставляется подтверждение;
// ошибка доставки не откатывает одобрение и возвращается как Warning.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("DecideReservation: reservation id=%d, action=%s", req.ReservationID, req.Action)

	switch req.Action {
	case ActionSkip:
		existing, err := uc.reservations.GetByID(ctx, req.ReservationID)
		if err != nil {
			return nil, uc.mapError(req.ReservationID, err)
		}
		return &Response{Reservation: existing, Action: ActionSkip}, nil

	case ActionRefuse:
		decided, err := uc.reservations.Decide(ctx, req.ReservationID, domain.StatusRefused, req.Comment)
		if err != nil {
			return nil, uc.mapError(req.ReservationID, err)
		}
		return &Response{Reservation: decided, Action: ActionRefuse}, nil

	case ActionApprove:
		return uc.approve(ctx, req)

	default:
		uc.logger.Warn("DecideReservation: invalid action %q", req.Action)
		return nil, fmt.Errorf("%w: %q", ErrInvalidAction, req.Action)
	}
}

// approve комментарий хранится только у отклонённых заявок, при одобрении он отбрасывается
func (uc *UseCase) approve(ctx context.Context, req *Request) (*Response, error) {
	if req.Comment != "" {
		uc.logger.Info("DecideReservation: comment ignored on approval of reservation id=%d", req.ReservationID)
	}

	decided, err := uc.reservations.Decide(ctx, req.ReservationID, domain.StatusApproved, "")
	if err != nil {
		return nil, uc.mapError(req.ReservationID, err)
	}

	resp := &Response{Reservation: decided, Action: ActionApprove}

	approvedAt := decided.CreatedAt
	if decided.DecidedAt != nil {
		approvedAt = *decided.DecidedAt
	}

	delivery, err := uc.dispatcher.Dispatch(ctx, domain.NewConfirmedReservationEvent(decided, approvedAt))
	if err != nil {
		resp.Warning = fmt.Sprintf("Approved (DB updated). Write to file failed: %v", err)
		uc.logger.Warn("DecideReservation: reservation id=%d approved but not recorded: %v", decided.ID, err)
		return resp, nil
	}

	resp.Delivery = delivery
	uc.logger.Info("DecideReservation: reservation id=%d approved, confirmation written via %s", decided.ID, delivery.Path)
	return resp, nil
}

func (uc *UseCase) mapError(id int64, err error) error {
	switch {
	case errors.Is(err, reservations.ErrNotFound):
		return fmt.Errorf("%w: id=%d", ErrNotFound, id)
	case errors.Is(err, reservations.ErrAlreadyDecided):
		return fmt.Errorf("%w: id=%d", ErrAlreadyDecided, id)
	default:
		uc.logger.Error("DecideReservation: reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
