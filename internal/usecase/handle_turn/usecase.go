package handle_turn

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-ParkingService/pkg/ptr"
)

// "status of 12", "request #12", "reservation 12", "id 12"; берётся первая найденная группа
var statusQueryPattern = regexp.MustCompile(`(?i)(?:status|request)\s*(?:of|#|:)?\s*(\d+)|reservation\s*(\d+)|id\s*(\d+)`)

// step один путь обработки; matched=false передаёт сообщение следующему
type step struct {
	route  Route
	handle func(ctx context.Context, message string) (resp *Response, matched bool)
}

// UseCase обработка одного сообщения пользователя.
// Пути проверяются строго по порядку: статус, подача заявки, общий вопрос.
type UseCase struct {
	store     ReservationStore
	extractor Extractor
	answerer  Answerer
	logger    Logger

	steps []step
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ReservationStore, extractor Extractor, answerer Answerer, logger Logger) *UseCase {
	uc := &UseCase{
		store:     store,
		extractor: extractor,
		answerer:  answerer,
		logger:    logger,
	}
	uc.steps = []step{
		{route: RouteStatusQuery, handle: uc.statusQuery},
		{route: RouteSubmission, handle: uc.submission},
		{route: RouteGeneralQuery, handle: uc.generalQuery},
	}
	return uc
}

// Execute возвращает ответ на сообщение. Ошибка только для пустого сообщения:
// сбои хранилища и модели превращаются в текст ответа.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, ErrEmptyMessage
	}

	for _, s := range uc.steps {
		if resp, ok := s.handle(ctx, message); ok {
			resp.Route = s.route
			uc.logger.Info("HandleTurn: route=%s", s.route)
			return resp, nil
		}
	}

	// generalQuery всегда срабатывает
	return &Response{Route: RouteGeneralQuery, Reply: replyAnswerFailed}, nil
}

// ParseRequestID ищет ID заявки в тексте
func ParseRequestID(message string) (int64, bool) {
	match := statusQueryPattern.FindStringSubmatch(message)
	if match == nil {
		return 0, false
	}

	for _, group := range match[1:] {
		if group == "" {
			continue
		}
		id, err := strconv.ParseInt(group, 10, 64)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	return 0, false
}

func (uc *UseCase) statusQuery(ctx context.Context, message string) (*Response, bool) {
	id, ok := ParseRequestID(message)
	if !ok {
		return nil, false
	}

	req, found, err := uc.store.GetStatus(ctx, id)
	if err != nil {
		uc.logger.Error("HandleTurn: status lookup for id=%d failed: %v", id, err)
		return &Response{Reply: replyLookupFailed(id), ReservationID: ptr.Ptr(id)}, true
	}
	if !found {
		return &Response{Reply: replyNotFound(id)}, true
	}

	return &Response{Reply: replyStatus(req), ReservationID: ptr.Ptr(id)}, true
}

func (uc *UseCase) submission(ctx context.Context, message string) (*Response, bool) {
	draft, err := uc.extractor.Extract(ctx, message)
	if err != nil {
		uc.logger.Warn("HandleTurn: extraction failed, treating as general query: %v", err)
		return nil, false
	}
	if !draft.IsComplete() {
		return nil, false
	}

	id, err := uc.store.Create(ctx, draft)
	if err != nil {
		uc.logger.Error("HandleTurn: submission failed: %v", err)
		return &Response{Reply: replySubmitFailed}, true
	}

	uc.logger.Info("HandleTurn: reservation id=%d submitted for car=%s", id, draft.CarNumber)
	return &Response{Reply: replySubmitted(id), ReservationID: ptr.Ptr(id)}, true
}

func (uc *UseCase) generalQuery(ctx context.Context, message string) (*Response, bool) {
	reply, err := uc.answerer.Answer(ctx, message)
	if err != nil {
		uc.logger.Error("HandleTurn: answer failed: %v", err)
		return &Response{Reply: replyAnswerFailed}, true
	}
	return &Response{Reply: reply}, true
}
