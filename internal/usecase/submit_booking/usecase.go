package submit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	sessionRepo "github.com/m04kA/SMC-FotoStudio/internal/infra/storage/session"
)

// UseCase use case для отправки формы бронирования
type UseCase struct {
	sessions     SessionRepository
	metrics      Metrics
	timeProvider TimeProvider
	idGenerator  IDGenerator
	location     *time.Location
	phoneRegion  string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	metrics Metrics,
	location *time.Location,
	phoneRegion string,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		idGenerator:  UUIDGenerator{},
		location:     location,
		phoneRegion:  phoneRegion,
		logger:       logger,
	}
}

// Execute создает бронирование на выбранную в сессии дату
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: session=%s", req.SessionID)

	// 1. Валидация входных данных
	input, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		uc.metrics.IncBookingsRejected("invalid_input")
		return nil, err
	}

	// 2. Нормализуем телефон
	phone := normalizePhone(input.Phone, uc.phoneRegion)

	// 3. Текущее время и сегодняшний день в часовом поясе студии
	now := uc.timeProvider.Now()
	today := domain.Today(now, uc.location)

	// 4. Добавляем бронирование в состояние страницы
	id := uc.idGenerator.NewID()
	var created domain.Booking
	err = uc.sessions.Update(ctx, input.SessionID, func(state *domain.PageState) error {
		booking, err := state.SubmitBooking(id, input.Name, phone, now, today)
		if err != nil {
			return err
		}
		created = booking
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoDateSelected):
			uc.logger.Warn("SubmitBooking: no date selected, session=%s", input.SessionID)
			uc.metrics.IncBookingsRejected("no_date")
			return nil, ErrNoDateSelected

		case errors.Is(err, domain.ErrDateUnavailable):
			uc.logger.Warn("SubmitBooking: selected date is unavailable, session=%s", input.SessionID)
			uc.metrics.IncBookingsRejected("date_unavailable")
			return nil, ErrDateUnavailable

		case errors.Is(err, domain.ErrMissingContact):
			uc.metrics.IncBookingsRejected("invalid_input")
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)

		case errors.Is(err, sessionRepo.ErrSessionNotFound):
			uc.logger.Warn("SubmitBooking: session=%s not found", input.SessionID)
			return nil, ErrSessionNotFound

		default:
			uc.logger.Error("SubmitBooking: failed to update session=%s: %v", input.SessionID, err)
			return nil, fmt.Errorf("%w: failed to update session: %v", ErrInternal, err)
		}
	}

	if input.Comment != "" {
		uc.logger.Info("SubmitBooking: comment received for booking id=%s (%d chars, not stored)",
			created.ID, len([]rune(input.Comment)))
	}

	uc.metrics.IncBookingsCreated()
	uc.logger.Info("SubmitBooking: successfully created booking id=%s, date=%s", created.ID, created.Date)

	return &Response{
		ID:    created.ID,
		Date:  created.Date,
		Name:  created.Name,
		Phone: created.Phone,
	}, nil
}
