package configure_reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	sessionRepo "github.com/m04kA/SMC-FotoStudio/internal/infra/storage/session"
	"github.com/m04kA/SMC-FotoStudio/internal/integrations/notifier"
)

// UseCase use case для настройки напоминаний клиентам
type UseCase struct {
	sessions     SessionRepository
	gateway      NotificationGateway
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	sessions SessionRepository,
	gateway NotificationGateway,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions:     sessions,
		gateway:      gateway,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Draft возвращает содержимое диалога напоминания для бронирования
func (uc *UseCase) Draft(ctx context.Context, req *DraftRequest) (*Draft, error) {
	state, err := uc.sessions.Snapshot(ctx, req.SessionID)
	if err != nil {
		return nil, uc.mapError("Draft", req.SessionID, err)
	}

	if !state.IsAdmin() {
		return nil, ErrAdminModeRequired
	}

	booking, ok := state.FindBooking(req.BookingID)
	if !ok {
		uc.logger.Warn("ConfigureReminder: Draft: booking id=%s not found", req.BookingID)
		return nil, ErrBookingNotFound
	}

	draft := &Draft{
		BookingID:  booking.ID,
		ClientName: booking.Name,
		Date:       booking.Date,
		Options:    append([]domain.LeadTimeOption{}, domain.LeadTimeOptions...),
		LeadTime:   domain.DefaultLeadTime,
		Message:    domain.DefaultReminderMessage(booking),
	}

	if saved, ok := state.Reminders[booking.ID]; ok {
		draft.LeadTime = saved.LeadTime
		draft.Message = saved.Message
		draft.Configured = true
	}

	return draft, nil
}

// Execute сохраняет настройку напоминания и передает его шлюзу уведомлений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfigureReminder: booking id=%s, lead_time=%s", req.BookingID, req.LeadTime)

	// 1. Валидация входных данных
	input, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("ConfigureReminder: validation failed: %v", err)
		return nil, err
	}

	reminder := domain.Reminder{
		BookingID:    input.BookingID,
		LeadTime:     input.LeadTime,
		Message:      input.Message,
		ConfiguredAt: uc.timeProvider.Now(),
	}

	// 2. Сохраняем настройку в состоянии страницы
	var booking domain.Booking
	err = uc.sessions.Update(ctx, input.SessionID, func(state *domain.PageState) error {
		if !state.IsAdmin() {
			return ErrAdminModeRequired
		}
		if err := state.ConfigureReminder(reminder); err != nil {
			return err
		}
		booking, _ = state.FindBooking(input.BookingID)
		return nil
	})
	if err != nil {
		return nil, uc.mapError("Execute", input.SessionID, err)
	}

	// 3. Передаем напоминание шлюзу
	sendAt := reminder.SendAt(booking.Date, uc.location)
	err = uc.gateway.Schedule(ctx, notifier.Reminder{
		BookingID:  booking.ID,
		ClientName: booking.Name,
		Phone:      booking.Phone,
		SendAt:     sendAt,
		Message:    reminder.Message,
		Channel:    notifier.ChannelWhatsApp,
	})
	if err != nil {
		uc.logger.Error("ConfigureReminder: failed to schedule reminder for booking id=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to schedule reminder: %v", ErrInternal, err)
	}

	uc.metrics.IncRemindersConfigured(string(reminder.LeadTime))
	uc.logger.Info("ConfigureReminder: reminder for booking id=%s scheduled at %s",
		booking.ID, sendAt.Format(time.RFC3339))

	return &Response{
		BookingID: booking.ID,
		LeadTime:  reminder.LeadTime,
		Message:   reminder.Message,
		SendAt:    sendAt,
	}, nil
}

func (uc *UseCase) mapError(op, sessionID string, err error) error {
	switch {
	case errors.Is(err, ErrAdminModeRequired):
		uc.logger.Warn("ConfigureReminder: %s: admin mode required, session=%s", op, sessionID)
		return ErrAdminModeRequired
	case errors.Is(err, domain.ErrBookingNotFound):
		return ErrBookingNotFound
	case errors.Is(err, domain.ErrInvalidLeadTime):
		return ErrInvalidLeadTime
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		uc.logger.Warn("ConfigureReminder: %s: session=%s not found", op, sessionID)
		return ErrSessionNotFound
	default:
		uc.logger.Error("ConfigureReminder: %s: session=%s: %v", op, sessionID, err)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
