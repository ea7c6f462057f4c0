package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	sessionRepo "github.com/m04kA/SMC-FotoStudio/internal/infra/storage/session"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar/models"
)

// Service сервис выбора даты и закрытия дат администратором
type Service struct {
	sessions     SessionRepository
	metrics      Metrics
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(
	sessions SessionRepository,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		sessions:     sessions,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

func (s *Service) today() domain.Day {
	return domain.Today(s.timeProvider.Now(), s.location)
}

// SelectDate выбирает день. nil снимает выбор.
func (s *Service) SelectDate(ctx context.Context, sessionID string, date *domain.Day) (*models.SelectionResponse, error) {
	today := s.today()

	var selected *domain.Day
	err := s.sessions.Update(ctx, sessionID, func(state *domain.PageState) error {
		if date == nil {
			state.ClearSelection()
		} else if err := state.SelectDate(*date, today); err != nil {
			return err
		}
		selected = state.Selected
		return nil
	})
	if err != nil {
		return nil, s.mapError("SelectDate", sessionID, err)
	}

	if selected == nil {
		s.logger.Info("SelectDate: selection cleared, session=%s", sessionID)
	} else {
		s.logger.Info("SelectDate: selected %s, session=%s", selected, sessionID)
	}
	return models.FromDomainSelection(selected), nil
}

// GetMonth возвращает сетку месяца. Без month показывается месяц выбранного дня,
// а если день не выбран, текущий месяц.
func (s *Service) GetMonth(ctx context.Context, sessionID string, month *domain.Month) (*models.CalendarResponse, error) {
	state, err := s.sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, s.mapError("GetMonth", sessionID, err)
	}

	today := s.today()
	grid := domain.BuildMonthGrid(ResolveMonth(month, state, today), state, today)
	return models.FromDomainGrid(grid), nil
}

// BlockSelected закрывает выбранную дату для бронирования
func (s *Service) BlockSelected(ctx context.Context, sessionID string) (*models.BlockedDateResponse, error) {
	var (
		blocked domain.Day
		index   int
	)
	err := s.sessions.Update(ctx, sessionID, func(state *domain.PageState) error {
		if !state.IsAdmin() {
			return ErrAdminModeRequired
		}
		day, err := state.BlockSelected()
		if err != nil {
			return err
		}
		blocked = day
		index = len(state.Blocked) - 1
		return nil
	})
	if err != nil {
		return nil, s.mapError("BlockSelected", sessionID, err)
	}

	s.metrics.IncDatesBlocked()
	s.logger.Info("BlockSelected: date %s blocked, session=%s", blocked, sessionID)

	resp := models.FromDomainBlocked(index, blocked)
	return &resp, nil
}

// Unblock открывает дату по позиции в списке закрытых дат
func (s *Service) Unblock(ctx context.Context, sessionID string, index int) (*models.BlockedDateResponse, error) {
	var removed domain.Day
	err := s.sessions.Update(ctx, sessionID, func(state *domain.PageState) error {
		if !state.IsAdmin() {
			return ErrAdminModeRequired
		}
		day, err := state.Unblock(index)
		if err != nil {
			return err
		}
		removed = day
		return nil
	})
	if err != nil {
		return nil, s.mapError("Unblock", sessionID, err)
	}

	s.metrics.IncDatesUnblocked()
	s.logger.Info("Unblock: date %s (index=%d) unblocked, session=%s", removed, index, sessionID)

	resp := models.FromDomainBlocked(index, removed)
	return &resp, nil
}

// ResolveMonth выбирает отображаемый месяц
func ResolveMonth(month *domain.Month, state *domain.PageState, today domain.Day) domain.Month {
	switch {
	case month != nil:
		return *month
	case state.Selected != nil:
		return domain.MonthOf(*state.Selected)
	default:
		return domain.MonthOf(today)
	}
}

func (s *Service) mapError(op, sessionID string, err error) error {
	switch {
	case errors.Is(err, ErrAdminModeRequired):
		s.logger.Warn("%s: admin mode required, session=%s", op, sessionID)
		return ErrAdminModeRequired
	case errors.Is(err, domain.ErrDateDisabled):
		s.logger.Warn("%s: date is disabled, session=%s", op, sessionID)
		return ErrDateDisabled
	case errors.Is(err, domain.ErrNoDateSelected):
		return ErrNoDateSelected
	case errors.Is(err, domain.ErrDateAlreadyBlocked):
		return ErrDateAlreadyBlocked
	case errors.Is(err, domain.ErrBlockedDateNotFound):
		s.logger.Warn("%s: blocked date not found, session=%s", op, sessionID)
		return ErrBlockedDateNotFound
	case errors.Is(err, sessionRepo.ErrSessionNotFound):
		s.logger.Warn("%s: session=%s not found", op, sessionID)
		return ErrSessionNotFound
	default:
		s.logger.Error("%s: session=%s: %v", op, sessionID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
