package page

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	sessionRepo "github.com/m04kA/SMC-FotoStudio/internal/infra/storage/session"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar"
	calendarModels "github.com/m04kA/SMC-FotoStudio/internal/service/calendar/models"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page/models"
)

// Service сервис сборки страницы и переключения режима администратора
type Service struct {
	sessions      SessionRepository
	contacts      domain.Contacts
	toggleEnabled bool
	timeProvider  TimeProvider
	location      *time.Location
	logger        Logger
}

// NewService создает новый экземпляр сервиса страницы
func NewService(
	sessions SessionRepository,
	contacts domain.Contacts,
	toggleEnabled bool,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		sessions:      sessions,
		contacts:      contacts,
		toggleEnabled: toggleEnabled,
		timeProvider:  &RealTimeProvider{},
		location:      location,
		logger:        logger,
	}
}

// GetPage собирает данные страницы. Накопленные уведомления отдаются один раз.
// Бронирования и закрытые даты включаются только в режиме администратора.
func (s *Service) GetPage(ctx context.Context, sessionID string, month *domain.Month) (*models.PageResponse, error) {
	state, err := s.sessions.Snapshot(ctx, sessionID)
	if err != nil {
		return nil, s.mapError("GetPage", sessionID, err)
	}

	notices, err := s.sessions.PopNotices(ctx, sessionID)
	if err != nil {
		return nil, s.mapError("GetPage", sessionID, err)
	}

	today := domain.Today(s.timeProvider.Now(), s.location)
	grid := domain.BuildMonthGrid(calendar.ResolveMonth(month, state, today), state, today)

	resp := &models.PageResponse{
		Mode:          string(state.Mode),
		IsAdmin:       state.IsAdmin(),
		ToggleEnabled: s.toggleEnabled,
		Today:         today.String(),
		Selected:      models.FromDomainSelected(state),
		Services:      models.FromDomainCatalog(domain.Catalog()),
		Contacts:      models.FromDomainContacts(s.contacts),
		Calendar:      calendarModels.FromDomainGrid(grid),
		Notices:       models.FromDomainNotices(notices),
	}

	if state.IsAdmin() {
		resp.Bookings = models.FromDomainBookings(state.Bookings, state.Reminders)
		resp.BlockedDates = calendarModels.FromDomainBlockedList(state.Blocked)
	}

	return resp, nil
}

// GetServices возвращает каталог услуг
func (s *Service) GetServices() []models.ServiceResponse {
	return models.FromDomainCatalog(domain.Catalog())
}

// ToggleAdmin переключает режим гость/администратор.
// Учетные данные не проверяются: режим влияет только на отображение.
func (s *Service) ToggleAdmin(ctx context.Context, sessionID string) (*models.ToggleResponse, error) {
	if !s.toggleEnabled {
		s.logger.Warn("ToggleAdmin: toggle is disabled by configuration, session=%s", sessionID)
		return nil, ErrAdminToggleDisabled
	}

	var mode domain.ViewMode
	err := s.sessions.Update(ctx, sessionID, func(state *domain.PageState) error {
		mode = state.ToggleAdmin()
		return nil
	})
	if err != nil {
		return nil, s.mapError("ToggleAdmin", sessionID, err)
	}

	s.logger.Info("ToggleAdmin: mode=%s, session=%s", mode, sessionID)
	return &models.ToggleResponse{
		Mode:    string(mode),
		IsAdmin: mode == domain.ModeAdmin,
	}, nil
}

func (s *Service) mapError(op, sessionID string, err error) error {
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		s.logger.Warn("%s: session=%s not found", op, sessionID)
		return ErrSessionNotFound
	}
	s.logger.Error("%s: session=%s: %v", op, sessionID, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
