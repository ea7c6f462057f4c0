package block_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar"
)

const (
	msgDateBlocked        = "Дата закрыта для бронирования"
	msgNoDateSelected     = "Выберите дату"
	msgDateAlreadyBlocked = "Дата уже закрыта"
	msgAdminModeRequired  = "доступно только в режиме администратора"
	msgSessionNotFound    = "сессия не найдена, обновите страницу"
	msgInternalError      = "Не удалось закрыть дату, попробуйте позже"
)

type Handler struct {
	service CalendarService
	notices NoticeStore
	logger  Logger
}

func NewHandler(service CalendarService, notices NoticeStore, logger Logger) *Handler {
	return &Handler{
		service: service,
		notices: notices,
		logger:  logger,
	}
}

// HandleForm POST /admin/blocked-dates
// Закрывает текущую выбранную дату
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /admin/blocked-dates - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	if _, err := h.service.BlockSelected(r.Context(), sessionID); err != nil {
		_, msg := h.mapError(err, sessionID)
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.ErrorNotice(msg), handlers.AnchorAdmin)
		return
	}

	handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.SuccessNotice(msgDateBlocked), handlers.AnchorAdmin)
}

// HandleJSON POST /api/v1/admin/blocked-dates
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /api/v1/admin/blocked-dates - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.BlockSelected(r.Context(), sessionID)
	if err != nil {
		status, msg := h.mapError(err, sessionID)
		handlers.RespondError(w, status, msg)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) mapError(err error, sessionID string) (int, string) {
	switch {
	case errors.Is(err, calendar.ErrAdminModeRequired):
		return http.StatusForbidden, msgAdminModeRequired

	case errors.Is(err, calendar.ErrNoDateSelected):
		h.logger.Warn("BlockDate - No date selected: session=%s", sessionID)
		return http.StatusBadRequest, msgNoDateSelected

	case errors.Is(err, calendar.ErrDateAlreadyBlocked):
		h.logger.Warn("BlockDate - Date already blocked: session=%s", sessionID)
		return http.StatusConflict, msgDateAlreadyBlocked

	case errors.Is(err, calendar.ErrSessionNotFound):
		return http.StatusNotFound, msgSessionNotFound

	default:
		h.logger.Error("BlockDate - Failed to block date: session=%s, error=%v", sessionID, err)
		return http.StatusInternalServerError, msgInternalError
	}
}
