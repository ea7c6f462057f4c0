package toggle_admin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page"
)

const (
	msgAdminOn         = "Режим администратора включен"
	msgAdminOff        = "Режим администратора выключен"
	msgToggleDisabled  = "переключение режима администратора отключено"
	msgSessionNotFound = "сессия не найдена, обновите страницу"
	msgInternalError   = "Не удалось переключить режим, попробуйте позже"
)

type Handler struct {
	service PageService
	notices NoticeStore
	logger  Logger
}

func NewHandler(service PageService, notices NoticeStore, logger Logger) *Handler {
	return &Handler{
		service: service,
		notices: notices,
		logger:  logger,
	}
}

// HandleForm POST /admin/toggle
// После включения страница открывается на панели администратора
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /admin/toggle - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.ToggleAdmin(r.Context(), sessionID)
	if err != nil {
		_, msg := h.mapError(err, sessionID)
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.ErrorNotice(msg), "")
		return
	}

	if result.IsAdmin {
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.InfoNotice(msgAdminOn), handlers.AnchorAdmin)
		return
	}
	handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.InfoNotice(msgAdminOff), "")
}

// HandleJSON POST /api/v1/admin/toggle
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /api/v1/admin/toggle - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.ToggleAdmin(r.Context(), sessionID)
	if err != nil {
		status, msg := h.mapError(err, sessionID)
		handlers.RespondError(w, status, msg)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) mapError(err error, sessionID string) (int, string) {
	switch {
	case errors.Is(err, page.ErrAdminToggleDisabled):
		h.logger.Warn("ToggleAdmin - Toggle disabled: session=%s", sessionID)
		return http.StatusForbidden, msgToggleDisabled

	case errors.Is(err, page.ErrSessionNotFound):
		h.logger.Warn("ToggleAdmin - Session not found: session=%s", sessionID)
		return http.StatusNotFound, msgSessionNotFound

	default:
		h.logger.Error("ToggleAdmin - Failed to toggle: session=%s, error=%v", sessionID, err)
		return http.StatusInternalServerError, msgInternalError
	}
}
