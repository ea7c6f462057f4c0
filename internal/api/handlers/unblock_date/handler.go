package unblock_date

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar"
)

const (
	msgDateUnblocked       = "Дата открыта"
	msgInvalidIndex        = "некорректный индекс закрытой даты"
	msgBlockedDateNotFound = "закрытая дата не найдена"
	msgAdminModeRequired   = "доступно только в режиме администратора"
	msgSessionNotFound     = "сессия не найдена, обновите страницу"
	msgInternalError       = "Не удалось открыть дату, попробуйте позже"
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

// HandleForm POST /admin/blocked-dates/{index}/unblock
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /admin/blocked-dates/{index}/unblock - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	index, err := parseIndex(r)
	if err != nil {
		h.logger.Warn("POST /admin/blocked-dates/{index}/unblock - Invalid index: %v", err)
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.ErrorNotice(msgInvalidIndex), handlers.AnchorAdmin)
		return
	}

	if _, err := h.service.Unblock(r.Context(), sessionID, index); err != nil {
		_, msg := h.mapError(err, sessionID, index)
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.ErrorNotice(msg), handlers.AnchorAdmin)
		return
	}

	handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.SuccessNotice(msgDateUnblocked), handlers.AnchorAdmin)
}

// HandleJSON DELETE /api/v1/admin/blocked-dates/{index}
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("DELETE /api/v1/admin/blocked-dates/{index} - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	index, err := parseIndex(r)
	if err != nil {
		h.logger.Warn("DELETE /api/v1/admin/blocked-dates/{index} - Invalid index: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIndex)
		return
	}

	result, err := h.service.Unblock(r.Context(), sessionID, index)
	if err != nil {
		status, msg := h.mapError(err, sessionID, index)
		handlers.RespondError(w, status, msg)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseIndex(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["index"])
}

func (h *Handler) mapError(err error, sessionID string, index int) (int, string) {
	switch {
	case errors.Is(err, calendar.ErrAdminModeRequired):
		return http.StatusForbidden, msgAdminModeRequired

	case errors.Is(err, calendar.ErrBlockedDateNotFound):
		h.logger.Warn("UnblockDate - Index %d not found: session=%s", index, sessionID)
		return http.StatusNotFound, msgBlockedDateNotFound

	case errors.Is(err, calendar.ErrSessionNotFound):
		return http.StatusNotFound, msgSessionNotFound

	default:
		h.logger.Error("UnblockDate - Failed to unblock index=%d: session=%s, error=%v", index, sessionID, err)
		return http.StatusInternalServerError, msgInternalError
	}
}
