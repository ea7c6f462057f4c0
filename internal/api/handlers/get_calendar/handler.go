package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar"
)

const (
	msgInvalidMonth    = "некорректный формат месяца, ожидается YYYY-MM"
	msgSessionNotFound = "сессия не найдена, обновите страницу"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: month (YYYY-MM, опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("GET /api/v1/calendar - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var month *domain.Month
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := domain.ParseMonth(raw)
		if err != nil {
			h.logger.Warn("GET /api/v1/calendar - Invalid month %q", raw)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		month = &m
	}

	result, err := h.service.GetMonth(r.Context(), sessionID, month)
	if err != nil {
		if errors.Is(err, calendar.ErrSessionNotFound) {
			h.logger.Warn("GET /api/v1/calendar - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /api/v1/calendar - Failed to build month: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
