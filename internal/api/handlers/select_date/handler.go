package select_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateDisabled       = "Эта дата недоступна для бронирования"
	msgSessionNotFound    = "сессия не найдена, обновите страницу"
	msgInternalError      = "Не удалось выбрать дату, попробуйте позже"
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

// HandleForm POST /calendar/select
// Пустое поле date снимает выбор (повторный клик по выбранному дню)
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /calendar/select - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	date := r.PostFormValue("date")
	req := SelectDateRequest{Date: &date}
	day, err := req.ToDomainDay()
	if err != nil {
		h.logger.Warn("POST /calendar/select - Invalid date %q: %v", date, err)
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.ErrorNotice(msgInvalidDate), handlers.AnchorCalendar)
		return
	}

	if _, err := h.service.SelectDate(r.Context(), sessionID, day); err != nil {
		_, msg := h.mapError(err, sessionID)
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.ErrorNotice(msg), handlers.AnchorCalendar)
		return
	}

	handlers.RedirectToSection(w, r, handlers.AnchorCalendar)
}

// HandleJSON PUT /api/v1/calendar/selection
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("PUT /api/v1/calendar/selection - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /api/v1/calendar/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	day, err := req.ToDomainDay()
	if err != nil {
		h.logger.Warn("PUT /api/v1/calendar/selection - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.SelectDate(r.Context(), sessionID, day)
	if err != nil {
		status, msg := h.mapError(err, sessionID)
		handlers.RespondError(w, status, msg)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) mapError(err error, sessionID string) (int, string) {
	switch {
	case errors.Is(err, calendar.ErrDateDisabled):
		h.logger.Warn("SelectDate - Date disabled: session=%s", sessionID)
		return http.StatusConflict, msgDateDisabled

	case errors.Is(err, calendar.ErrSessionNotFound):
		h.logger.Warn("SelectDate - Session not found: session=%s", sessionID)
		return http.StatusNotFound, msgSessionNotFound

	default:
		h.logger.Error("SelectDate - Failed to select date: session=%s, error=%v", sessionID, err)
		return http.StatusInternalServerError, msgInternalError
	}
}
