package configure_reminder

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgReminderConfigured = "Напоминание настроено!"
	msgBookingNotFound    = "бронирование не найдено"
	msgInvalidLeadTime    = "выберите срок напоминания из списка"
	msgInvalidInput       = "Введите текст напоминания (до 1000 символов)"
	msgAdminModeRequired  = "доступно только в режиме администратора"
	msgSessionNotFound    = "сессия не найдена, обновите страницу"
	msgInternalError      = "Не удалось настроить напоминание, попробуйте позже"
)

type Handler struct {
	useCase ConfigureReminderUseCase
	notices NoticeStore
	logger  Logger
}

func NewHandler(useCase ConfigureReminderUseCase, notices NoticeStore, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		notices: notices,
		logger:  logger,
	}
}

// HandleForm POST /admin/bookings/{bookingId}/reminder
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /admin/bookings/{id}/reminder - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	req := FromForm(r)
	if _, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, bookingID)); err != nil {
		_, msg := h.mapError(err, bookingID)
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.ErrorNotice(msg), handlers.AnchorAdmin)
		return
	}

	handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.SuccessNotice(msgReminderConfigured), handlers.AnchorAdmin)
}

// HandleJSON PUT /api/v1/admin/bookings/{bookingId}/reminder
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("PUT /api/v1/admin/bookings/{id}/reminder - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req ConfigureReminderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /api/v1/admin/bookings/{id}/reminder - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID, bookingID))
	if err != nil {
		status, msg := h.mapError(err, bookingID)
		handlers.RespondError(w, status, msg)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) mapError(err error, bookingID string) (int, string) {
	switch {
	case errors.Is(err, configureReminder.ErrAdminModeRequired):
		return http.StatusForbidden, msgAdminModeRequired

	case errors.Is(err, configureReminder.ErrBookingNotFound):
		h.logger.Warn("ConfigureReminder - Booking not found: booking_id=%s", bookingID)
		return http.StatusNotFound, msgBookingNotFound

	case errors.Is(err, configureReminder.ErrInvalidLeadTime):
		return http.StatusBadRequest, msgInvalidLeadTime

	case errors.Is(err, configureReminder.ErrInvalidInput):
		return http.StatusBadRequest, msgInvalidInput

	case errors.Is(err, configureReminder.ErrSessionNotFound):
		return http.StatusNotFound, msgSessionNotFound

	default:
		h.logger.Error("ConfigureReminder - Failed to configure reminder: booking_id=%s, error=%v", bookingID, err)
		return http.StatusInternalServerError, msgInternalError
	}
}
