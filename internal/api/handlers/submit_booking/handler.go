package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	submitBooking "github.com/m04kA/SMC-FotoStudio/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingCreated     = "Бронирование создано! Скоро с вами свяжусь"
	msgNoDateSelected     = "Выберите дату"
	msgDateUnavailable    = "Выбранная дата недоступна, выберите другую"
	msgInvalidInput       = "Укажите имя (до 100 символов) и телефон (до 32 символов)"
	msgSessionNotFound    = "сессия не найдена, обновите страницу"
	msgInternalError      = "Не удалось создать бронирование, попробуйте позже"
)

type Handler struct {
	useCase SubmitBookingUseCase
	notices NoticeStore
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, notices NoticeStore, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		notices: notices,
		logger:  logger,
	}
}

// HandleForm POST /bookings
// Отправка HTML формы, ответ 303 на секцию календаря с уведомлением
func (h *Handler) HandleForm(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /bookings - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	req := FromForm(r)
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		_, msg := h.mapError(err, sessionID)
		handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.ErrorNotice(msg), handlers.AnchorCalendar)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s", result.ID, result.Date)
	handlers.RedirectWithNotice(w, r, h.notices, h.logger, sessionID, domain.SuccessNotice(msgBookingCreated), handlers.AnchorCalendar)
}

// HandleJSON POST /api/v1/bookings
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("POST /api/v1/bookings - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /api/v1/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		status, msg := h.mapError(err, sessionID)
		handlers.RespondError(w, status, msg)
		return
	}

	h.logger.Info("POST /api/v1/bookings - Booking created successfully: booking_id=%s, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) mapError(err error, sessionID string) (int, string) {
	switch {
	case errors.Is(err, submitBooking.ErrNoDateSelected):
		h.logger.Warn("POST /bookings - No date selected: session=%s", sessionID)
		return http.StatusBadRequest, msgNoDateSelected

	case errors.Is(err, submitBooking.ErrDateUnavailable):
		h.logger.Warn("POST /bookings - Date unavailable: session=%s", sessionID)
		return http.StatusConflict, msgDateUnavailable

	case errors.Is(err, submitBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: session=%s, error=%v", sessionID, err)
		return http.StatusBadRequest, msgInvalidInput

	case errors.Is(err, submitBooking.ErrSessionNotFound):
		h.logger.Warn("POST /bookings - Session not found: session=%s", sessionID)
		return http.StatusNotFound, msgSessionNotFound

	default:
		h.logger.Error("POST /bookings - Failed to create booking: session=%s, error=%v", sessionID, err)
		return http.StatusInternalServerError, msgInternalError
	}
}
