package get_reminder_draft

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
)

const (
	msgBookingNotFound   = "бронирование не найдено"
	msgAdminModeRequired = "доступно только в режиме администратора"
	msgSessionNotFound   = "сессия не найдена, обновите страницу"
)

type Handler struct {
	useCase ReminderUseCase
	logger  Logger
}

func NewHandler(useCase ReminderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings/{bookingId}/reminder
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("GET /api/v1/admin/bookings/{id}/reminder - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	bookingID := mux.Vars(r)["bookingId"]
	draft, err := h.useCase.Draft(r.Context(), &configureReminder.DraftRequest{
		SessionID: sessionID,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, configureReminder.ErrAdminModeRequired):
			handlers.RespondForbidden(w, msgAdminModeRequired)
		case errors.Is(err, configureReminder.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)
		case errors.Is(err, configureReminder.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgSessionNotFound)
		default:
			h.logger.Error("GET /api/v1/admin/bookings/{id}/reminder - Failed to build draft: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseDraft(draft))
}
