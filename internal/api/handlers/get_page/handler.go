package get_page

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gorilla/csrf"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/api/middleware"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/service/page"
	configureReminder "github.com/m04kA/SMC-FotoStudio/internal/usecase/configure_reminder"
	"github.com/m04kA/SMC-FotoStudio/internal/web"
)

const (
	msgInvalidMonth    = "некорректный формат месяца, ожидается YYYY-MM"
	msgSessionNotFound = "сессия не найдена, обновите страницу"
)

type Handler struct {
	service   PageService
	reminders ReminderUseCase
	renderer  Renderer
	logger    Logger
}

func NewHandler(service PageService, reminders ReminderUseCase, renderer Renderer, logger Logger) *Handler {
	return &Handler{
		service:   service,
		reminders: reminders,
		renderer:  renderer,
		logger:    logger,
	}
}

// HandleHTML GET /
// Query params: month (YYYY-MM), reminder (ID бронирования для диалога напоминания)
func (h *Handler) HandleHTML(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("GET / - Session ID missing in context")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	// Некорректный месяц не ломает страницу: показываем месяц по умолчанию
	month, err := parseMonth(r)
	if err != nil {
		h.logger.Warn("GET / - Invalid month %q, using default", r.URL.Query().Get("month"))
		month = nil
	}

	result, err := h.service.GetPage(r.Context(), sessionID, month)
	if err != nil {
		h.logger.Error("GET / - Failed to build page: session=%s, error=%v", sessionID, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	view := web.PageView{
		Page:      result,
		CSRFField: csrf.TemplateField(r),
		Year:      pageYear(result.Today),
	}

	if bookingID := r.URL.Query().Get("reminder"); bookingID != "" && result.IsAdmin {
		draft, err := h.reminders.Draft(r.Context(), &configureReminder.DraftRequest{
			SessionID: sessionID,
			BookingID: bookingID,
		})
		if err != nil {
			h.logger.Warn("GET / - Reminder dialog unavailable: booking_id=%s, error=%v", bookingID, err)
		} else {
			view.Reminder = ToReminderDialog(draft)
		}
	}

	var buf bytes.Buffer
	if err := h.renderer.RenderPage(&buf, view); err != nil {
		h.logger.Error("GET / - Failed to render page: session=%s, error=%v", sessionID, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// HandleJSON GET /api/v1/page
// Query params: month (YYYY-MM, опционально)
func (h *Handler) HandleJSON(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionID(r.Context())
	if !ok {
		h.logger.Error("GET /api/v1/page - Session ID missing in context")
		handlers.RespondInternalError(w)
		return
	}

	month, err := parseMonth(r)
	if err != nil {
		h.logger.Warn("GET /api/v1/page - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.service.GetPage(r.Context(), sessionID, month)
	if err != nil {
		if errors.Is(err, page.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgSessionNotFound)
			return
		}
		h.logger.Error("GET /api/v1/page - Failed to build page: session=%s, error=%v", sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseMonth(r *http.Request) (*domain.Month, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return nil, nil
	}
	m, err := domain.ParseMonth(raw)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func pageYear(today string) int {
	d, err := domain.ParseDay(today)
	if err != nil {
		return 0
	}
	return d.Year
}
