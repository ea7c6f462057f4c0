package handlers

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

// Якоря секций страницы
const (
	AnchorServices = "services"
	AnchorCalendar = "calendar"
	AnchorAdmin    = "admin"
	AnchorContacts = "contacts"
)

// NoticeStore хранилище уведомлений, показываемых при следующей отрисовке страницы
type NoticeStore interface {
	PushNotice(ctx context.Context, sessionID string, notice domain.Notice) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RedirectWithNotice сохраняет уведомление и перенаправляет на секцию страницы (303 See Other)
func RedirectWithNotice(
	w http.ResponseWriter,
	r *http.Request,
	notices NoticeStore,
	logger Logger,
	sessionID string,
	notice domain.Notice,
	anchor string,
) {
	if err := notices.PushNotice(r.Context(), sessionID, notice); err != nil {
		logger.Error("RedirectWithNotice: failed to push notice, session=%s: %v", sessionID, err)
	}
	RedirectToSection(w, r, anchor)
}

// RedirectToSection перенаправляет на главную страницу с якорем секции
func RedirectToSection(w http.ResponseWriter, r *http.Request, anchor string) {
	target := "/"
	if anchor != "" {
		target += "#" + anchor
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
