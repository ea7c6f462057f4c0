package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FotoStudio/internal/api/handlers"
	"github.com/m04kA/SMC-FotoStudio/internal/domain"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

const msgSessionUnavailable = "не удалось открыть сессию"

// SessionStore хранилище состояний страниц
type SessionStore interface {
	Ensure(ctx context.Context, id string, today domain.Day) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SessionConfig параметры cookie сессии
type SessionConfig struct {
	CookieName string
	MaxAge     time.Duration
	Secure     bool
	Location   *time.Location
}

// Session привязывает запрос к состоянию страницы посетителя через cookie.
// Без cookie или с некорректным значением выдается новый идентификатор.
func Session(store SessionStore, cfg SessionConfig, logger Logger) func(http.Handler) http.Handler {
	return SessionWithClock(store, cfg, time.Now, logger)
}

// SessionWithClock то же, что Session, с заданным источником времени
func SessionWithClock(store SessionStore, cfg SessionConfig, now func() time.Time, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
			}

			created, err := store.Ensure(r.Context(), sessionID, domain.Today(now(), cfg.Location))
			if err != nil {
				logger.Error("Session: failed to ensure session=%s: %v", sessionID, err)
				handlers.RespondError(w, http.StatusInternalServerError, msgSessionUnavailable)
				return
			}
			if created {
				logger.Info("Session: new session=%s", sessionID)
			}

			http.SetCookie(w, &http.Cookie{
				Name:     cfg.CookieName,
				Value:    sessionID,
				Path:     "/",
				MaxAge:   int(cfg.MaxAge.Seconds()),
				HttpOnly: true,
				Secure:   cfg.Secure,
				SameSite: http.SameSiteLaxMode,
			})

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID извлекает идентификатор сессии из контекста
func GetSessionID(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(sessionIDKey).(string)
	return sessionID, ok && sessionID != ""
}

// WithSessionID кладет идентификатор сессии в контекст (используется в тестах handlers)
func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}
