package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FotoStudio/internal/domain"
	"github.com/m04kA/SMC-FotoStudio/internal/infra/storage/session"
	"github.com/m04kA/SMC-FotoStudio/pkg/logger"
	"github.com/m04kA/SMC-FotoStudio/pkg/metrics"
)

var testSessionConfig = SessionConfig{
	CookieName: "fotostudio_session",
	MaxAge:     time.Hour,
	Location:   time.UTC,
}

func echoSessionHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := GetSessionID(r.Context())
		_, _ = w.Write([]byte(id))
	})
}

func TestSession_IssuesCookieAndCreatesState(t *testing.T) {
	repo := session.NewRepository()
	h := Session(repo, testSessionConfig, logger.NewNop())(echoSessionHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "fotostudio_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, cookies[0].Value, rec.Body.String())
	_, err := uuid.Parse(cookies[0].Value)
	assert.NoError(t, err)
	assert.Equal(t, 1, repo.Count())
}

func TestSession_ReusesValidCookie(t *testing.T) {
	repo := session.NewRepository()
	h := Session(repo, testSessionConfig, logger.NewNop())(echoSessionHandler())
	id := uuid.NewString()

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "fotostudio_session", Value: id})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, id, rec.Body.String())
	}
	assert.Equal(t, 1, repo.Count())
}

func TestSession_ReplacesForgedCookie(t *testing.T) {
	repo := session.NewRepository()
	h := Session(repo, testSessionConfig, logger.NewNop())(echoSessionHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "fotostudio_session", Value: "not-a-uuid"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEqual(t, "not-a-uuid", rec.Body.String())
}

type failingStore struct{}

func (failingStore) Ensure(context.Context, string, domain.Day) (bool, error) {
	return false, errors.New("boom")
}

func TestSession_StoreFailure(t *testing.T) {
	h := Session(failingStore{}, testSessionConfig, logger.NewNop())(echoSessionHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, logger.NewNop())
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	h := rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	post := func(sessionID string) int {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req = req.WithContext(WithSessionID(req.Context(), sessionID))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, post("a"))
	assert.Equal(t, http.StatusNoContent, post("a"))
	assert.Equal(t, http.StatusTooManyRequests, post("a"))
	assert.Equal(t, http.StatusNoContent, post("b"), "sessions are limited independently")

	// GET не ограничивается
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	now = now.Add(time.Second)
	assert.Equal(t, http.StatusNoContent, post("a"))

	now = now.Add(time.Hour)
	assert.Equal(t, 2, rl.Sweep(time.Minute))
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test")
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/admin/blocked-dates/{index}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodDelete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/admin/blocked-dates/7", nil))

	assert.Equal(t, float64(1), testutil.ToFloat64(
		m.HTTPRequestsTotal.WithLabelValues(http.MethodDelete, "/admin/blocked-dates/{index}", "404")))
}
