package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("fotostudio")

	m.IncBookingsCreated()
	m.IncBookingsCreated()
	m.IncBookingsRejected("no_date")
	m.IncRemindersConfigured("1d")
	m.SetActiveSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsRejected.WithLabelValues("no_date")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RemindersConfigured.WithLabelValues("1d")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ActiveSessions))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingsCreated()
		m.IncDatesBlocked()
		m.SetActiveSessions(1)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New("fotostudio")
	m.IncDatesBlocked()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `dates_blocked_total{service="fotostudio"} 1`)
}
