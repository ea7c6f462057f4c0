package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics набор метрик сервиса с собственным реестром
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	HTTPInFlight        prometheus.Gauge

	BookingsCreated     prometheus.Counter
	BookingsRejected    *prometheus.CounterVec
	DatesBlocked        prometheus.Counter
	DatesUnblocked      prometheus.Counter
	RemindersConfigured *prometheus.CounterVec
	ActiveSessions      prometheus.Gauge
}

// New создает и регистрирует метрики. serviceName попадает в const label "service".
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		HTTPInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "http_requests_in_flight",
			Help:        "Number of HTTP requests being served",
			ConstLabels: labels,
		}),
		BookingsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_created_total",
			Help:        "Total number of created bookings",
			ConstLabels: labels,
		}),
		BookingsRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "bookings_rejected_total",
			Help:        "Total number of rejected booking attempts by reason",
			ConstLabels: labels,
		}, []string{"reason"}),
		DatesBlocked: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "dates_blocked_total",
			Help:        "Total number of dates closed for booking",
			ConstLabels: labels,
		}),
		DatesUnblocked: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "dates_unblocked_total",
			Help:        "Total number of dates reopened for booking",
			ConstLabels: labels,
		}),
		RemindersConfigured: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_configured_total",
			Help:        "Total number of configured reminders by lead time",
			ConstLabels: labels,
		}, []string{"lead_time"}),
		ActiveSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "sessions_active",
			Help:        "Number of live visitor sessions",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.HTTPInFlight,
		m.BookingsCreated,
		m.BookingsRejected,
		m.DatesBlocked,
		m.DatesUnblocked,
		m.RemindersConfigured,
		m.ActiveSessions,
	)

	return m
}

// Handler отдает метрики в формате Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry возвращает реестр (используется в тестах)
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) IncBookingsCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

func (m *Metrics) IncBookingsRejected(reason string) {
	if m == nil {
		return
	}
	m.BookingsRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncDatesBlocked() {
	if m == nil {
		return
	}
	m.DatesBlocked.Inc()
}

func (m *Metrics) IncDatesUnblocked() {
	if m == nil {
		return
	}
	m.DatesUnblocked.Inc()
}

func (m *Metrics) IncRemindersConfigured(leadTime string) {
	if m == nil {
		return
	}
	m.RemindersConfigured.WithLabelValues(leadTime).Inc()
}

func (m *Metrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.ActiveSessions.Set(float64(n))
}
