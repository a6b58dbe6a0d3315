// Package metrics holds the Prometheus collectors for the HTTP API.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// HTTPMetrics exposes request counters and latencies for the API.
type HTTPMetrics struct {
	requestsTotal       *prometheus.CounterVec
	requestLatency      *prometheus.HistogramVec
	appointmentsTotal   *prometheus.CounterVec
	reportFailuresTotal *prometheus.CounterVec
}

// NewHTTPMetrics registers the collectors on reg, or on the default
// registerer when reg is nil.
func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "hospital",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		appointmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital",
			Subsystem: "appointments",
			Name:      "created_total",
			Help:      "Appointments scheduled by status",
		}, []string{"status"}),
		reportFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "hospital",
			Subsystem: "analytics",
			Name:      "failures_total",
			Help:      "Analytics reports that failed in the store",
		}, []string{"report"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency, m.appointmentsTotal, m.reportFailuresTotal)
	return m
}

// Observe records one finished request.
func (m *HTTPMetrics) Observe(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, route, status).Inc()
	m.requestLatency.WithLabelValues(method, route).Observe(seconds)
}

// ObserveAppointmentCreated counts a stored appointment by status.
func (m *HTTPMetrics) ObserveAppointmentCreated(status string) {
	if m == nil {
		return
	}
	m.appointmentsTotal.WithLabelValues(status).Inc()
}

// ObserveReportFailure counts a report the store failed to produce.
func (m *HTTPMetrics) ObserveReportFailure(report string) {
	if m == nil {
		return
	}
	m.reportFailuresTotal.WithLabelValues(report).Inc()
}
