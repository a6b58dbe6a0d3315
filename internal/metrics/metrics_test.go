package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestHTTPMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)
	m.Observe("GET", "/analytics/top-specialties", "200", 0.01)
	m.Observe("GET", "/analytics/top-specialties", "200", 0.02)
	m.ObserveAppointmentCreated("Scheduled")
	m.ObserveReportFailure("top-specialties")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("GET", "/analytics/top-specialties", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.appointmentsTotal.WithLabelValues("Scheduled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reportFailuresTotal.WithLabelValues("top-specialties")))
}

func TestHTTPMetricsNilSafe(t *testing.T) {
	var m *HTTPMetrics
	m.Observe("GET", "/", "404", 0.1)
	m.ObserveAppointmentCreated("Scheduled")
	m.ObserveReportFailure("monthly")
}
