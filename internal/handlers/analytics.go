package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-api-server/internal/analytics"
	"hospital-api-server/internal/metrics"
	"hospital-api-server/internal/utils"
)

// AnalyticsHandler serves the read-only reports.
type AnalyticsHandler struct {
	Service *analytics.Service
	Logger  zerolog.Logger
	Metrics *metrics.HTTPMetrics
}

// NewAnalyticsHandler creates a new AnalyticsHandler.
func NewAnalyticsHandler(svc *analytics.Service, logger zerolog.Logger, m *metrics.HTTPMetrics) *AnalyticsHandler {
	return &AnalyticsHandler{Service: svc, Logger: logger, Metrics: m}
}

// respondRows writes rows, the empty placeholder, or the generic failure.
func respondRows[T any](h *AnalyticsHandler, c *gin.Context, report string, rows []T, err error) {
	if err != nil {
		h.Logger.Error().
			Err(err).
			Str("request_id", requestID(c)).
			Str("report", report).
			Msg("analytics query failed")
		h.Metrics.ObserveReportFailure(report)
		utils.SomethingWentWrong(c)
		return
	}
	if len(rows) == 0 {
		utils.NoData(c)
		return
	}
	utils.Success(c, rows)
}

// DoctorsWithAppointments returns the appointment count per doctor.
func (h *AnalyticsHandler) DoctorsWithAppointments(c *gin.Context) {
	rows, err := h.Service.DoctorWorkload(c.Request.Context())
	respondRows(h, c, "doctors-with-appointments", rows, err)
}

// PatientMedicalHistory returns a patient's visits with their doctors.
func (h *AnalyticsHandler) PatientMedicalHistory(c *gin.Context) {
	rows, err := h.Service.PatientHistory(c.Request.Context(), c.Param("id"))
	respondRows(h, c, "patient-medical-history", rows, err)
}

// TopSpecialties returns the three busiest specialties.
func (h *AnalyticsHandler) TopSpecialties(c *gin.Context) {
	rows, err := h.Service.TopSpecialties(c.Request.Context())
	respondRows(h, c, "top-specialties", rows, err)
}

// CancelledAppointments returns the cancellation rate per doctor.
func (h *AnalyticsHandler) CancelledAppointments(c *gin.Context) {
	rows, err := h.Service.CancellationRates(c.Request.Context())
	respondRows(h, c, "cancelled-appointments", rows, err)
}

// MonthlyAppointments returns appointment counts per calendar month.
func (h *AnalyticsHandler) MonthlyAppointments(c *gin.Context) {
	rows, err := h.Service.MonthlyVolume(c.Request.Context())
	respondRows(h, c, "monthly-appointments", rows, err)
}

// ActivePatients returns patients with more than three recent visits.
func (h *AnalyticsHandler) ActivePatients(c *gin.Context) {
	rows, err := h.Service.ActivePatients(c.Request.Context())
	respondRows(h, c, "active-patients", rows, err)
}

// DoctorAvailability matches the :day segment exactly, so "monday" finds
// nothing when doctors list "Monday".
func (h *AnalyticsHandler) DoctorAvailability(c *gin.Context) {
	rows, err := h.Service.DoctorAvailability(c.Request.Context(), c.Param("day"))
	respondRows(h, c, "doctor-availability", rows, err)
}
