package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-api-server/internal/metrics"
	"hospital-api-server/internal/models"
	"hospital-api-server/internal/store"
	"hospital-api-server/internal/utils"
)

const invalidAppointment = "Invalid appointment payload"

// AppointmentHandler handles appointment related requests.
type AppointmentHandler struct {
	Store   store.Directory
	Logger  zerolog.Logger
	Metrics *metrics.HTTPMetrics
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(s store.Directory, logger zerolog.Logger, m *metrics.HTTPMetrics) *AppointmentHandler {
	return &AppointmentHandler{Store: s, Logger: logger, Metrics: m}
}

// CreateAppointmentRequest represents the request body for creating an appointment.
type CreateAppointmentRequest struct {
	DoctorID        string `json:"doctorId" binding:"required"`
	PatientID       string `json:"patientId" binding:"required"`
	AppointmentDate string `json:"appointmentDate" binding:"required"`
	Status          string `json:"status" binding:"required,oneof=Scheduled Completed Cancelled"`
}

// CreateAppointment schedules an appointment between an existing doctor and
// patient. Nothing about the stored record is echoed back.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var req CreateAppointmentRequest
	if !utils.BindAndValidate(c, &req, invalidAppointment) {
		return
	}

	when, err := utils.ParseDate(req.AppointmentDate)
	if err != nil {
		utils.BadRequest(c, invalidAppointment+": "+err.Error())
		return
	}
	status, err := models.ParseAppointmentStatus(req.Status)
	if err != nil {
		utils.BadRequest(c, invalidAppointment+": "+err.Error())
		return
	}

	ctx := c.Request.Context()

	// Verify doctor exists
	if _, err := h.Store.GetDoctor(ctx, req.DoctorID); err != nil {
		h.lookupFailed(c, err, "doctor")
		return
	}
	// Verify patient exists
	if _, err := h.Store.GetPatient(ctx, req.PatientID); err != nil {
		h.lookupFailed(c, err, "patient")
		return
	}

	appointment := models.Appointment{
		DoctorID:        req.DoctorID,
		PatientID:       req.PatientID,
		AppointmentDate: when,
		Status:          status,
	}
	if err := h.Store.CreateAppointment(ctx, &appointment); err != nil {
		h.Logger.Error().Err(err).Str("request_id", requestID(c)).Msg("create appointment failed")
		utils.SomethingWentWrong(c)
		return
	}

	h.Metrics.ObserveAppointmentCreated(string(status))
	utils.Message(c, http.StatusOK, "Appointment scheduled successfully")
}

// lookupFailed maps a failed doctor or patient lookup onto a response.
func (h *AppointmentHandler) lookupFailed(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, store.ErrInvalidID):
		utils.BadRequest(c, "Invalid "+what+" ID")
	case errors.Is(err, store.ErrNotFound):
		utils.NotFound(c, capitalize(what)+" not found")
	default:
		h.Logger.Error().Err(err).Str("request_id", requestID(c)).Msgf("verify %s failed", what)
		utils.SomethingWentWrong(c)
	}
}
