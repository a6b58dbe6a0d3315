package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"hospital-api-server/internal/models"
	"hospital-api-server/internal/store"
	"hospital-api-server/internal/utils"
)

// DirectoryHandler manages doctor and patient records.
type DirectoryHandler struct {
	Store  store.Directory
	Logger zerolog.Logger
}

// NewDirectoryHandler creates a new DirectoryHandler.
func NewDirectoryHandler(s store.Directory, logger zerolog.Logger) *DirectoryHandler {
	return &DirectoryHandler{Store: s, Logger: logger}
}

// CreateDoctorRequest represents the request body for registering a doctor.
type CreateDoctorRequest struct {
	Name         string   `json:"name" binding:"required"`
	Specialty    string   `json:"specialty" binding:"required"`
	Availability []string `json:"availability" validate:"unique,dive,weekday"`
}

// CreateDoctor registers a doctor with their weekly availability.
func (h *DirectoryHandler) CreateDoctor(c *gin.Context) {
	var req CreateDoctorRequest
	if !utils.BindAndValidate(c, &req, "Invalid doctor payload") {
		return
	}

	doctor := models.NewDoctor(req.Name, req.Specialty, req.Availability)
	if err := h.Store.CreateDoctor(c.Request.Context(), &doctor); err != nil {
		h.Logger.Error().Err(err).Str("request_id", requestID(c)).Msg("create doctor failed")
		utils.SomethingWentWrong(c)
		return
	}
	utils.Created(c, doctor.Profile())
}

// GetDoctor returns one doctor by ID.
func (h *DirectoryHandler) GetDoctor(c *gin.Context) {
	doctor, err := h.Store.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.recordLookupFailed(c, err, "Doctor")
		return
	}
	utils.Success(c, doctor.Profile())
}

// recordLookupFailed answers 404 for unknown or malformed IDs; a malformed ID
// cannot name a stored record.
func (h *DirectoryHandler) recordLookupFailed(c *gin.Context, err error, what string) {
	if errors.Is(err, store.ErrNotFound) || errors.Is(err, store.ErrInvalidID) {
		utils.NotFound(c, what+" not found")
		return
	}
	h.Logger.Error().Err(err).Str("request_id", requestID(c)).Msgf("get %s failed", what)
	utils.SomethingWentWrong(c)
}
