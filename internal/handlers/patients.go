package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"hospital-api-server/internal/models"
	"hospital-api-server/internal/utils"
)

// CreatePatientRequest represents the request body for registering a patient.
type CreatePatientRequest struct {
	Name           string         `json:"name" binding:"required"`
	Age            int            `json:"age" binding:"min=0"`
	MedicalHistory datatypes.JSON `json:"medicalHistory"`
}

// CreatePatient registers a patient. The medical history is stored as given.
func (h *DirectoryHandler) CreatePatient(c *gin.Context) {
	var req CreatePatientRequest
	if !utils.BindAndValidate(c, &req, "Invalid patient payload") {
		return
	}

	patient := models.Patient{
		Name:           req.Name,
		Age:            req.Age,
		MedicalHistory: req.MedicalHistory,
	}
	if err := h.Store.CreatePatient(c.Request.Context(), &patient); err != nil {
		h.Logger.Error().Err(err).Str("request_id", requestID(c)).Msg("create patient failed")
		utils.SomethingWentWrong(c)
		return
	}
	utils.Created(c, patient)
}

// GetPatient returns one patient by ID.
func (h *DirectoryHandler) GetPatient(c *gin.Context) {
	patient, err := h.Store.GetPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.recordLookupFailed(c, err, "Patient")
		return
	}
	utils.Success(c, patient)
}
