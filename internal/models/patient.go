package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Patient represents a patient. MedicalHistory is free-form JSON.
type Patient struct {
	BaseModel
	Name           string         `gorm:"size:255;not null" json:"name"`
	Age            int            `json:"age"`
	MedicalHistory datatypes.JSON `json:"medicalHistory"`
}

// BeforeSave stores an absent history as JSON null instead of SQL NULL.
func (p *Patient) BeforeSave(tx *gorm.DB) error {
	if len(p.MedicalHistory) == 0 {
		p.MedicalHistory = datatypes.JSON("null")
	}
	return nil
}
