package models

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "Scheduled"
	StatusCompleted AppointmentStatus = "Completed"
	StatusCancelled AppointmentStatus = "Cancelled"
)

// Valid reports whether s is one of the known statuses. Matching is exact.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// ParseAppointmentStatus converts raw into an AppointmentStatus.
func ParseAppointmentStatus(raw string) (AppointmentStatus, error) {
	s := AppointmentStatus(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown appointment status %q", raw)
	}
	return s, nil
}

// Appointment represents a scheduled medical appointment
type Appointment struct {
	BaseModel
	DoctorID        string            `gorm:"size:36;index;not null" json:"doctorId"`
	PatientID       string            `gorm:"size:36;index;not null" json:"patientId"`
	AppointmentDate time.Time         `gorm:"index;not null" json:"appointmentDate"`
	Status          AppointmentStatus `gorm:"size:20;index;not null" json:"status"`

	// Relations
	Doctor  *Doctor  `gorm:"foreignKey:DoctorID" json:"-"`
	Patient *Patient `gorm:"foreignKey:PatientID" json:"-"`
}
