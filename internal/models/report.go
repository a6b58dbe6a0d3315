package models

import (
	"time"

	"gorm.io/datatypes"
)

// DoctorWorkload is one row of the doctor workload report.
type DoctorWorkload struct {
	DoctorID          string `json:"doctorId"`
	DoctorName        string `json:"doctorName"`
	Specialty         string `json:"specialty"`
	TotalAppointments int64  `json:"totalAppointments"`
}

// PatientVisit is one row of a patient's history. The visit fields are nil
// when the patient has no appointments.
type PatientVisit struct {
	PatientID       string         `json:"patientId"`
	Name            string         `json:"name"`
	MedicalHistory  datatypes.JSON `json:"medicalHistory"`
	AppointmentDate *time.Time     `json:"appointmentDate"`
	Status          *string        `json:"status"`
	DoctorName      *string        `json:"doctorName"`
	Specialty       *string        `json:"specialty"`
}

// SpecialtyCount is one row of the top specialties report.
type SpecialtyCount struct {
	Specialty         string `json:"specialty"`
	TotalAppointments int64  `json:"totalAppointments"`
}

// DoctorCancellations carries the raw counts a cancellation rate is derived from.
type DoctorCancellations struct {
	DoctorID   string
	DoctorName string
	Specialty  string
	Total      int64
	Cancelled  int64
}

// CancellationRate is one row of the cancellation report; the rate is a
// percentage in [0, 100].
type CancellationRate struct {
	DoctorID         string  `json:"doctorId"`
	DoctorName       string  `json:"doctorName"`
	Specialty        string  `json:"specialty"`
	CancellationRate float64 `json:"cancellationRate"`
}

// MonthCount is the number of appointments in one calendar month (UTC).
type MonthCount struct {
	Year  int
	Month int
	Count int64
}

// MonthlyVolume is one row of the monthly report, labelled "M/YYYY".
type MonthlyVolume struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

// ActivePatient is one row of the active patients report.
type ActivePatient struct {
	PatientID string `json:"patientId"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Visits    int64  `json:"visits"`
}

// AvailableDoctor is a doctor matched on one availability day.
type AvailableDoctor struct {
	DoctorID     string `json:"doctorId"`
	Name         string `json:"name"`
	Specialty    string `json:"specialty"`
	Availability string `json:"availability"`
}
