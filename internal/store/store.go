// Package store defines the persistence contract shared by the SQL and
// document backends.
package store

import (
	"context"
	"errors"
	"time"

	"hospital-api-server/internal/models"
)

var (
	// ErrNotFound is returned when a record looked up by ID does not exist.
	ErrNotFound = errors.New("store: record not found")
	// ErrInvalidID is returned when an ID is not well formed for the backend.
	ErrInvalidID = errors.New("store: invalid identifier")
)

// Store is a connected backend.
type Store interface {
	Directory
	Reports

	Ping(ctx context.Context) error
	Migrate(ctx context.Context) error
	Close() error
}

// Directory holds the record-level reads and writes.
type Directory interface {
	CreateDoctor(ctx context.Context, d *models.Doctor) error
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	CreatePatient(ctx context.Context, p *models.Patient) error
	GetPatient(ctx context.Context, id string) (*models.Patient, error)
	CreateAppointment(ctx context.Context, a *models.Appointment) error
}

// Reports holds the read-only aggregations behind the analytics endpoints.
// Every method returns an empty slice, not an error, when nothing matches.
type Reports interface {
	// DoctorWorkload counts appointments per doctor. Appointments whose
	// doctor no longer exists are dropped.
	DoctorWorkload(ctx context.Context) ([]models.DoctorWorkload, error)
	// PatientHistory returns one row per appointment of the patient, or a
	// single row with nil visit fields when there are none. An unknown
	// patient yields no rows.
	PatientHistory(ctx context.Context, patientID string) ([]models.PatientVisit, error)
	// SpecialtyCounts counts appointments per doctor specialty, highest
	// first, at most limit rows.
	SpecialtyCounts(ctx context.Context, limit int) ([]models.SpecialtyCount, error)
	DoctorCancellations(ctx context.Context) ([]models.DoctorCancellations, error)
	// MonthlyCounts groups appointments by UTC calendar month, oldest first.
	MonthlyCounts(ctx context.Context) ([]models.MonthCount, error)
	// FrequentPatients counts non-cancelled appointments on or after since
	// per patient and keeps patients with more than minVisits.
	FrequentPatients(ctx context.Context, since time.Time, minVisits int64) ([]models.ActivePatient, error)
	// DoctorsAvailableOn matches day exactly, including case.
	DoctorsAvailableOn(ctx context.Context, day string) ([]models.AvailableDoctor, error)
}
