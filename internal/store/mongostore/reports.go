package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"hospital-api-server/internal/models"
)

type workloadRow struct {
	ID                primitive.ObjectID `bson:"_id"`
	DoctorName        string             `bson:"doctorName"`
	Specialty         string             `bson:"specialty"`
	TotalAppointments int64              `bson:"totalAppointments"`
}

type historyRow struct {
	ID              primitive.ObjectID `bson:"_id"`
	Name            string             `bson:"name"`
	MedicalHistory  interface{}        `bson:"medicalHistory"`
	AppointmentDate *time.Time         `bson:"appointmentDate"`
	Status          *string            `bson:"status"`
	DoctorName      *string            `bson:"doctorName"`
	Specialty       *string            `bson:"specialty"`
}

type specialtyRow struct {
	Specialty         string `bson:"specialty"`
	TotalAppointments int64  `bson:"totalAppointments"`
}

type cancellationRow struct {
	ID         primitive.ObjectID `bson:"_id"`
	DoctorName string             `bson:"doctorName"`
	Specialty  string             `bson:"specialty"`
	Total      int64              `bson:"total"`
	Cancelled  int64              `bson:"cancelled"`
}

type monthRow struct {
	Year  int   `bson:"year"`
	Month int   `bson:"month"`
	Count int64 `bson:"count"`
}

type activePatientRow struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Age    int                `bson:"age"`
	Visits int64              `bson:"visits"`
}

type availabilityRow struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         string             `bson:"name"`
	Specialty    string             `bson:"specialty"`
	Availability string             `bson:"availability"`
}

// DoctorWorkload counts appointments per existing doctor.
func (s *Store) DoctorWorkload(ctx context.Context) ([]models.DoctorWorkload, error) {
	var rows []workloadRow
	if err := s.aggregate(ctx, appointmentsCollection, workloadPipeline(), &rows); err != nil {
		return nil, fmt.Errorf("doctor workload: %w", err)
	}
	out := make([]models.DoctorWorkload, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.DoctorWorkload{
			DoctorID:          r.ID.Hex(),
			DoctorName:        r.DoctorName,
			Specialty:         r.Specialty,
			TotalAppointments: r.TotalAppointments,
		})
	}
	return out, nil
}

// PatientHistory returns the patient's visits with doctor details.
func (s *Store) PatientHistory(ctx context.Context, patientID string) ([]models.PatientVisit, error) {
	oid, err := objectID(patientID)
	if err != nil {
		return nil, err
	}
	var rows []historyRow
	if err := s.aggregate(ctx, patientsCollection, historyPipeline(oid), &rows); err != nil {
		return nil, fmt.Errorf("patient history: %w", err)
	}
	out := make([]models.PatientVisit, 0, len(rows))
	for _, r := range rows {
		history, err := historyJSON(r.MedicalHistory)
		if err != nil {
			return nil, fmt.Errorf("patient history: medical history: %w", err)
		}
		var when *time.Time
		if r.AppointmentDate != nil {
			t := r.AppointmentDate.UTC()
			when = &t
		}
		out = append(out, models.PatientVisit{
			PatientID:       r.ID.Hex(),
			Name:            r.Name,
			MedicalHistory:  history,
			AppointmentDate: when,
			Status:          r.Status,
			DoctorName:      r.DoctorName,
			Specialty:       r.Specialty,
		})
	}
	return out, nil
}

// SpecialtyCounts ranks specialties by appointment count.
func (s *Store) SpecialtyCounts(ctx context.Context, limit int) ([]models.SpecialtyCount, error) {
	var rows []specialtyRow
	if err := s.aggregate(ctx, appointmentsCollection, specialtyPipeline(limit), &rows); err != nil {
		return nil, fmt.Errorf("specialty counts: %w", err)
	}
	out := make([]models.SpecialtyCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.SpecialtyCount(r))
	}
	return out, nil
}

// DoctorCancellations returns total and cancelled counts per existing doctor.
func (s *Store) DoctorCancellations(ctx context.Context) ([]models.DoctorCancellations, error) {
	var rows []cancellationRow
	if err := s.aggregate(ctx, appointmentsCollection, cancellationPipeline(), &rows); err != nil {
		return nil, fmt.Errorf("doctor cancellations: %w", err)
	}
	out := make([]models.DoctorCancellations, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.DoctorCancellations{
			DoctorID:   r.ID.Hex(),
			DoctorName: r.DoctorName,
			Specialty:  r.Specialty,
			Total:      r.Total,
			Cancelled:  r.Cancelled,
		})
	}
	return out, nil
}

// MonthlyCounts groups appointments by UTC year and month.
func (s *Store) MonthlyCounts(ctx context.Context) ([]models.MonthCount, error) {
	var rows []monthRow
	if err := s.aggregate(ctx, appointmentsCollection, monthlyPipeline(), &rows); err != nil {
		return nil, fmt.Errorf("monthly counts: %w", err)
	}
	out := make([]models.MonthCount, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.MonthCount(r))
	}
	return out, nil
}

// FrequentPatients counts recent non-cancelled visits per existing patient.
func (s *Store) FrequentPatients(ctx context.Context, since time.Time, minVisits int64) ([]models.ActivePatient, error) {
	var rows []activePatientRow
	if err := s.aggregate(ctx, appointmentsCollection, frequentPatientsPipeline(since, minVisits), &rows); err != nil {
		return nil, fmt.Errorf("frequent patients: %w", err)
	}
	out := make([]models.ActivePatient, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.ActivePatient{
			PatientID: r.ID.Hex(),
			Name:      r.Name,
			Age:       r.Age,
			Visits:    r.Visits,
		})
	}
	return out, nil
}

// DoctorsAvailableOn returns one row per doctor listing day.
func (s *Store) DoctorsAvailableOn(ctx context.Context, day string) ([]models.AvailableDoctor, error) {
	var rows []availabilityRow
	if err := s.aggregate(ctx, doctorsCollection, availabilityPipeline(day), &rows); err != nil {
		return nil, fmt.Errorf("doctors available on %s: %w", day, err)
	}
	out := make([]models.AvailableDoctor, 0, len(rows))
	for _, r := range rows {
		out = append(out, models.AvailableDoctor{
			DoctorID:     r.ID.Hex(),
			Name:         r.Name,
			Specialty:    r.Specialty,
			Availability: r.Availability,
		})
	}
	return out, nil
}
