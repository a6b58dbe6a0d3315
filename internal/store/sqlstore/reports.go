package sqlstore

import (
	"context"
	"fmt"
	"time"

	"hospital-api-server/internal/models"
)

// DoctorWorkload counts appointments per existing doctor.
func (s *Store) DoctorWorkload(ctx context.Context) ([]models.DoctorWorkload, error) {
	rows := []models.DoctorWorkload{}
	err := s.db.WithContext(ctx).
		Table("appointments").
		Select("appointments.doctor_id AS doctor_id, doctors.name AS doctor_name, " +
			"doctors.specialty AS specialty, COUNT(*) AS total_appointments").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Group("appointments.doctor_id, doctors.name, doctors.specialty").
		Order("doctors.name, appointments.doctor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("doctor workload: %w", err)
	}
	return rows, nil
}

// PatientHistory left-joins the patient to its appointments and their doctors.
func (s *Store) PatientHistory(ctx context.Context, patientID string) ([]models.PatientVisit, error) {
	if err := checkID(patientID); err != nil {
		return nil, err
	}
	rows := []models.PatientVisit{}
	err := s.db.WithContext(ctx).
		Table("patients").
		Select("patients.id AS patient_id, patients.name AS name, patients.medical_history AS medical_history, "+
			"appointments.appointment_date AS appointment_date, appointments.status AS status, "+
			"doctors.name AS doctor_name, doctors.specialty AS specialty").
		Joins("LEFT JOIN appointments ON appointments.patient_id = patients.id").
		Joins("LEFT JOIN doctors ON doctors.id = appointments.doctor_id").
		Where("patients.id = ?", patientID).
		Order("appointments.appointment_date").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("patient history: %w", err)
	}
	return rows, nil
}

// SpecialtyCounts ranks specialties by appointment count; ties go to the
// alphabetically first specialty.
func (s *Store) SpecialtyCounts(ctx context.Context, limit int) ([]models.SpecialtyCount, error) {
	rows := []models.SpecialtyCount{}
	err := s.db.WithContext(ctx).
		Table("appointments").
		Select("doctors.specialty AS specialty, COUNT(*) AS total_appointments").
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Group("doctors.specialty").
		Order("total_appointments DESC, specialty ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("specialty counts: %w", err)
	}
	return rows, nil
}

// DoctorCancellations returns total and cancelled counts per existing doctor.
func (s *Store) DoctorCancellations(ctx context.Context) ([]models.DoctorCancellations, error) {
	rows := []models.DoctorCancellations{}
	err := s.db.WithContext(ctx).
		Table("appointments").
		Select("appointments.doctor_id AS doctor_id, doctors.name AS doctor_name, doctors.specialty AS specialty, "+
			"COUNT(*) AS total, COUNT(CASE WHEN appointments.status = ? THEN 1 END) AS cancelled",
			string(models.StatusCancelled)).
		Joins("JOIN doctors ON doctors.id = appointments.doctor_id").
		Group("appointments.doctor_id, doctors.name, doctors.specialty").
		Order("doctors.name, appointments.doctor_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("doctor cancellations: %w", err)
	}
	return rows, nil
}

// MonthlyCounts groups appointments by year and month of their date.
func (s *Store) MonthlyCounts(ctx context.Context) ([]models.MonthCount, error) {
	rows := []models.MonthCount{}
	err := s.db.WithContext(ctx).
		Table("appointments").
		Select(fmt.Sprintf("%s AS year, %s AS month, COUNT(*) AS count",
			s.dialect.year("appointment_date"), s.dialect.month("appointment_date"))).
		Group("year, month").
		Order("year ASC, month ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("monthly counts: %w", err)
	}
	return rows, nil
}

// FrequentPatients counts recent non-cancelled visits per existing patient.
func (s *Store) FrequentPatients(ctx context.Context, since time.Time, minVisits int64) ([]models.ActivePatient, error) {
	rows := []models.ActivePatient{}
	err := s.db.WithContext(ctx).
		Table("appointments").
		Select("appointments.patient_id AS patient_id, patients.name AS name, patients.age AS age, COUNT(*) AS visits").
		Joins("JOIN patients ON patients.id = appointments.patient_id").
		Where("appointments.appointment_date >= ? AND appointments.status <> ?", since.UTC(), string(models.StatusCancelled)).
		Group("appointments.patient_id, patients.name, patients.age").
		Having("COUNT(*) > ?", minVisits).
		Order("visits DESC, name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("frequent patients: %w", err)
	}
	return rows, nil
}

// DoctorsAvailableOn returns one row per doctor listing day.
func (s *Store) DoctorsAvailableOn(ctx context.Context, day string) ([]models.AvailableDoctor, error) {
	rows := []models.AvailableDoctor{}
	err := s.db.WithContext(ctx).
		Table("doctors").
		Select("doctors.id AS doctor_id, doctors.name AS name, doctors.specialty AS specialty, "+
			"doctor_availabilities.day AS availability").
		Joins("JOIN doctor_availabilities ON doctor_availabilities.doctor_id = doctors.id").
		Where(s.dialect.exactEquals("doctor_availabilities.day"), day).
		Order("doctors.name, doctors.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("doctors available on %s: %w", day, err)
	}
	return rows, nil
}
