// Package seed loads a small demo data set through the store interface, so
// it works against either backend.
package seed

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"hospital-api-server/internal/models"
	"hospital-api-server/internal/store"
)

// Result counts what Run inserted.
type Result struct {
	Doctors      int
	Patients     int
	Appointments int
}

var doctors = []struct {
	name, specialty string
	days            []string
}{
	{"Dr. Meredith Grey", "General Surgery", []string{"Monday", "Wednesday", "Friday"}},
	{"Dr. Gregory House", "Diagnostics", []string{"Tuesday", "Thursday"}},
	{"Dr. Cristina Yang", "Cardiology", []string{"Monday", "Tuesday"}},
	{"Dr. John Carter", "Emergency Medicine", []string{"Saturday", "Sunday"}},
}

var patients = []struct {
	name    string
	age     int
	history string
}{
	{"Alice Johnson", 34, `{"conditions":["asthma"],"allergies":["penicillin"]}`},
	{"Bob Smith", 58, `{"conditions":["hypertension","type 2 diabetes"]}`},
	{"Carol White", 27, `null`},
}

// Run inserts the demo doctors, patients and appointments. Appointment dates
// are spread over the months before now so every report has rows.
func Run(ctx context.Context, s store.Directory, now time.Time) (Result, error) {
	var res Result
	doctorIDs := make([]string, 0, len(doctors))
	for _, d := range doctors {
		doctor := models.NewDoctor(d.name, d.specialty, d.days)
		if err := s.CreateDoctor(ctx, &doctor); err != nil {
			return res, fmt.Errorf("seed doctor %q: %w", d.name, err)
		}
		doctorIDs = append(doctorIDs, doctor.ID)
		res.Doctors++
	}

	patientIDs := make([]string, 0, len(patients))
	for _, p := range patients {
		patient := models.Patient{Name: p.name, Age: p.age, MedicalHistory: datatypes.JSON(p.history)}
		if err := s.CreatePatient(ctx, &patient); err != nil {
			return res, fmt.Errorf("seed patient %q: %w", p.name, err)
		}
		patientIDs = append(patientIDs, patient.ID)
		res.Patients++
	}

	statuses := []models.AppointmentStatus{models.StatusCompleted, models.StatusCompleted, models.StatusScheduled, models.StatusCancelled}
	base := now.UTC().Truncate(24 * time.Hour)
	for i := 0; i < 12; i++ {
		// The first patient gets every other visit so they show up as active.
		patient := patientIDs[0]
		if i%2 == 1 {
			patient = patientIDs[1+(i/2)%(len(patientIDs)-1)]
		}
		a := models.Appointment{
			DoctorID:        doctorIDs[i%len(doctorIDs)],
			PatientID:       patient,
			AppointmentDate: base.AddDate(0, 0, -14*i),
			Status:          statuses[i%len(statuses)],
		}
		if err := s.CreateAppointment(ctx, &a); err != nil {
			return res, fmt.Errorf("seed appointment %d: %w", i, err)
		}
		res.Appointments++
	}
	return res, nil
}
