// Package analytics shapes store reports into the rows served by the
// /analytics endpoints.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hospital-api-server/internal/models"
	"hospital-api-server/internal/store"
)

const (
	// TopSpecialtiesLimit is the number of rows in the top specialties report.
	TopSpecialtiesLimit = 3
	// ActiveWindowMonths is how far back visits count towards activity.
	ActiveWindowMonths = 6
	// ActiveVisitThreshold is the visit count a patient must exceed.
	ActiveVisitThreshold int64 = 3
)

// Service runs the analytics reports.
type Service struct {
	reports store.Reports
	now     func() time.Time
}

// NewService returns a Service over reports using the wall clock.
func NewService(reports store.Reports) *Service {
	return &Service{reports: reports, now: time.Now}
}

// WithClock replaces the clock used for the active patient window.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// DoctorWorkload counts appointments per doctor.
func (s *Service) DoctorWorkload(ctx context.Context) ([]models.DoctorWorkload, error) {
	return s.reports.DoctorWorkload(ctx)
}

// PatientHistory lists one patient's visits.
func (s *Service) PatientHistory(ctx context.Context, patientID string) ([]models.PatientVisit, error) {
	return s.reports.PatientHistory(ctx, patientID)
}

// TopSpecialties returns the busiest specialties, at most TopSpecialtiesLimit.
func (s *Service) TopSpecialties(ctx context.Context) ([]models.SpecialtyCount, error) {
	rows, err := s.reports.SpecialtyCounts(ctx, TopSpecialtiesLimit)
	if err != nil {
		return nil, err
	}
	if len(rows) > TopSpecialtiesLimit {
		rows = rows[:TopSpecialtiesLimit]
	}
	return rows, nil
}

// CancellationRates derives a percentage per doctor from the raw counts.
func (s *Service) CancellationRates(ctx context.Context) ([]models.CancellationRate, error) {
	counts, err := s.reports.DoctorCancellations(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.CancellationRate, 0, len(counts))
	for _, c := range counts {
		out = append(out, models.CancellationRate{
			DoctorID:         c.DoctorID,
			DoctorName:       c.DoctorName,
			Specialty:        c.Specialty,
			CancellationRate: CancellationRate(c.Cancelled, c.Total),
		})
	}
	return out, nil
}

// MonthlyVolume labels monthly counts oldest first.
func (s *Service) MonthlyVolume(ctx context.Context) ([]models.MonthlyVolume, error) {
	counts, err := s.reports.MonthlyCounts(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(counts, func(i, j int) bool {
		if counts[i].Year != counts[j].Year {
			return counts[i].Year < counts[j].Year
		}
		return counts[i].Month < counts[j].Month
	})
	out := make([]models.MonthlyVolume, 0, len(counts))
	for _, c := range counts {
		out = append(out, models.MonthlyVolume{Month: MonthLabel(c.Year, c.Month), Count: c.Count})
	}
	return out, nil
}

// ActivePatients lists patients with more than ActiveVisitThreshold
// non-cancelled visits in the last ActiveWindowMonths months.
func (s *Service) ActivePatients(ctx context.Context) ([]models.ActivePatient, error) {
	return s.reports.FrequentPatients(ctx, ActiveSince(s.now()), ActiveVisitThreshold)
}

// DoctorAvailability lists doctors available on day, matched exactly.
func (s *Service) DoctorAvailability(ctx context.Context, day string) ([]models.AvailableDoctor, error) {
	return s.reports.DoctorsAvailableOn(ctx, day)
}

// CancellationRate returns cancelled/total as a percentage, or 0 when total is 0.
func CancellationRate(cancelled, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return float64(cancelled) / float64(total) * 100
}

// MonthLabel formats a month as "M/YYYY" without zero padding.
func MonthLabel(year, month int) string {
	return fmt.Sprintf("%d/%d", month, year)
}

// ActiveSince is the start of the activity window ending at now.
func ActiveSince(now time.Time) time.Time {
	return now.UTC().AddDate(0, -ActiveWindowMonths, 0)
}
