// Package sqlstore implements store.Store on gorm. MySQL is the production
// dialect; SQLite is supported for tests.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"hospital-api-server/internal/logging"
	"hospital-api-server/internal/models"
	"hospital-api-server/internal/store"
)

// Store is the gorm-backed store.
type Store struct {
	db      *gorm.DB
	dialect dialect
}

var _ store.Store = (*Store)(nil)

// Open prepares a MySQL connection pool without contacting the server, so
// an unreachable database surfaces on first use rather than at startup.
func Open(dsn string, logger zerolog.Logger) (*Store, error) {
	db, err := gorm.Open(mysql.New(mysql.Config{
		DSN:                       dsn,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:               logging.GormLogger(logger),
		DisableAutomaticPing: true,
		NowFunc:              func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("open mysql: %w", err)
	}
	return New(db), nil
}

// New wraps an existing gorm connection.
func New(db *gorm.DB) *Store {
	return &Store{db: db, dialect: dialectFor(db)}
}

// DB exposes the underlying connection.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Ping checks that the database answers.
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Migrate creates or updates the tables.
func (s *Store) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// CreateDoctor inserts d together with its availability rows.
func (s *Store) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	if err := s.db.WithContext(ctx).Create(d).Error; err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	return nil
}

// GetDoctor loads a doctor and its availability.
func (s *Store) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var d models.Doctor
	err := s.db.WithContext(ctx).
		Preload("Availability", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, notFound(err, "get doctor")
	}
	return &d, nil
}

// CreatePatient inserts p.
func (s *Store) CreatePatient(ctx context.Context, p *models.Patient) error {
	if err := s.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

// GetPatient loads a patient.
func (s *Store) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	var p models.Patient
	if err := s.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, notFound(err, "get patient")
	}
	return &p, nil
}

// CreateAppointment inserts a.
func (s *Store) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	if err := checkID(a.DoctorID); err != nil {
		return err
	}
	if err := checkID(a.PatientID); err != nil {
		return err
	}
	a.AppointmentDate = a.AppointmentDate.UTC()
	if err := s.db.WithContext(ctx).Omit("Doctor", "Patient").Create(a).Error; err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	return nil
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return nil
}

func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return store.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
