// Package mongostore implements store.Store on MongoDB using aggregation
// pipelines over the doctors, patients and appointments collections.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hospital-api-server/internal/models"
	"hospital-api-server/internal/store"
)

// Store is the MongoDB-backed store.
type Store struct {
	db  *mongo.Database
	now func() time.Time
}

var _ store.Store = (*Store)(nil)

// Open creates a client for uri. The driver connects in the background, so
// an unreachable server is reported by Ping rather than here.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	return New(client.Database(database)), nil
}

// New wraps an existing database handle.
func New(db *mongo.Database) *Store {
	return &Store{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Ping checks that the primary answers.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// Migrate creates the indexes the reports rely on.
func (s *Store) Migrate(ctx context.Context) error {
	_, err := s.db.Collection(appointmentsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "doctorId", Value: 1}}},
		{Keys: bson.D{{Key: "patientId", Value: 1}}},
		{Keys: bson.D{{Key: "appointmentDate", Value: 1}, {Key: "status", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("create appointment indexes: %w", err)
	}
	_, err = s.db.Collection(doctorsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "availability", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create doctor indexes: %w", err)
	}
	return nil
}

// Close disconnects the client.
func (s *Store) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.db.Client().Disconnect(ctx)
}

// CreateDoctor inserts d and sets its ID.
func (s *Store) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	now := s.now()
	doc := doctorDoc{
		ID:           primitive.NewObjectID(),
		Name:         d.Name,
		Specialty:    d.Specialty,
		Availability: d.Days(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := s.db.Collection(doctorsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	*d = *doc.model()
	return nil
}

// GetDoctor loads a doctor by hex ObjectID.
func (s *Store) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc doctorDoc
	if err := s.findOne(ctx, doctorsCollection, oid, &doc); err != nil {
		return nil, fmt.Errorf("get doctor: %w", err)
	}
	return doc.model(), nil
}

// CreatePatient inserts p and sets its ID.
func (s *Store) CreatePatient(ctx context.Context, p *models.Patient) error {
	history, err := historyValue(p.MedicalHistory)
	if err != nil {
		return fmt.Errorf("create patient: medical history: %w", err)
	}
	now := s.now()
	doc := patientDoc{
		ID:             primitive.NewObjectID(),
		Name:           p.Name,
		Age:            p.Age,
		MedicalHistory: history,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if _, err := s.db.Collection(patientsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	p.ID = doc.ID.Hex()
	p.CreatedAt = now
	p.UpdatedAt = now
	if len(p.MedicalHistory) == 0 {
		p.MedicalHistory = []byte("null")
	}
	return nil
}

// GetPatient loads a patient by hex ObjectID.
func (s *Store) GetPatient(ctx context.Context, id string) (*models.Patient, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	var doc patientDoc
	if err := s.findOne(ctx, patientsCollection, oid, &doc); err != nil {
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return doc.model()
}

// CreateAppointment inserts a and sets its ID.
func (s *Store) CreateAppointment(ctx context.Context, a *models.Appointment) error {
	doctorID, err := objectID(a.DoctorID)
	if err != nil {
		return err
	}
	patientID, err := objectID(a.PatientID)
	if err != nil {
		return err
	}
	now := s.now()
	doc := appointmentDoc{
		ID:              primitive.NewObjectID(),
		DoctorID:        doctorID,
		PatientID:       patientID,
		AppointmentDate: a.AppointmentDate.UTC(),
		Status:          string(a.Status),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if _, err := s.db.Collection(appointmentsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	a.ID = doc.ID.Hex()
	a.AppointmentDate = doc.AppointmentDate
	a.CreatedAt = now
	a.UpdatedAt = now
	return nil
}

func (s *Store) findOne(ctx context.Context, collection string, id primitive.ObjectID, out interface{}) error {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

// aggregate runs pipeline on collection and decodes every result into out.
func (s *Store) aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline, out interface{}) error {
	cur, err := s.db.Collection(collection).Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cur.All(ctx, out)
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", store.ErrInvalidID, id)
	}
	return oid, nil
}
