package mongostore

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/datatypes"

	"hospital-api-server/internal/models"
)

const (
	doctorsCollection      = "doctors"
	patientsCollection     = "patients"
	appointmentsCollection = "appointments"
)

type doctorDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Name         string             `bson:"name"`
	Specialty    string             `bson:"specialty"`
	Availability []string           `bson:"availability"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (d doctorDoc) model() *models.Doctor {
	m := models.NewDoctor(d.Name, d.Specialty, d.Availability)
	m.ID = d.ID.Hex()
	m.CreatedAt = d.CreatedAt
	m.UpdatedAt = d.UpdatedAt
	for i := range m.Availability {
		m.Availability[i].DoctorID = m.ID
	}
	return &m
}

type patientDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Name           string             `bson:"name"`
	Age            int                `bson:"age"`
	MedicalHistory interface{}        `bson:"medicalHistory"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt"`
}

func (p patientDoc) model() (*models.Patient, error) {
	history, err := historyJSON(p.MedicalHistory)
	if err != nil {
		return nil, err
	}
	m := &models.Patient{Name: p.Name, Age: p.Age, MedicalHistory: history}
	m.ID = p.ID.Hex()
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
	return m, nil
}

type appointmentDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	DoctorID        primitive.ObjectID `bson:"doctorId"`
	PatientID       primitive.ObjectID `bson:"patientId"`
	AppointmentDate time.Time          `bson:"appointmentDate"`
	Status          string             `bson:"status"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

// historyJSON re-encodes a decoded BSON value as JSON.
func historyJSON(v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(plain(v))
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

// historyValue decodes stored JSON into a value the BSON encoder accepts.
func historyValue(j datatypes.JSON) (interface{}, error) {
	if len(j) == 0 {
		return nil, nil
	}
	var v interface{}
	if err := json.Unmarshal(j, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// plain turns ordered BSON documents into maps so they encode as JSON
// objects rather than key/value pair lists.
func plain(v interface{}) interface{} {
	switch t := v.(type) {
	case primitive.D:
		m := make(map[string]interface{}, len(t))
		for _, e := range t {
			m[e.Key] = plain(e.Value)
		}
		return m
	case primitive.M:
		m := make(map[string]interface{}, len(t))
		for k, e := range t {
			m[k] = plain(e)
		}
		return m
	case primitive.A:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = plain(e)
		}
		return out
	}
	return v
}
