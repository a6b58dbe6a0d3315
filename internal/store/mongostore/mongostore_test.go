package mongostore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.mongodb.org/mongo-driver/mongo/options"

	"hospital-api-server/internal/models"
	"hospital-api-server/internal/store"
)

func newMock(t *testing.T) *mtest.T {
	opts := mtest.NewOptions().
		ClientType(mtest.Mock).
		ClientOptions(options.Client().SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true}))
	return mtest.New(t, opts)
}

func TestDoctorWorkload_Decodes(t *testing.T) {
	mt := newMock(t)

	mt.Run("rows", func(mt *mtest.T) {
		s := New(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.appointments", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "doctorName", Value: "Dr. Grey"},
				{Key: "specialty", Value: "Surgery"},
				{Key: "totalAppointments", Value: int32(1)},
			}))

		rows, err := s.DoctorWorkload(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []models.DoctorWorkload{
			{DoctorID: id.Hex(), DoctorName: "Dr. Grey", Specialty: "Surgery", TotalAppointments: 1},
		}, rows)
	})

	mt.Run("empty", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.appointments", mtest.FirstBatch))

		rows, err := s.DoctorWorkload(context.Background())
		require.NoError(mt, err)
		assert.Empty(mt, rows)
	})

	mt.Run("command error", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad pipeline",
		}))

		_, err := s.DoctorWorkload(context.Background())
		assert.Error(mt, err)
	})
}

func TestPatientHistory_Decodes(t *testing.T) {
	mt := newMock(t)

	mt.Run("no visits", func(mt *mtest.T) {
		s := New(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.patients", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Ann"},
				{Key: "medicalHistory", Value: bson.D{{Key: "conditions", Value: bson.A{"asthma"}}}},
			}))

		rows, err := s.PatientHistory(context.Background(), id.Hex())
		require.NoError(mt, err)
		require.Len(mt, rows, 1)
		assert.Equal(mt, id.Hex(), rows[0].PatientID)
		assert.JSONEq(mt, `{"conditions":["asthma"]}`, string(rows[0].MedicalHistory))
		assert.Nil(mt, rows[0].AppointmentDate)
		assert.Nil(mt, rows[0].Status)
		assert.Nil(mt, rows[0].DoctorName)
	})

	mt.Run("visit", func(mt *mtest.T) {
		s := New(mt.DB)
		id := primitive.NewObjectID()
		when := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.patients", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Ann"},
				{Key: "appointmentDate", Value: primitive.NewDateTimeFromTime(when)},
				{Key: "status", Value: "Scheduled"},
				{Key: "doctorName", Value: "Dr. Grey"},
				{Key: "specialty", Value: "Surgery"},
			}))

		rows, err := s.PatientHistory(context.Background(), id.Hex())
		require.NoError(mt, err)
		require.Len(mt, rows, 1)
		require.NotNil(mt, rows[0].AppointmentDate)
		assert.True(mt, rows[0].AppointmentDate.Equal(when))
		assert.Equal(mt, "Scheduled", *rows[0].Status)
		assert.Equal(mt, "null", string(rows[0].MedicalHistory))
	})
}

func TestPatientHistory_InvalidID(t *testing.T) {
	s := &Store{}
	_, err := s.PatientHistory(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)
}

func TestMonthlyCounts_Decodes(t *testing.T) {
	mt := newMock(t)

	mt.Run("rows", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.appointments", mtest.FirstBatch,
			bson.D{{Key: "year", Value: int32(2023)}, {Key: "month", Value: int32(12)}, {Key: "count", Value: int32(1)}},
			bson.D{{Key: "year", Value: int32(2024)}, {Key: "month", Value: int32(3)}, {Key: "count", Value: int32(4)}},
		))

		rows, err := s.MonthlyCounts(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []models.MonthCount{
			{Year: 2023, Month: 12, Count: 1},
			{Year: 2024, Month: 3, Count: 4},
		}, rows)
	})
}

func TestCreateAppointment(t *testing.T) {
	mt := newMock(t)

	mt.Run("inserts", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		a := models.Appointment{
			DoctorID:        primitive.NewObjectID().Hex(),
			PatientID:       primitive.NewObjectID().Hex(),
			AppointmentDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Status:          models.StatusScheduled,
		}
		require.NoError(mt, s.CreateAppointment(context.Background(), &a))
		assert.Len(mt, a.ID, 24)
	})

	mt.Run("invalid reference", func(mt *mtest.T) {
		s := New(mt.DB)
		a := models.Appointment{DoctorID: "D1", PatientID: primitive.NewObjectID().Hex()}
		err := s.CreateAppointment(context.Background(), &a)
		assert.ErrorIs(mt, err, store.ErrInvalidID)
	})
}

func TestGetDoctor(t *testing.T) {
	mt := newMock(t)

	mt.Run("found", func(mt *mtest.T) {
		s := New(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.doctors", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: id},
				{Key: "name", Value: "Dr. Grey"},
				{Key: "specialty", Value: "Surgery"},
				{Key: "availability", Value: bson.A{"Monday", "Wednesday"}},
			}))

		d, err := s.GetDoctor(context.Background(), id.Hex())
		require.NoError(mt, err)
		assert.Equal(mt, id.Hex(), d.ID)
		assert.Equal(mt, []string{"Monday", "Wednesday"}, d.Days())
	})

	mt.Run("missing", func(mt *mtest.T) {
		s := New(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "hospital.doctors", mtest.FirstBatch))

		_, err := s.GetDoctor(context.Background(), primitive.NewObjectID().Hex())
		assert.ErrorIs(mt, err, store.ErrNotFound)
	})
}
