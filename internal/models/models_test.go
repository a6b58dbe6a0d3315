package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, raw := range []string{"Scheduled", "Completed", "Cancelled"} {
		s, err := ParseAppointmentStatus(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(s))
	}

	for _, raw := range []string{"", "cancelled", "Pending", "SCHEDULED"} {
		_, err := ParseAppointmentStatus(raw)
		assert.Error(t, err, raw)
	}
}

func TestIsWeekday(t *testing.T) {
	assert.True(t, IsWeekday("Monday"))
	assert.True(t, IsWeekday("Sunday"))
	assert.False(t, IsWeekday("monday"))
	assert.False(t, IsWeekday("Funday"))
}

func TestDoctorProfile(t *testing.T) {
	d := NewDoctor("Dr. Grey", "Surgery", []string{"Monday", "Wednesday"})
	d.ID = "d-1"

	p := d.Profile()
	assert.Equal(t, "d-1", p.ID)
	assert.Equal(t, []string{"Monday", "Wednesday"}, p.Availability)

	var out map[string]interface{}
	b, err := json.Marshal(p)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, []interface{}{"Monday", "Wednesday"}, out["availability"])
}

func TestDoctorDays_Empty(t *testing.T) {
	d := NewDoctor("Dr. House", "Diagnostics", nil)
	assert.NotNil(t, d.Days())
	assert.Empty(t, d.Days())
}

func TestPatientBeforeSave(t *testing.T) {
	p := Patient{Name: "Ann"}
	require.NoError(t, p.BeforeSave(nil))
	assert.Equal(t, "null", string(p.MedicalHistory))

	p.MedicalHistory = []byte(`{"allergies":["penicillin"]}`)
	require.NoError(t, p.BeforeSave(nil))
	assert.JSONEq(t, `{"allergies":["penicillin"]}`, string(p.MedicalHistory))
}

func TestPatientVisit_NullVisitFields(t *testing.T) {
	v := PatientVisit{PatientID: "p-1", Name: "Ann", MedicalHistory: []byte(`null`)}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"patientId": "p-1",
		"name": "Ann",
		"medicalHistory": null,
		"appointmentDate": null,
		"status": null,
		"doctorName": null,
		"specialty": null
	}`, string(b))
}
