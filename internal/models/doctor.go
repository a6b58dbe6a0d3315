package models

import "time"

// Weekdays are the accepted availability entries, capitalised as stored.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// IsWeekday reports whether day is an exact match for one of Weekdays.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// Doctor represents a doctor and the weekdays they take appointments.
type Doctor struct {
	BaseModel
	Name      string `gorm:"size:255;not null" json:"name"`
	Specialty string `gorm:"size:100;index" json:"specialty"`

	Availability []DoctorAvailability `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"-"`
}

// DoctorAvailability is one weekday entry of a doctor's availability.
type DoctorAvailability struct {
	ID       uint   `gorm:"primaryKey"`
	DoctorID string `gorm:"size:36;not null;uniqueIndex:idx_doctor_day"`
	Day      string `gorm:"size:16;not null;index;uniqueIndex:idx_doctor_day"`
}

// DoctorProfile represents the doctor data sent in API responses.
type DoctorProfile struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Specialty    string    `json:"specialty"`
	Availability []string  `json:"availability"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewDoctor builds a Doctor with one availability row per day.
func NewDoctor(name, specialty string, days []string) Doctor {
	d := Doctor{Name: name, Specialty: specialty}
	for _, day := range days {
		d.Availability = append(d.Availability, DoctorAvailability{Day: day})
	}
	return d
}

// Days returns the availability entries in stored order.
func (d Doctor) Days() []string {
	days := make([]string, 0, len(d.Availability))
	for _, a := range d.Availability {
		days = append(days, a.Day)
	}
	return days
}

// Profile converts d into its API representation.
func (d Doctor) Profile() DoctorProfile {
	return DoctorProfile{
		ID:           d.ID,
		Name:         d.Name,
		Specialty:    d.Specialty,
		Availability: d.Days(),
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}
