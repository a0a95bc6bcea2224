package models

import "strings"

// ===============================
// Roles
// ===============================

type Role string

const (
	RolePatient  Role = "patient"
	RoleProvider Role = "provider"
)

// ===============================
// Specializations
// ===============================

type Specialization string

const (
	SpecGeneralPractice Specialization = "general_practice"
	SpecPsychiatry      Specialization = "psychiatry"
	SpecCardiology      Specialization = "cardiology"
	SpecDermatology     Specialization = "dermatology"
	SpecPediatrics      Specialization = "pediatrics"
)

const DefaultAppointmentDurationMin = 30

// User is either a patient or a care provider. Provider-only scheduling
// fields stay empty for patients.
type User struct {
	BaseModel

	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Name         string `gorm:"size:100;not null" json:"name"`
	Role         Role   `gorm:"size:20;default:'patient'" json:"role"`

	// Provider scheduling profile.
	AppointmentDurationMin int    `gorm:"default:30" json:"appointment_duration_min"`
	Specializations        string `gorm:"size:255" json:"specializations"`
	// Legacy weekday-name list, comma separated. Consulted only when no
	// DayAvailability record exists for the queried weekday.
	AvailableDays string `gorm:"size:100" json:"available_days"`
	Timezone      string `gorm:"size:50" json:"timezone"`
}

// DurationMinutes returns the provider slot duration, falling back to the
// platform default when unset.
func (u *User) DurationMinutes() int {
	if u.AppointmentDurationMin <= 0 {
		return DefaultAppointmentDurationMin
	}
	return u.AppointmentDurationMin
}

func (u *User) HasSpecialization(s Specialization) bool {
	for _, part := range strings.Split(u.Specializations, ",") {
		if Specialization(strings.TrimSpace(part)) == s {
			return true
		}
	}
	return false
}

// AvailableDaySet parses the legacy weekday list into a lookup set. Empty
// input yields an empty set, meaning no legacy restriction is configured.
func (u *User) AvailableDaySet() map[string]bool {
	set := make(map[string]bool)
	for _, part := range strings.Split(u.AvailableDays, ",") {
		day := strings.TrimSpace(part)
		if day != "" {
			set[day] = true
		}
	}
	return set
}
