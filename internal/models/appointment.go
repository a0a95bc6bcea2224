package models

import "time"

type Appointment struct {
	BaseModel

	PatientID  string `gorm:"size:36;index" json:"patient_id"`
	ProviderID string `gorm:"size:36;index" json:"provider_id"`

	// Absolute instant, stored in UTC. Wall-clock math happens in the
	// provider's clinic timezone.
	DateTime time.Time `gorm:"index" json:"date_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Type   string `gorm:"size:20;default:'consultation'" json:"type"`

	Reason string `gorm:"size:255" json:"reason"`
	Notes  string `gorm:"type:text" json:"notes"`

	IsVideoCall  bool `gorm:"default:false" json:"is_video_call"`
	IsCallActive bool `gorm:"default:false" json:"is_call_active"`

	// Gates medical-record visibility for the provider; consumed by the
	// records service, never interpreted here.
	ShareMedicalRecords bool `gorm:"default:false" json:"share_medical_records"`

	Reminder24hSent bool `gorm:"default:false" json:"reminder_24h_sent"`
}
