package models

import "time"

// BlockedTimeSlot is a one-off unbookable range on a single calendar date,
// e.g. vacation or personal time. Date carries no time-of-day component;
// StartTime < EndTime is enforced at the API boundary.
type BlockedTimeSlot struct {
	BaseModel

	ProviderID string    `gorm:"size:36;index" json:"provider_id"`
	Date       time.Time `gorm:"index" json:"date"`
	StartTime  string    `gorm:"size:5" json:"start_time"`
	EndTime    string    `gorm:"size:5" json:"end_time"`
	Reason     string    `gorm:"size:255" json:"reason"`
}
