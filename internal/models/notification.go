package models

// Notification is the row written by the default in-process notifier.
// Delivery (push, email) is owned by the notification service reading
// this table.
type Notification struct {
	BaseModel

	RecipientID   string `gorm:"size:36;index" json:"recipient_id"`
	ActorID       string `gorm:"size:36" json:"actor_id"`
	Kind          string `gorm:"size:30;not null" json:"kind"`
	AppointmentID string `gorm:"size:36;index" json:"appointment_id"`
	Detail        string `gorm:"size:255" json:"detail"`
}
