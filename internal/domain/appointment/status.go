package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending     Status = "pending"
	StatusConfirmed   Status = "confirmed"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
	StatusCompleted   Status = "completed"
)

func InitialStatus() Status {
	return StatusPending
}

// ===============================
// Appointment Type
// ===============================

type Type string

const (
	TypeConsultation Type = "consultation"
	TypeFollowUp     Type = "follow_up"
)

// ===============================
// Transition guards
// ===============================

func canConfirm(current Status) bool {
	return current == StatusPending
}

func canCancel(current Status) bool {
	switch current {
	case StatusPending, StatusConfirmed, StatusRescheduled:
		return true
	}
	return false
}

func canReschedule(current Status) bool {
	return current == StatusPending || current == StatusConfirmed
}

func canRespondToReschedule(current Status) bool {
	return current == StatusRescheduled
}

func canComplete(current Status) bool {
	return current == StatusConfirmed
}
