package appointment

// Domain events produced by committed transitions. They are applied by the
// side-effect dispatcher strictly after the state change is durable, so a
// failed side effect can never roll back a transition.

type NotificationKind string

const (
	NotifyRequested          NotificationKind = "requested"
	NotifyConfirmed          NotificationKind = "confirmed"
	NotifyCancelled          NotificationKind = "cancelled"
	NotifyRescheduled        NotificationKind = "rescheduled"
	NotifyRescheduleAccepted NotificationKind = "reschedule_accepted"
	NotifyRescheduleRejected NotificationKind = "reschedule_rejected"
)

type Event interface {
	isEvent()
}

type NotificationEvent struct {
	RecipientID   string
	ActorID       string
	Kind          NotificationKind
	AppointmentID string
	Detail        string
}

func (NotificationEvent) isEvent() {}

// ChatProvisionEvent asks the chat service to ensure a channel exists for
// the patient/provider pair. Provisioning is idempotent.
type ChatProvisionEvent struct {
	PatientID     string
	ProviderID    string
	AppointmentID string
}

func (ChatProvisionEvent) isEvent() {}
