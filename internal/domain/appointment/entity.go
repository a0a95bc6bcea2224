package appointment

import (
	"time"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================
//
// Each action validates its preconditions, mutates the appointment in
// memory and returns the events the caller must dispatch after committing.
// On error nothing is mutated and no events are produced.

func Confirm(ap *models.Appointment, callerID string) ([]Event, error) {
	if callerID != ap.ProviderID {
		return nil, apperr.Authorization("not_appointment_provider", "Only the provider can confirm an appointment.")
	}
	if !canConfirm(Status(ap.Status)) {
		return nil, apperr.InvalidState("invalid_transition", "Appointment cannot be confirmed from its current status.")
	}

	ap.Status = string(StatusConfirmed)

	return []Event{
		ChatProvisionEvent{
			PatientID:     ap.PatientID,
			ProviderID:    ap.ProviderID,
			AppointmentID: ap.ID,
		},
		NotificationEvent{
			RecipientID:   ap.PatientID,
			ActorID:       ap.ProviderID,
			Kind:          NotifyConfirmed,
			AppointmentID: ap.ID,
		},
	}, nil
}

func Cancel(ap *models.Appointment, callerID string) ([]Event, error) {
	if callerID != ap.ProviderID {
		return nil, apperr.Authorization("not_appointment_provider", "Only the provider can cancel an appointment.")
	}
	if !canCancel(Status(ap.Status)) {
		return nil, apperr.InvalidState("invalid_transition", "Appointment cannot be cancelled from its current status.")
	}

	ap.Status = string(StatusCancelled)

	return []Event{
		NotificationEvent{
			RecipientID:   ap.PatientID,
			ActorID:       ap.ProviderID,
			Kind:          NotifyCancelled,
			AppointmentID: ap.ID,
		},
	}, nil
}

func Reschedule(ap *models.Appointment, callerID string, newAt time.Time) ([]Event, error) {
	if callerID != ap.ProviderID {
		return nil, apperr.Authorization("not_appointment_provider", "Only the provider can reschedule an appointment.")
	}
	if !canReschedule(Status(ap.Status)) {
		return nil, apperr.InvalidState("invalid_transition", "Appointment cannot be rescheduled from its current status.")
	}

	ap.Status = string(StatusRescheduled)
	ap.DateTime = newAt.UTC()
	ap.Reminder24hSent = false

	return []Event{
		NotificationEvent{
			RecipientID:   ap.PatientID,
			ActorID:       ap.ProviderID,
			Kind:          NotifyRescheduled,
			AppointmentID: ap.ID,
			Detail:        ap.DateTime.Format(time.RFC3339),
		},
	}, nil
}

// RespondToReschedule is the patient's answer to a provider-initiated
// reschedule: accept keeps the new time, reject cancels the appointment.
func RespondToReschedule(ap *models.Appointment, callerID string, accept bool) ([]Event, error) {
	if callerID != ap.PatientID {
		return nil, apperr.Authorization("not_appointment_patient", "Only the patient can respond to a reschedule.")
	}
	if !canRespondToReschedule(Status(ap.Status)) {
		return nil, apperr.InvalidState("invalid_transition", "Appointment is not awaiting a reschedule response.")
	}

	kind := NotifyRescheduleAccepted
	if accept {
		ap.Status = string(StatusConfirmed)
	} else {
		ap.Status = string(StatusCancelled)
		kind = NotifyRescheduleRejected
	}

	return []Event{
		NotificationEvent{
			RecipientID:   ap.ProviderID,
			ActorID:       ap.PatientID,
			Kind:          kind,
			AppointmentID: ap.ID,
		},
	}, nil
}

// Complete marks a confirmed appointment as done. Completion notes are
// appended to the record; earlier notes are never overwritten.
func Complete(ap *models.Appointment, callerID string, notes string) error {
	if callerID != ap.ProviderID {
		return apperr.Authorization("not_appointment_provider", "Only the provider can complete an appointment.")
	}
	if !canComplete(Status(ap.Status)) {
		return apperr.InvalidState("invalid_transition", "Appointment cannot be completed from its current status.")
	}

	ap.Status = string(StatusCompleted)
	ap.IsCallActive = false
	if notes != "" {
		if ap.Notes != "" {
			ap.Notes += "\n\n"
		}
		ap.Notes += notes
	}
	return nil
}

// SetCallActive toggles the live video-call flag. Starting a call requires
// a confirmed video-call appointment; ending one is always allowed.
func SetCallActive(ap *models.Appointment, callerID string, active bool) error {
	if callerID != ap.ProviderID {
		return apperr.Authorization("not_appointment_provider", "Only the provider can manage the call.")
	}
	if !ap.IsVideoCall {
		return apperr.InvalidState("not_video_call", "Appointment is not a video call.")
	}
	if active && Status(ap.Status) != StatusConfirmed {
		return apperr.InvalidState("invalid_transition", "Call can only start on a confirmed appointment.")
	}

	ap.IsCallActive = active
	return nil
}
