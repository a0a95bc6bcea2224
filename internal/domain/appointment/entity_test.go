package appointment

import (
	"testing"
	"time"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

func pendingAppointment() *models.Appointment {
	ap := &models.Appointment{
		PatientID:  "patient-1",
		ProviderID: "provider-1",
		DateTime:   time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC),
		Status:     string(StatusPending),
		Type:       string(TypeConsultation),
	}
	ap.ID = "appointment-1"
	return ap
}

func TestConfirm_ProducesChatAndNotification(t *testing.T) {
	ap := pendingAppointment()

	events, err := Confirm(ap, "provider-1")
	if err != nil {
		t.Fatalf("Confirm error: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status = %q, want %q", ap.Status, StatusConfirmed)
	}
	if len(events) != 2 {
		t.Fatalf("events = %d, want 2", len(events))
	}

	chat, ok := events[0].(ChatProvisionEvent)
	if !ok {
		t.Fatalf("events[0] = %T, want ChatProvisionEvent", events[0])
	}
	if chat.PatientID != "patient-1" || chat.ProviderID != "provider-1" {
		t.Fatalf("chat event parties = %q/%q", chat.PatientID, chat.ProviderID)
	}

	note, ok := events[1].(NotificationEvent)
	if !ok {
		t.Fatalf("events[1] = %T, want NotificationEvent", events[1])
	}
	if note.Kind != NotifyConfirmed || note.RecipientID != "patient-1" {
		t.Fatalf("notification = %+v, want confirmed to patient", note)
	}
}

func TestConfirm_PatientRejected(t *testing.T) {
	ap := pendingAppointment()

	_, err := Confirm(ap, "patient-1")
	if !apperr.IsKind(err, apperr.KindAuthorization) {
		t.Fatalf("err = %v, want authorization error", err)
	}
	if ap.Status != string(StatusPending) {
		t.Fatalf("status mutated on rejected call: %q", ap.Status)
	}
}

func TestConfirm_InvalidFromCancelled(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusCancelled)

	_, err := Confirm(ap, "provider-1")
	if !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Fatalf("err = %v, want invalid state error", err)
	}
}

func TestCancel_AllowedFromActiveStatuses(t *testing.T) {
	for _, status := range []Status{StatusPending, StatusConfirmed, StatusRescheduled} {
		ap := pendingAppointment()
		ap.Status = string(status)

		events, err := Cancel(ap, "provider-1")
		if err != nil {
			t.Fatalf("Cancel from %s error: %v", status, err)
		}
		if ap.Status != string(StatusCancelled) {
			t.Fatalf("status = %q, want cancelled", ap.Status)
		}
		if len(events) != 1 {
			t.Fatalf("events = %d, want 1", len(events))
		}
		note := events[0].(NotificationEvent)
		if note.Kind != NotifyCancelled || note.RecipientID != "patient-1" {
			t.Fatalf("notification = %+v, want cancelled to patient", note)
		}
	}
}

func TestCancel_InvalidFromCompleted(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusCompleted)

	_, err := Cancel(ap, "provider-1")
	if !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Fatalf("err = %v, want invalid state error", err)
	}
}

func TestReschedule_MovesTimeAndResetsReminder(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("LoadLocation error: %v", err)
	}

	ap := pendingAppointment()
	ap.Status = string(StatusConfirmed)
	ap.Reminder24hSent = true

	newAt := time.Date(2026, 3, 12, 9, 30, 0, 0, loc)

	events, err := Reschedule(ap, "provider-1", newAt)
	if err != nil {
		t.Fatalf("Reschedule error: %v", err)
	}
	if ap.Status != string(StatusRescheduled) {
		t.Fatalf("status = %q, want rescheduled", ap.Status)
	}
	if !ap.DateTime.Equal(newAt) || ap.DateTime.Location() != time.UTC {
		t.Fatalf("date_time = %v, want %v stored as UTC", ap.DateTime, newAt)
	}
	if ap.Reminder24hSent {
		t.Fatalf("reminder flag not reset on reschedule")
	}

	note := events[0].(NotificationEvent)
	if note.Kind != NotifyRescheduled || note.RecipientID != "patient-1" {
		t.Fatalf("notification = %+v, want rescheduled to patient", note)
	}
	if note.Detail != ap.DateTime.Format(time.RFC3339) {
		t.Fatalf("detail = %q, want new time", note.Detail)
	}
}

func TestRespondToReschedule_Accept(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusRescheduled)

	events, err := RespondToReschedule(ap, "patient-1", true)
	if err != nil {
		t.Fatalf("RespondToReschedule error: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("status = %q, want confirmed", ap.Status)
	}
	note := events[0].(NotificationEvent)
	if note.Kind != NotifyRescheduleAccepted || note.RecipientID != "provider-1" {
		t.Fatalf("notification = %+v, want acceptance to provider", note)
	}
}

func TestRespondToReschedule_Reject(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusRescheduled)

	events, err := RespondToReschedule(ap, "patient-1", false)
	if err != nil {
		t.Fatalf("RespondToReschedule error: %v", err)
	}
	if ap.Status != string(StatusCancelled) {
		t.Fatalf("status = %q, want cancelled", ap.Status)
	}
	note := events[0].(NotificationEvent)
	if note.Kind != NotifyRescheduleRejected || note.RecipientID != "provider-1" {
		t.Fatalf("notification = %+v, want rejection to provider", note)
	}
	for _, ev := range events {
		if _, ok := ev.(ChatProvisionEvent); ok {
			t.Fatalf("rejection must not provision a chat channel")
		}
	}
}

func TestRespondToReschedule_ProviderRejected(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusRescheduled)

	_, err := RespondToReschedule(ap, "provider-1", true)
	if !apperr.IsKind(err, apperr.KindAuthorization) {
		t.Fatalf("err = %v, want authorization error", err)
	}
}

func TestRespondToReschedule_OnlyFromRescheduled(t *testing.T) {
	ap := pendingAppointment()

	_, err := RespondToReschedule(ap, "patient-1", true)
	if !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Fatalf("err = %v, want invalid state error", err)
	}
}

func TestComplete_AppendsNotes(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusConfirmed)
	ap.Notes = "intake summary"
	ap.IsCallActive = true

	if err := Complete(ap, "provider-1", "prescribed rest"); err != nil {
		t.Fatalf("Complete error: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("status = %q, want completed", ap.Status)
	}
	if ap.Notes != "intake summary\n\nprescribed rest" {
		t.Fatalf("notes = %q, earlier notes must be preserved", ap.Notes)
	}
	if ap.IsCallActive {
		t.Fatalf("completion must end an active call")
	}
}

func TestComplete_OnlyFromConfirmed(t *testing.T) {
	ap := pendingAppointment()

	err := Complete(ap, "provider-1", "notes")
	if !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Fatalf("err = %v, want invalid state error", err)
	}
	if ap.Status != string(StatusPending) || ap.Notes != "" {
		t.Fatalf("appointment mutated on failed completion: status=%q notes=%q", ap.Status, ap.Notes)
	}
}

func TestSetCallActive_Guards(t *testing.T) {
	ap := pendingAppointment()
	ap.Status = string(StatusConfirmed)

	if err := SetCallActive(ap, "provider-1", true); !apperr.IsCode(err, "not_video_call") {
		t.Fatalf("err = %v, want not_video_call", err)
	}

	ap.IsVideoCall = true
	ap.Status = string(StatusPending)
	if err := SetCallActive(ap, "provider-1", true); !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Fatalf("err = %v, want invalid state before confirmation", err)
	}

	ap.Status = string(StatusConfirmed)
	if err := SetCallActive(ap, "provider-1", true); err != nil {
		t.Fatalf("SetCallActive error: %v", err)
	}
	if !ap.IsCallActive {
		t.Fatalf("call not marked active")
	}

	// ending the call is allowed regardless of status
	ap.Status = string(StatusCancelled)
	if err := SetCallActive(ap, "provider-1", false); err != nil {
		t.Fatalf("SetCallActive(false) error: %v", err)
	}
	if ap.IsCallActive {
		t.Fatalf("call not marked inactive")
	}
}
