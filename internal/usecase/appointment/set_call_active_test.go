package appointment

import (
	"context"
	"testing"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
)

func TestSetCallActive_StartAndEnd(t *testing.T) {
	ap := storedAppointment("confirmed")
	ap.IsVideoCall = true
	repo, updated := statusRepo(ap)
	uc := NewSetCallActive(repo)

	got, err := uc.Execute(context.Background(), SetCallActiveInput{
		AppointmentID: "appointment-1",
		CallerID:      "provider-1",
		Active:        true,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !got.IsCallActive || !*updated {
		t.Fatalf("call_active = %v updated = %v", got.IsCallActive, *updated)
	}

	got, err = uc.Execute(context.Background(), SetCallActiveInput{
		AppointmentID: "appointment-1",
		CallerID:      "provider-1",
		Active:        false,
	})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if got.IsCallActive {
		t.Fatalf("call still active")
	}
}

func TestSetCallActive_NonVideoAppointment(t *testing.T) {
	ap := storedAppointment("confirmed")
	repo, updated := statusRepo(ap)
	uc := NewSetCallActive(repo)

	_, err := uc.Execute(context.Background(), SetCallActiveInput{
		AppointmentID: "appointment-1",
		CallerID:      "provider-1",
		Active:        true,
	})
	if !apperr.IsCode(err, "not_video_call") {
		t.Fatalf("err = %v, want not_video_call", err)
	}
	if *updated {
		t.Fatalf("persisted on rejected call toggle")
	}
}

func TestSetCallActive_RequiresConfirmedToStart(t *testing.T) {
	ap := storedAppointment("pending")
	ap.IsVideoCall = true
	repo, _ := statusRepo(ap)
	uc := NewSetCallActive(repo)

	_, err := uc.Execute(context.Background(), SetCallActiveInput{
		AppointmentID: "appointment-1",
		CallerID:      "provider-1",
		Active:        true,
	})
	if !apperr.IsKind(err, apperr.KindInvalidState) {
		t.Fatalf("err = %v, want invalid state", err)
	}
}
