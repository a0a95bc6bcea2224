package appointment

import (
	"context"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

const (
	RescheduleActionConfirm = "confirm"
	RescheduleActionCancel  = "cancel"
)

type RespondToRescheduleInput struct {
	AppointmentID string
	CallerID      string
	Action        string // confirm | cancel
}

// ======================================================
// USE CASE
// ======================================================

type RespondToReschedule struct {
	repo   domain.Repository
	events EventSink
}

func NewRespondToReschedule(repo domain.Repository, events EventSink) *RespondToReschedule {
	return &RespondToReschedule{repo: repo, events: events}
}

func (uc *RespondToReschedule) Execute(
	ctx context.Context,
	in RespondToRescheduleInput,
) (*models.Appointment, error) {

	if in.Action != RescheduleActionConfirm && in.Action != RescheduleActionCancel {
		return nil, apperr.Validation("invalid_action", "Action must be confirm or cancel.")
	}

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, apperr.NotFound("appointment_not_found", "Appointment not found.")
	}

	events, err := domain.RespondToReschedule(ap, in.CallerID, in.Action == RescheduleActionConfirm)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.DispatchAll(events)

	return ap, nil
}
