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

type SetCallActiveInput struct {
	AppointmentID string
	CallerID      string
	Active        bool
}

// ======================================================
// USE CASE
// ======================================================

type SetCallActive struct {
	repo domain.Repository
}

func NewSetCallActive(repo domain.Repository) *SetCallActive {
	return &SetCallActive{repo: repo}
}

func (uc *SetCallActive) Execute(
	ctx context.Context,
	in SetCallActiveInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, apperr.NotFound("appointment_not_found", "Appointment not found.")
	}

	if err := domain.SetCallActive(ap, in.CallerID, in.Active); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	return ap, nil
}
