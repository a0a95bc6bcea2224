package appointment

import (
	"context"
	"strings"
	"time"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SetStatusInput struct {
	AppointmentID string
	CallerID      string
	Status        string
	NewDateTime   string // required when Status is rescheduled
	Notes         string // optional, appended to the record
}

// ======================================================
// USE CASE
// ======================================================

// SetStatus applies the provider-driven transitions: confirm, cancel and
// reschedule. Completion goes through CompleteAppointment.
type SetStatus struct {
	repo   domain.Repository
	events EventSink
}

func NewSetStatus(repo domain.Repository, events EventSink) *SetStatus {
	return &SetStatus{repo: repo, events: events}
}

func (uc *SetStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, apperr.NotFound("appointment_not_found", "Appointment not found.")
	}

	var events []domain.Event

	switch domain.Status(in.Status) {

	case domain.StatusConfirmed:
		events, err = domain.Confirm(ap, in.CallerID)

	case domain.StatusCancelled:
		events, err = domain.Cancel(ap, in.CallerID)

	case domain.StatusRescheduled:
		if strings.TrimSpace(in.NewDateTime) == "" {
			return nil, apperr.Validation("missing_new_time", "Rescheduling requires a new appointment time.")
		}
		newAt, parseErr := time.Parse(time.RFC3339, in.NewDateTime)
		if parseErr != nil {
			return nil, apperr.Validation("invalid_date_time", "New appointment time must be an RFC3339 instant.")
		}
		events, err = domain.Reschedule(ap, in.CallerID, newAt)

	case domain.StatusCompleted, domain.StatusPending:
		return nil, apperr.InvalidState("invalid_transition", "Status cannot be set directly to "+in.Status+".")

	default:
		return nil, apperr.Validation("invalid_status", "Unknown status "+in.Status+".")
	}

	if err != nil {
		return nil, err
	}

	if notes := strings.TrimSpace(in.Notes); notes != "" {
		if ap.Notes != "" {
			ap.Notes += "\n\n"
		}
		ap.Notes += notes
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.events.DispatchAll(events)

	return ap, nil
}
