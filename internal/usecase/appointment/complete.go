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

type CompleteAppointmentInput struct {
	AppointmentID string
	CallerID      string

	Notes            string
	FollowUpDateTime string // optional RFC3339 instant
}

// ======================================================
// USE CASE
// ======================================================

// CompleteAppointment closes out a confirmed visit. A future follow-up
// time spawns one new pending follow-up appointment for the same pair in
// the same transaction. The follow-up "requested" notification goes to the
// provider, matching the behavior the mobile clients were built against.
type CompleteAppointment struct {
	repo   domain.Repository
	clock  domain.Clock
	events EventSink
}

func NewCompleteAppointment(
	repo domain.Repository,
	clock domain.Clock,
	events EventSink,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		clock:  clock,
		events: events,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in CompleteAppointmentInput,
) (*models.Appointment, *models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, nil, apperr.NotFound("appointment_not_found", "Appointment not found.")
	}

	var followUpAt time.Time
	if strings.TrimSpace(in.FollowUpDateTime) != "" {
		followUpAt, err = time.Parse(time.RFC3339, in.FollowUpDateTime)
		if err != nil {
			return nil, nil, apperr.Validation("invalid_follow_up_time", "Follow-up time must be an RFC3339 instant.")
		}
	}

	if err := domain.Complete(ap, in.CallerID, in.Notes); err != nil {
		return nil, nil, err
	}

	var followUp *models.Appointment
	if !followUpAt.IsZero() && followUpAt.After(uc.clock.Now()) {
		followUp = &models.Appointment{
			PatientID:           ap.PatientID,
			ProviderID:          ap.ProviderID,
			DateTime:            followUpAt.UTC(),
			Status:              string(domain.InitialStatus()),
			Type:                string(domain.TypeFollowUp),
			Reason:              "Follow-up visit",
			ShareMedicalRecords: ap.ShareMedicalRecords,
		}
	}

	if err := uc.repo.SaveCompletion(ctx, ap, followUp); err != nil {
		return nil, nil, err
	}

	if followUp != nil {
		uc.events.DispatchAll([]domain.Event{
			domain.NotificationEvent{
				RecipientID:   ap.ProviderID,
				ActorID:       ap.ProviderID,
				Kind:          domain.NotifyRequested,
				AppointmentID: followUp.ID,
				Detail:        followUp.DateTime.Format(time.RFC3339),
			},
		})
	}

	return ap, followUp, nil
}
