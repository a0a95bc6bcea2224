package appointment

import (
	"context"
	"time"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	PatientID  string
	ProviderID string

	DateTime string // RFC3339 instant
	Reason   string

	ShareMedicalRecords bool
	IsVideoCall         bool
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo   domain.Repository
	clock  domain.Clock
	events EventSink
}

func NewBookAppointment(
	repo domain.Repository,
	clock domain.Clock,
	events EventSink,
) *BookAppointment {
	return &BookAppointment{
		repo:   repo,
		clock:  clock,
		events: events,
	}
}

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	patient, err := uc.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		return nil, apperr.NotFound("patient_not_found", "Patient not found.")
	}

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, apperr.NotFound("provider_not_found", "Provider not found.")
	}

	at, err := time.Parse(time.RFC3339, in.DateTime)
	if err != nil {
		return nil, apperr.Validation("invalid_date_time", "Appointment time must be an RFC3339 instant.")
	}

	if !at.After(uc.clock.Now()) {
		return nil, apperr.Validation("date_not_in_future", "Appointment time must be in the future.")
	}

	if in.IsVideoCall && !provider.HasSpecialization(models.SpecPsychiatry) {
		return nil, apperr.Validation("video_call_unavailable", "Video calls require a psychiatry provider.")
	}

	ap := &models.Appointment{
		PatientID:           patient.ID,
		ProviderID:          provider.ID,
		DateTime:            at.UTC(),
		Status:              string(domain.InitialStatus()),
		Type:                string(domain.TypeConsultation),
		Reason:              in.Reason,
		IsVideoCall:         in.IsVideoCall,
		ShareMedicalRecords: in.ShareMedicalRecords,
	}

	duration := time.Duration(provider.DurationMinutes()) * time.Minute

	// transactional locked conflict check; a losing race surfaces as a
	// retryable time_conflict validation error
	if err := uc.repo.CreateAppointmentExclusive(ctx, ap, duration); err != nil {
		return nil, err
	}

	uc.events.DispatchAll([]domain.Event{
		domain.NotificationEvent{
			RecipientID:   provider.ID,
			ActorID:       patient.ID,
			Kind:          domain.NotifyRequested,
			AppointmentID: ap.ID,
			Detail:        in.Reason,
		},
	})

	return ap, nil
}
