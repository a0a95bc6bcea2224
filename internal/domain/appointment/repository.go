package appointment

import (
	"context"
	"time"

	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

type Repository interface {
	// -------- Parties --------
	GetPatientByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetProviderByID(
		ctx context.Context,
		id string,
	) (*models.User, error)

	// -------- Availability --------
	GetDayAvailability(
		ctx context.Context,
		providerID string,
		weekday string,
	) (*models.DayAvailability, error) // nil when no record exists

	ListBlockedSlots(
		ctx context.Context,
		providerID string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.BlockedTimeSlot, error)

	// ListActiveAppointmentsForDay returns pending, confirmed and
	// rescheduled appointments starting inside [dayStart, dayEnd),
	// ordered by time.
	ListActiveAppointmentsForDay(
		ctx context.Context,
		providerID string,
		dayStart time.Time,
		dayEnd time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointmentExclusive inserts the appointment inside a
	// transaction that locks and re-checks overlapping active bookings
	// for the provider. A conflict aborts the insert.
	CreateAppointmentExclusive(
		ctx context.Context,
		ap *models.Appointment,
		duration time.Duration,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveCompletion persists a completed appointment and, when followUp
	// is non-nil, the spawned follow-up in the same transaction.
	SaveCompletion(
		ctx context.Context,
		ap *models.Appointment,
		followUp *models.Appointment,
	) error

	// -------- Listing --------
	ListAppointmentsForUser(
		ctx context.Context,
		userID string,
		role models.Role,
	) ([]models.Appointment, error)
}
