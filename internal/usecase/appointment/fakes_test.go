package appointment

import (
	"context"
	"time"

	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

type fakeRepo struct {
	getPatientFn         func(ctx context.Context, id string) (*models.User, error)
	getProviderFn        func(ctx context.Context, id string) (*models.User, error)
	getDayAvailabilityFn func(ctx context.Context, providerID, weekday string) (*models.DayAvailability, error)
	listBlockedFn        func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) ([]models.BlockedTimeSlot, error)
	listActiveFn         func(ctx context.Context, providerID string, dayStart, dayEnd time.Time) ([]models.Appointment, error)
	createExclusiveFn    func(ctx context.Context, ap *models.Appointment, duration time.Duration) error
	getAppointmentFn     func(ctx context.Context, id string) (*models.Appointment, error)
	updateFn             func(ctx context.Context, ap *models.Appointment) error
	saveCompletionFn     func(ctx context.Context, ap, followUp *models.Appointment) error
	listForUserFn        func(ctx context.Context, userID string, role models.Role) ([]models.Appointment, error)
}

func (f *fakeRepo) GetPatientByID(ctx context.Context, id string) (*models.User, error) {
	if f.getPatientFn == nil {
		panic("GetPatientByID not configured")
	}
	return f.getPatientFn(ctx, id)
}

func (f *fakeRepo) GetProviderByID(ctx context.Context, id string) (*models.User, error) {
	if f.getProviderFn == nil {
		panic("GetProviderByID not configured")
	}
	return f.getProviderFn(ctx, id)
}

func (f *fakeRepo) GetDayAvailability(ctx context.Context, providerID, weekday string) (*models.DayAvailability, error) {
	if f.getDayAvailabilityFn == nil {
		panic("GetDayAvailability not configured")
	}
	return f.getDayAvailabilityFn(ctx, providerID, weekday)
}

func (f *fakeRepo) ListBlockedSlots(ctx context.Context, providerID string, dayStart, dayEnd time.Time) ([]models.BlockedTimeSlot, error) {
	if f.listBlockedFn == nil {
		panic("ListBlockedSlots not configured")
	}
	return f.listBlockedFn(ctx, providerID, dayStart, dayEnd)
}

func (f *fakeRepo) ListActiveAppointmentsForDay(ctx context.Context, providerID string, dayStart, dayEnd time.Time) ([]models.Appointment, error) {
	if f.listActiveFn == nil {
		panic("ListActiveAppointmentsForDay not configured")
	}
	return f.listActiveFn(ctx, providerID, dayStart, dayEnd)
}

func (f *fakeRepo) CreateAppointmentExclusive(ctx context.Context, ap *models.Appointment, duration time.Duration) error {
	if f.createExclusiveFn == nil {
		panic("CreateAppointmentExclusive not configured")
	}
	return f.createExclusiveFn(ctx, ap, duration)
}

func (f *fakeRepo) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	if f.getAppointmentFn == nil {
		panic("GetAppointmentByID not configured")
	}
	return f.getAppointmentFn(ctx, id)
}

func (f *fakeRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	if f.updateFn == nil {
		panic("UpdateAppointment not configured")
	}
	return f.updateFn(ctx, ap)
}

func (f *fakeRepo) SaveCompletion(ctx context.Context, ap, followUp *models.Appointment) error {
	if f.saveCompletionFn == nil {
		panic("SaveCompletion not configured")
	}
	return f.saveCompletionFn(ctx, ap, followUp)
}

func (f *fakeRepo) ListAppointmentsForUser(ctx context.Context, userID string, role models.Role) ([]models.Appointment, error) {
	if f.listForUserFn == nil {
		panic("ListAppointmentsForUser not configured")
	}
	return f.listForUserFn(ctx, userID, role)
}

// recorderSink captures dispatched events synchronously.
type recorderSink struct {
	events []domain.Event
}

func (r *recorderSink) DispatchAll(events []domain.Event) {
	r.events = append(r.events, events...)
}

func (r *recorderSink) notifications() []domain.NotificationEvent {
	var out []domain.NotificationEvent
	for _, ev := range r.events {
		if n, ok := ev.(domain.NotificationEvent); ok {
			out = append(out, n)
		}
	}
	return out
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
