package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

const pgUniqueViolation = "23505"

// isUniqueViolation recognizes a Postgres duplicate-key failure so racing
// inserts surface as a booking conflict instead of a bare driver error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// mapCreateError turns a loss against the booking exclusivity index into
// the same retryable conflict a counted overlap produces.
func mapCreateError(err error) error {
	if isUniqueViolation(err) {
		return apperr.Validation("time_conflict", "The requested time is no longer available.")
	}
	return err
}

var activeStatuses = []string{
	string(domain.StatusPending),
	string(domain.StatusConfirmed),
	string(domain.StatusRescheduled),
}

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Parties
// --------------------------------------------------

func (r *AppointmentGormRepository) getUserByRole(
	ctx context.Context,
	id string,
	role models.Role,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, role).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *AppointmentGormRepository) GetPatientByID(
	ctx context.Context,
	id string,
) (*models.User, error) {
	return r.getUserByRole(ctx, id, models.RolePatient)
}

func (r *AppointmentGormRepository) GetProviderByID(
	ctx context.Context,
	id string,
) (*models.User, error) {
	return r.getUserByRole(ctx, id, models.RoleProvider)
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDayAvailability(
	ctx context.Context,
	providerID string,
	weekday string,
) (*models.DayAvailability, error) {

	var da models.DayAvailability
	err := r.db.WithContext(ctx).
		Where("provider_id = ? AND day_of_week = ?", providerID, weekday).
		First(&da).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &da, nil
}

func (r *AppointmentGormRepository) ListBlockedSlots(
	ctx context.Context,
	providerID string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.BlockedTimeSlot, error) {

	var blocks []models.BlockedTimeSlot
	if err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND date >= ? AND date < ?",
			providerID, dayStart, dayEnd,
		).
		Order("start_time ASC").
		Find(&blocks).Error; err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *AppointmentGormRepository) ListActiveAppointmentsForDay(
	ctx context.Context,
	providerID string,
	dayStart time.Time,
	dayEnd time.Time,
) ([]models.Appointment, error) {

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"provider_id = ? AND status IN ? AND date_time >= ? AND date_time < ?",
			providerID, activeStatuses, dayStart, dayEnd,
		).
		Order("date_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointmentExclusive(
	ctx context.Context,
	ap *models.Appointment,
	duration time.Duration,
) error {

	start := ap.DateTime
	end := start.Add(duration)
	// an active booking [t, t+duration) overlaps [start, end) when
	// t < end AND t > start-duration
	lowerBound := start.Add(-duration)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"provider_id = ? AND status IN ? AND date_time < ? AND date_time > ?",
				ap.ProviderID, activeStatuses, end, lowerBound,
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return apperr.Validation("time_conflict", "The requested time is no longer available.")
		}

		if err := tx.Create(ap).Error; err != nil {
			return mapCreateError(err)
		}
		return nil
	})
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) SaveCompletion(
	ctx context.Context,
	ap *models.Appointment,
	followUp *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(ap).Error; err != nil {
			return err
		}
		if followUp != nil {
			if err := tx.Create(followUp).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// Listing
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForUser(
	ctx context.Context,
	userID string,
	role models.Role,
) ([]models.Appointment, error) {

	column := "patient_id = ?"
	if role == models.RoleProvider {
		column = "provider_id = ?"
	}

	var aps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(column, userID).
		Order("date_time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
