package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/carelinkhq/telemed-scheduler/internal/config"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

func NewDB(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.User{},
		&models.DayAvailability{},
		&models.BlockedTimeSlot{},
		&models.Appointment{},
		&models.Notification{},
	); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// AutoMigrate cannot express the status predicate, so the booking
	// exclusivity index is created directly. It backs the duplicate-key
	// mapping in the appointment repository.
	if err := db.Exec(bookingExclusivityIndex).Error; err != nil {
		log.Fatal("failed to create booking exclusivity index", zap.Error(err))
	}

	return db
}

// bookingExclusivityIndex guarantees at most one active appointment per
// provider and start instant, even when two inserts race past the locked
// overlap count. Cancelled and completed rows stay rebookable.
const bookingExclusivityIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_provider_active_slot
ON appointments (provider_id, date_time)
WHERE status IN ('pending', 'confirmed', 'rescheduled')`
