package notify

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
	"github.com/carelinkhq/telemed-scheduler/internal/models"
)

// GormNotifier is the default in-process notifier: it persists notification
// rows for the delivery service to pick up.
type GormNotifier struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormNotifier {
	return &GormNotifier{db: db}
}

func (n *GormNotifier) Notify(ctx context.Context, ev domain.NotificationEvent) error {
	row := models.Notification{
		RecipientID:   ev.RecipientID,
		ActorID:       ev.ActorID,
		Kind:          string(ev.Kind),
		AppointmentID: ev.AppointmentID,
		Detail:        ev.Detail,
	}
	return n.db.WithContext(ctx).Create(&row).Error
}
