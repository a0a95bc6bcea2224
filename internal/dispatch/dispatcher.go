package dispatch

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
)

// Notifier delivers a single notification. Implementations must be safe for
// concurrent use by the worker goroutine.
type Notifier interface {
	Notify(ctx context.Context, ev domain.NotificationEvent) error
}

// ChatProvisioner ensures a chat channel exists for a patient/provider pair.
// It must be idempotent: repeated calls return the existing channel.
type ChatProvisioner interface {
	EnsureChannel(ctx context.Context, patientID, providerID, appointmentID string) (string, error)
}

const applyTimeout = 5 * time.Second

// Dispatcher applies domain events after the owning state transition has
// committed. Side effects are best effort: failures are logged and never
// fed back into the caller, and a full queue drops events rather than
// blocking the API.
type Dispatcher struct {
	notifier Notifier
	chat     ChatProvisioner
	queue    chan domain.Event
	done     chan struct{}
	log      *zap.Logger
}

func New(notifier Notifier, chat ChatProvisioner, log *zap.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 100
	}
	d := &Dispatcher{
		notifier: notifier,
		chat:     chat,
		queue:    make(chan domain.Event, queueSize),
		done:     make(chan struct{}),
		log:      log,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		d.apply(ev)
	}
}

// Close stops intake and waits until every queued event has been applied.
// No Dispatch call may follow Close.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) apply(ev domain.Event) {
	ctx, cancel := context.WithTimeout(context.Background(), applyTimeout)
	defer cancel()

	switch e := ev.(type) {
	case domain.NotificationEvent:
		if err := d.notifier.Notify(ctx, e); err != nil {
			d.log.Error("notification dispatch failed",
				zap.String("recipient_id", e.RecipientID),
				zap.String("appointment_id", e.AppointmentID),
				zap.String("kind", string(e.Kind)),
				zap.Error(err),
			)
		}
	case domain.ChatProvisionEvent:
		if _, err := d.chat.EnsureChannel(ctx, e.PatientID, e.ProviderID, e.AppointmentID); err != nil {
			d.log.Error("chat provisioning failed",
				zap.String("patient_id", e.PatientID),
				zap.String("provider_id", e.ProviderID),
				zap.String("appointment_id", e.AppointmentID),
				zap.Error(err),
			)
		}
	default:
		d.log.Warn("unknown event type dropped")
	}
}

func (d *Dispatcher) Dispatch(ev domain.Event) {
	select {
	case d.queue <- ev:
	default:
		// queue full: drop the side effect, never break the API
		d.log.Warn("dispatch queue full, dropping event")
	}
}

func (d *Dispatcher) DispatchAll(events []domain.Event) {
	for _, ev := range events {
		d.Dispatch(ev)
	}
}
