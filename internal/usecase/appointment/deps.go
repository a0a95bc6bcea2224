package appointment

import (
	domain "github.com/carelinkhq/telemed-scheduler/internal/domain/appointment"
)

// EventSink receives the domain events of a committed transition. The
// production sink is the async side-effect dispatcher; tests plug in a
// synchronous recorder.
type EventSink interface {
	DispatchAll(events []domain.Event)
}
