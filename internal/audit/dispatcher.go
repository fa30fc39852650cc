package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/async"
)

const (
	ActionAppointmentCreated       = "appointment_created"
	ActionAppointmentUpdated       = "appointment_updated"
	ActionAppointmentStatusChanged = "appointment_status_changed"
	ActionAppointmentDeleted       = "appointment_deleted"
	ActionAppointmentImageAttached = "appointment_image_attached"
	ActionReviewCreated            = "review_created"
	ActionReviewDeleted            = "review_deleted"

	EntityAppointment = "appointment"
	EntityReview      = "review"
)

type Event struct {
	UserID   string
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher records audit events in the background.
type Dispatcher struct {
	queue *async.Queue[Event]
}

func NewDispatcher(logger *Logger) *Dispatcher {
	return &Dispatcher{
		queue: async.NewQueue[Event]("audit", 100, 5*time.Second, logger.Log),
	}
}

// Dispatch never blocks; when the buffer is full the event is dropped.
func (d *Dispatcher) Dispatch(ev Event) {
	d.queue.Push(ev)
}

func (d *Dispatcher) Close(ctx context.Context) error {
	return d.queue.Close(ctx)
}
