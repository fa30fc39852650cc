package notify

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/async"
	"github.com/BruksfildServices01/barbearia-api/internal/metrics"
)

// Notifier sends e-mails in the background. Failures are logged and
// counted, never returned to the caller.
type Notifier struct {
	queue *async.Queue[Message]
}

func NewNotifier(mailer Mailer) *Notifier {
	send := func(ctx context.Context, msg Message) error {
		err := mailer.Send(ctx, msg)
		metrics.RecordEmail(msg.Kind, err)
		return err
	}

	return &Notifier{
		queue: async.NewQueue[Message]("email", 100, 30*time.Second, send),
	}
}

func (n *Notifier) Notify(msg Message) {
	if msg.To == "" {
		return
	}
	n.queue.Push(msg)
}

func (n *Notifier) Close(ctx context.Context) error {
	return n.queue.Close(ctx)
}
