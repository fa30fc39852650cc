// Package async runs side effects (audit writes, e-mails) off the request
// path on a bounded buffer.
package async

import (
	"context"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/metrics"
)

// Handler processes one queued item.
type Handler[T any] func(ctx context.Context, item T) error

type Queue[T any] struct {
	name    string
	handle  Handler[T]
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	items  chan T
	done   chan struct{}
}

// NewQueue starts a single worker draining a buffer of size items.
func NewQueue[T any](name string, size int, timeout time.Duration, handle Handler[T]) *Queue[T] {
	q := &Queue[T]{
		name:    name,
		handle:  handle,
		timeout: timeout,
		items:   make(chan T, size),
		done:    make(chan struct{}),
	}

	go q.worker()
	return q
}

func (q *Queue[T]) worker() {
	defer close(q.done)

	for item := range q.items {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		if err := q.handle(ctx, item); err != nil {
			log.WithError(err).WithField("queue", q.name).Error("background task failed")
		}
		cancel()
	}
}

// Push enqueues item without blocking. A full or closed queue drops it.
func (q *Queue[T]) Push(item T) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}

	select {
	case q.items <- item:
		return true
	default:
		// never break the request because of a side effect
		log.WithField("queue", q.name).Warn("queue full, dropping item")
		metrics.RecordQueueDrop(q.name)
		return false
	}
}

// Close stops accepting items and waits for the buffer to drain or ctx to
// expire.
func (q *Queue[T]) Close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.items)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
