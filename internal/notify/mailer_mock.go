package notify

import (
	"context"
	"sync"
)

// RecordingMailer keeps every message in memory; used by tests.
type RecordingMailer struct {
	mu       sync.Mutex
	messages []Message
	Err      error
}

func (m *RecordingMailer) Send(ctx context.Context, msg Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Err != nil {
		return m.Err
	}
	m.messages = append(m.messages, msg)
	return nil
}

func (m *RecordingMailer) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}
