package audit

import (
	"context"
	"encoding/json"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	entry := models.AuditLog{
		UserID:   optional(ev.UserID),
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: optional(ev.EntityID),
		Metadata: metaJSON,
	}

	return l.store.Insert(ctx, &entry)
}

func (l *Logger) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	return l.store.List(ctx, q.Normalize())
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
