package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Query struct {
	Action string
	Entity string
	UserID string
	From   *time.Time
	To     *time.Time
	Page   int
	Limit  int
}

func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Normalize clamps pagination to sane bounds.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 || q.Limit > 100 {
		q.Limit = 50
	}
	return q
}

type Store interface {
	Insert(ctx context.Context, l *models.AuditLog) error
	List(ctx context.Context, q Query) ([]models.AuditLog, int64, error)
}
