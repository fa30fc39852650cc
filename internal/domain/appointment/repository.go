package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// Filter narrows List. Zero values match everything.
type Filter struct {
	UserID   string
	Statuses []string
	From     *time.Time
	To       *time.Time
}

type Repository interface {
	Create(ctx context.Context, ap *models.Appointment) error
	FindByID(ctx context.Context, id string) (*models.Appointment, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.Appointment, error)
	List(ctx context.Context, f Filter) ([]models.Appointment, error)
	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id string) error
}
