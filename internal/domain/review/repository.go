package review

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Filter struct {
	UserID        string
	AppointmentID string
}

type Repository interface {
	// Create returns domain.ErrDuplicate when (user, appointment) already
	// has a review.
	Create(ctx context.Context, r *models.Review) error
	FindByID(ctx context.Context, id string) (*models.Review, error)
	Exists(ctx context.Context, userID, appointmentID string) (bool, error)
	List(ctx context.Context, f Filter) ([]models.Review, error)
	Update(ctx context.Context, r *models.Review) error
	Delete(ctx context.Context, id string) error

	// ReviewedAppointmentIDs returns which of appointmentIDs have a review by
	// userID, or by anyone when userID is empty.
	ReviewedAppointmentIDs(ctx context.Context, userID string, appointmentIDs []string) (map[string]bool, error)
}
