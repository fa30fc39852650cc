package account

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Repository interface {
	// Create returns domain.ErrDuplicate when the email is taken.
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.User, error)
	ConfirmEmail(ctx context.Context, id string) error
	Update(ctx context.Context, u *models.User) error
}
