package catalog

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type Filter struct {
	Type      string
	Available *bool
}

type Repository interface {
	Create(ctx context.Context, s *models.Service) error
	FindByID(ctx context.Context, id string) (*models.Service, error)
	FindByIDs(ctx context.Context, ids []string) (map[string]models.Service, error)
	List(ctx context.Context, f Filter) ([]models.Service, error)
	Update(ctx context.Context, s *models.Service) error
	Delete(ctx context.Context, id string) error
}
