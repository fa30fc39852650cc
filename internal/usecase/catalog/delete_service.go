package catalog

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
)

type DeleteService struct {
	repo  domain.Repository
	files storage.FileStore
}

func NewDeleteService(repo domain.Repository, files storage.FileStore) *DeleteService {
	return &DeleteService{repo: repo, files: files}
}

// Execute removes the entry. Appointments that reference it keep their id
// and render without a populated service.
func (uc *DeleteService) Execute(ctx context.Context, id authz.Identity, serviceID string) error {
	if err := authz.RequireAdmin(id); err != nil {
		return err
	}

	s, err := uc.repo.FindByID(ctx, serviceID)
	if err != nil {
		return notFoundAs(err, errServiceNotFound)
	}

	if domain.IsStoredImage(s.Image) {
		storage.RemoveBestEffort(ctx, uc.files, storage.KindServices, s.Image)
	}

	return notFoundAs(uc.repo.Delete(ctx, s.ID), errServiceNotFound)
}
