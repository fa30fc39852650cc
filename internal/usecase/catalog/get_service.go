package catalog

import (
	"context"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
)

type GetService struct {
	repo  domain.Repository
	files storage.FileStore
}

func NewGetService(repo domain.Repository, files storage.FileStore) *GetService {
	return &GetService{repo: repo, files: files}
}

func (uc *GetService) Execute(ctx context.Context, serviceID string) (*dto.ServiceView, error) {
	s, err := uc.repo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, notFoundAs(err, errServiceNotFound)
	}
	v := view(uc.files, *s)
	return &v, nil
}
