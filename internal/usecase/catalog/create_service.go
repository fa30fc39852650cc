package catalog

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

type CreateServiceInput struct {
	Name        string
	Description string
	Price       float64
	DurationMin *int
	Type        string
	Available   *bool
}

type CreateService struct {
	repo  domain.Repository
	files storage.FileStore
}

func NewCreateService(repo domain.Repository, files storage.FileStore) *CreateService {
	return &CreateService{repo: repo, files: files}
}

// Execute creates a catalog entry. image is optional; without it the entry
// points at the shared default picture.
func (uc *CreateService) Execute(
	ctx context.Context,
	id authz.Identity,
	in CreateServiceInput,
	image *multipart.FileHeader,
) (*dto.ServiceView, error) {

	if err := authz.RequireAdmin(id); err != nil {
		return nil, err
	}

	s := &models.Service{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		DurationMin: domain.DefaultDurationMin,
		Type:        strings.ToLower(strings.TrimSpace(in.Type)),
		Image:       models.DefaultServiceImage,
		Available:   true,
	}
	if in.DurationMin != nil {
		s.DurationMin = *in.DurationMin
	}
	if in.Available != nil {
		s.Available = *in.Available
	}

	if err := validators.Struct(s); err != nil {
		return nil, err
	}

	if image != nil {
		name, err := uc.files.Save(ctx, storage.KindServices, image)
		if err != nil {
			return nil, err
		}
		s.Image = name
	}

	if err := uc.repo.Create(ctx, s); err != nil {
		if domain.IsStoredImage(s.Image) {
			storage.RemoveBestEffort(ctx, uc.files, storage.KindServices, s.Image)
		}
		return nil, err
	}

	v := view(uc.files, *s)
	return &v, nil
}
