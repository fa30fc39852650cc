package catalog

import (
	"context"
	"mime/multipart"
	"strings"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

type UpdateServiceInput struct {
	Name        *string
	Description *string
	Price       *float64
	DurationMin *int
	Type        *string
	Available   *bool
}

type UpdateService struct {
	repo  domain.Repository
	files storage.FileStore
}

func NewUpdateService(repo domain.Repository, files storage.FileStore) *UpdateService {
	return &UpdateService{repo: repo, files: files}
}

func (uc *UpdateService) Execute(
	ctx context.Context,
	id authz.Identity,
	serviceID string,
	in UpdateServiceInput,
	image *multipart.FileHeader,
) (*dto.ServiceView, error) {

	if err := authz.RequireAdmin(id); err != nil {
		return nil, err
	}

	s, err := uc.repo.FindByID(ctx, serviceID)
	if err != nil {
		return nil, notFoundAs(err, errServiceNotFound)
	}

	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.DurationMin != nil {
		s.DurationMin = *in.DurationMin
	}
	if in.Type != nil {
		s.Type = strings.ToLower(strings.TrimSpace(*in.Type))
	}
	if in.Available != nil {
		s.Available = *in.Available
	}

	if err := validators.Struct(s); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Imagem: grava a nova, persiste, remove a antiga
	// --------------------------------------------------
	old := s.Image
	if image != nil {
		name, err := uc.files.Save(ctx, storage.KindServices, image)
		if err != nil {
			return nil, err
		}
		s.Image = name
	}

	if err := uc.repo.Update(ctx, s); err != nil {
		if s.Image != old {
			storage.RemoveBestEffort(ctx, uc.files, storage.KindServices, s.Image)
		}
		return nil, notFoundAs(err, errServiceNotFound)
	}

	if s.Image != old && domain.IsStoredImage(old) {
		storage.RemoveBestEffort(ctx, uc.files, storage.KindServices, old)
	}

	v := view(uc.files, *s)
	return &v, nil
}
