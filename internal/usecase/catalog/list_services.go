package catalog

import (
	"context"
	"strings"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
)

type ListServicesInput struct {
	Type      string
	Available *bool
}

type ListServices struct {
	repo  domain.Repository
	files storage.FileStore
}

func NewListServices(repo domain.Repository, files storage.FileStore) *ListServices {
	return &ListServices{repo: repo, files: files}
}

func (uc *ListServices) Execute(ctx context.Context, in ListServicesInput) ([]dto.ServiceView, error) {
	kind := strings.ToLower(strings.TrimSpace(in.Type))
	if kind != "" && !domain.IsValidType(kind) {
		return nil, httperr.ErrValidation(
			"validation_error", "Dados inválidos.",
			"tipo deve ser um de: "+strings.Join(domain.Types, " "),
		)
	}

	list, err := uc.repo.List(ctx, domain.Filter{Type: kind, Available: in.Available})
	if err != nil {
		return nil, err
	}

	out := make([]dto.ServiceView, 0, len(list))
	for _, s := range list {
		out = append(out, view(uc.files, s))
	}
	return out, nil
}
