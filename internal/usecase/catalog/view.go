package catalog

import (
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
)

func view(files storage.FileStore, s models.Service) dto.ServiceView {
	return dto.NewServiceView(s, files.URL(storage.KindServices, s.Image))
}
