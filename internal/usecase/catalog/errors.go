package catalog

import (
	"errors"

	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

var errServiceNotFound = httperr.ErrNotFound("service_not_found", "Serviço não encontrado.")

func notFoundAs(err, nf error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nf
	}
	return err
}
