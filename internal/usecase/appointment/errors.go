package appointment

import (
	"errors"

	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

var (
	errAppointmentNotFound = httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
	errServiceNotFound     = httperr.ErrNotFound("service_not_found", "Serviço não encontrado.")
)

// notFoundAs replaces a repository ErrNotFound with the business error nf.
func notFoundAs(err, nf error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nf
	}
	return err
}
