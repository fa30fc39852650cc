package review

import (
	"errors"

	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
)

var (
	errReviewNotFound      = httperr.ErrNotFound("review_not_found", "Avaliação não encontrada.")
	errAppointmentNotFound = httperr.ErrNotFound("appointment_not_found", "Agendamento não encontrado.")
)

func notFoundAs(err, nf error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nf
	}
	return err
}
