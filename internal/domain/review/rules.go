package review

import (
	domainAppointment "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

var ErrAlreadyReviewed = httperr.ErrDuplicate("already_reviewed", "Usuário já avaliou este agendamento.")

// CheckEligibility applies the ownership and completion rules, in that
// order. Existence and duplicate checks need the stores and live in the
// create use case.
func CheckEligibility(id authz.Identity, ap *models.Appointment) error {
	if !id.Owns(ap.UserID) {
		return httperr.ErrForbidden("forbidden", "Usuário não autorizado a avaliar este agendamento.")
	}
	if domainAppointment.Status(ap.Status) != domainAppointment.StatusCompleted {
		return httperr.ErrValidation(
			"appointment_not_completed",
			"Apenas agendamentos concluídos podem ser avaliados.",
		)
	}
	return nil
}

func CanUpdate(id authz.Identity, r *models.Review) error {
	return authz.RequireOwner(id, r.UserID)
}

func CanDelete(id authz.Identity, r *models.Review) error {
	return authz.CanAccess(id, r.UserID)
}
