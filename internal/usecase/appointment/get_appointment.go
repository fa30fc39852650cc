package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
)

type GetAppointment struct {
	repo      domain.Repository
	populator *Populator
}

func NewGetAppointment(repo domain.Repository, populator *Populator) *GetAppointment {
	return &GetAppointment{repo: repo, populator: populator}
}

func (uc *GetAppointment) Execute(
	ctx context.Context,
	id authz.Identity,
	appointmentID string,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, notFoundAs(err, errAppointmentNotFound)
	}

	if err := authz.CanAccess(id, ap.UserID); err != nil {
		return nil, err
	}

	return uc.populator.View(ctx, ap)
}
