package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

type ListAppointmentsInput struct {
	Status   string
	Reviewed *bool
}

type ListAppointments struct {
	repo      domain.Repository
	reviews   review.Repository
	populator *Populator
}

func NewListAppointments(
	repo domain.Repository,
	reviews review.Repository,
	populator *Populator,
) *ListAppointments {
	return &ListAppointments{repo: repo, reviews: reviews, populator: populator}
}

// Execute lists the requester's appointments, or everyone's for an admin.
// Every view carries "avaliado": whether the appointment already has a
// review from its owner.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	id authz.Identity,
	in ListAppointmentsInput,
) ([]dto.AppointmentView, error) {

	filter := domain.Filter{}
	if !id.IsAdmin() {
		filter.UserID = id.UserID
	}
	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Statuses = []string{string(st)}
	}

	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(list))
	for _, ap := range list {
		ids = append(ids, ap.ID)
	}

	// only owners can review, so "reviewed by anyone" is "reviewed by owner"
	reviewed, err := uc.reviews.ReviewedAppointmentIDs(ctx, filter.UserID, ids)
	if err != nil {
		return nil, err
	}

	if in.Reviewed != nil {
		kept := make([]models.Appointment, 0, len(list))
		for _, ap := range list {
			if reviewed[ap.ID] == *in.Reviewed {
				kept = append(kept, ap)
			}
		}
		list = kept
	}

	views, err := uc.populator.Views(ctx, list)
	if err != nil {
		return nil, err
	}
	for i := range views {
		r := reviewed[views[i].ID]
		views[i].Reviewed = &r
	}
	return views, nil
}
