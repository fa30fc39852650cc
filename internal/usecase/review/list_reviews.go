package review

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	rules "github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
)

type ListReviews struct {
	repo      rules.Repository
	populator *Populator
}

func NewListReviews(repo rules.Repository, populator *Populator) *ListReviews {
	return &ListReviews{repo: repo, populator: populator}
}

// Execute lists the requester's reviews, newest first. Admins see every
// review. appointmentID narrows the list to one appointment.
func (uc *ListReviews) Execute(
	ctx context.Context,
	id authz.Identity,
	appointmentID string,
) ([]dto.ReviewView, error) {

	f := rules.Filter{AppointmentID: appointmentID}
	if !id.IsAdmin() {
		f.UserID = id.UserID
	}

	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return uc.populator.Views(ctx, list)
}

type GetReview struct {
	repo      rules.Repository
	populator *Populator
}

func NewGetReview(repo rules.Repository, populator *Populator) *GetReview {
	return &GetReview{repo: repo, populator: populator}
}

func (uc *GetReview) Execute(ctx context.Context, id authz.Identity, reviewID string) (*dto.ReviewView, error) {
	r, err := uc.repo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, notFoundAs(err, errReviewNotFound)
	}
	if err := authz.CanAccess(id, r.UserID); err != nil {
		return nil, err
	}
	return uc.populator.View(ctx, r)
}
