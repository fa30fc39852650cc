package review

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	rules "github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

type UpdateReview struct {
	repo      rules.Repository
	populator *Populator
}

func NewUpdateReview(repo rules.Repository, populator *Populator) *UpdateReview {
	return &UpdateReview{repo: repo, populator: populator}
}

// Execute only lets the author edit; admins included.
func (uc *UpdateReview) Execute(
	ctx context.Context,
	id authz.Identity,
	reviewID string,
	in UpdateReviewInput,
) (*dto.ReviewView, error) {

	r, err := uc.repo.FindByID(ctx, reviewID)
	if err != nil {
		return nil, notFoundAs(err, errReviewNotFound)
	}

	if err := rules.CanUpdate(id, r); err != nil {
		return nil, err
	}

	if in.Rating != nil {
		r.Rating = *in.Rating
	}
	if in.Comment != nil {
		r.Comment = strings.TrimSpace(*in.Comment)
	}

	if err := validators.Struct(r); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, notFoundAs(err, errReviewNotFound)
	}

	return uc.populator.View(ctx, r)
}
