package review

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	rules "github.com/BruksfildServices01/barbearia-api/internal/domain/review"
)

type DeleteReview struct {
	repo  rules.Repository
	audit *audit.Dispatcher
}

func NewDeleteReview(repo rules.Repository, audit *audit.Dispatcher) *DeleteReview {
	return &DeleteReview{repo: repo, audit: audit}
}

func (uc *DeleteReview) Execute(ctx context.Context, id authz.Identity, reviewID string) error {
	r, err := uc.repo.FindByID(ctx, reviewID)
	if err != nil {
		return notFoundAs(err, errReviewNotFound)
	}

	if err := rules.CanDelete(id, r); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, r.ID); err != nil {
		return notFoundAs(err, errReviewNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   id.UserID,
		Action:   audit.ActionReviewDeleted,
		Entity:   audit.EntityReview,
		EntityID: r.ID,
	})
	return nil
}
