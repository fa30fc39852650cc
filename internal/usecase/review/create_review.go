package review

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/domain"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	rules "github.com/BruksfildServices01/barbearia-api/internal/domain/review"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/metrics"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

type CreateReviewInput struct {
	AppointmentID string
	Rating        int
	Comment       string
}

type CreateReview struct {
	repo         rules.Repository
	appointments appointment.Repository
	populator    *Populator
	audit        *audit.Dispatcher
}

func NewCreateReview(
	repo rules.Repository,
	appointments appointment.Repository,
	populator *Populator,
	audit *audit.Dispatcher,
) *CreateReview {
	return &CreateReview{
		repo:         repo,
		appointments: appointments,
		populator:    populator,
		audit:        audit,
	}
}

// Execute rejects, in order: unknown appointment, someone else's
// appointment (even for admins), an appointment not yet completed, and a
// second review of the same appointment.
func (uc *CreateReview) Execute(
	ctx context.Context,
	id authz.Identity,
	in CreateReviewInput,
) (*dto.ReviewView, error) {

	ap, err := uc.appointments.FindByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, notFoundAs(err, errAppointmentNotFound)
	}

	if err := rules.CheckEligibility(id, ap); err != nil {
		return nil, err
	}

	exists, err := uc.repo.Exists(ctx, id.UserID, ap.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, rules.ErrAlreadyReviewed
	}

	r := &models.Review{
		UserID:        id.UserID,
		AppointmentID: ap.ID,
		Rating:        in.Rating,
		Comment:       strings.TrimSpace(in.Comment),
	}

	if err := validators.Struct(r); err != nil {
		return nil, err
	}

	// the unique index settles concurrent creates
	if err := uc.repo.Create(ctx, r); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, rules.ErrAlreadyReviewed
		}
		return nil, err
	}

	metrics.RecordReviewCreated()
	uc.audit.Dispatch(audit.Event{
		UserID:   id.UserID,
		Action:   audit.ActionReviewCreated,
		Entity:   audit.EntityReview,
		EntityID: r.ID,
		Metadata: map[string]any{"agendamento": ap.ID, "nota": r.Rating},
	})

	return uc.populator.View(ctx, r)
}
