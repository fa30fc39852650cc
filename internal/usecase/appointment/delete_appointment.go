package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/metrics"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
)

type DeleteAppointment struct {
	repo  domain.Repository
	files storage.FileStore
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	files storage.FileStore,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{repo: repo, files: files, audit: audit}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	id authz.Identity,
	appointmentID string,
) error {

	ap, err := uc.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return notFoundAs(err, errAppointmentNotFound)
	}

	if err := authz.CanAccess(id, ap.UserID); err != nil {
		return err
	}

	// the file goes first; a failure here never blocks the record
	if ap.ReferenceImage != nil {
		storage.RemoveBestEffort(ctx, uc.files, storage.KindReferences, *ap.ReferenceImage)
	}

	if err := uc.repo.Delete(ctx, ap.ID); err != nil {
		return notFoundAs(err, errAppointmentNotFound)
	}

	metrics.RecordAppointmentEvent("deleted")
	uc.audit.Dispatch(audit.Event{
		UserID:   id.UserID,
		Action:   audit.ActionAppointmentDeleted,
		Entity:   audit.EntityAppointment,
		EntityID: ap.ID,
	})

	return nil
}
