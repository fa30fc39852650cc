package appointment

import (
	"context"
	"mime/multipart"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
)

type AttachReferenceImage struct {
	repo      domain.Repository
	files     storage.FileStore
	populator *Populator
	audit     *audit.Dispatcher
}

func NewAttachReferenceImage(
	repo domain.Repository,
	files storage.FileStore,
	populator *Populator,
	audit *audit.Dispatcher,
) *AttachReferenceImage {
	return &AttachReferenceImage{repo: repo, files: files, populator: populator, audit: audit}
}

func (uc *AttachReferenceImage) Execute(
	ctx context.Context,
	id authz.Identity,
	appointmentID string,
	file *multipart.FileHeader,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, notFoundAs(err, errAppointmentNotFound)
	}

	if err := authz.CanAccess(id, ap.UserID); err != nil {
		return nil, err
	}

	if file == nil {
		return nil, httperr.ErrUpload("missing_file", "Por favor, envie um arquivo.")
	}

	name, err := uc.files.Save(ctx, storage.KindReferences, file)
	if err != nil {
		return nil, err
	}

	old := ap.ReferenceImage
	ap.ReferenceImage = &name

	if err := uc.repo.Update(ctx, ap); err != nil {
		storage.RemoveBestEffort(ctx, uc.files, storage.KindReferences, name)
		return nil, err
	}

	if old != nil && *old != name {
		storage.RemoveBestEffort(ctx, uc.files, storage.KindReferences, *old)
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   id.UserID,
		Action:   audit.ActionAppointmentImageAttached,
		Entity:   audit.EntityAppointment,
		EntityID: ap.ID,
		Metadata: map[string]string{"imagem": name},
	})

	return uc.populator.View(ctx, ap)
}
