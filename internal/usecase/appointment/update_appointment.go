package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/metrics"
	"github.com/BruksfildServices01/barbearia-api/internal/timezone"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

// UpdateAppointmentInput mirrors the request body; nil fields are kept.
type UpdateAppointmentInput struct {
	ServiceID *string
	Date      *string
	TimeSlot  *string
	Notes     *string
	Status    *string
}

type UpdateAppointment struct {
	repo      domain.Repository
	services  catalog.Repository
	populator *Populator
	audit     *audit.Dispatcher
	loc       *time.Location
}

func NewUpdateAppointment(
	repo domain.Repository,
	services catalog.Repository,
	populator *Populator,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		services:  services,
		populator: populator,
		audit:     audit,
		loc:       loc,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id authz.Identity,
	appointmentID string,
	in UpdateAppointmentInput,
) (*dto.AppointmentView, error) {

	ap, err := uc.repo.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, notFoundAs(err, errAppointmentNotFound)
	}

	if err := authz.CanAccess(id, ap.UserID); err != nil {
		return nil, err
	}

	changes, err := uc.changes(ctx, in)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Campos
	// --------------------------------------------------
	if err := domain.ApplyFields(ap, changes); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Status (máquina de estados)
	// --------------------------------------------------
	from := ap.Status
	statusChanged := false
	if in.Status != nil {
		to, err := domain.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		if statusChanged, err = domain.Transition(ap, to, time.Now().In(uc.loc)); err != nil {
			return nil, err
		}
	}

	if err := validators.Struct(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Auditoria
	// --------------------------------------------------
	if changes.HasFieldEdits() {
		uc.audit.Dispatch(audit.Event{
			UserID:   id.UserID,
			Action:   audit.ActionAppointmentUpdated,
			Entity:   audit.EntityAppointment,
			EntityID: ap.ID,
		})
	}
	if statusChanged {
		metrics.RecordAppointmentEvent(ap.Status)
		uc.audit.Dispatch(audit.Event{
			UserID:   id.UserID,
			Action:   audit.ActionAppointmentStatusChanged,
			Entity:   audit.EntityAppointment,
			EntityID: ap.ID,
			Metadata: map[string]string{"from": from, "to": ap.Status},
		})
	}

	return uc.populator.View(ctx, ap)
}

// changes parses the raw input and checks that a new service exists.
func (uc *UpdateAppointment) changes(ctx context.Context, in UpdateAppointmentInput) (domain.Changes, error) {
	c := domain.Changes{
		ServiceID: in.ServiceID,
		TimeSlot:  in.TimeSlot,
		Notes:     in.Notes,
		Status:    in.Status,
	}

	if in.Date != nil {
		d, err := timezone.ParseDate(*in.Date, uc.loc)
		if err != nil {
			return c, httperr.ErrValidation("validation_error", "Dados inválidos.", "data inválida")
		}
		c.Date = &d
	}

	if in.ServiceID != nil {
		if _, err := uc.services.FindByID(ctx, *in.ServiceID); err != nil {
			return c, notFoundAs(err, errServiceNotFound)
		}
	}

	return c, nil
}
