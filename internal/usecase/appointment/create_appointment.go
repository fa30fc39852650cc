package appointment

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/metrics"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/notify"
	"github.com/BruksfildServices01/barbearia-api/internal/timezone"
	"github.com/BruksfildServices01/barbearia-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ServiceID string
	Date      string
	TimeSlot  string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	services  catalog.Repository
	users     account.Repository
	populator *Populator
	notifier  *notify.Notifier
	audit     *audit.Dispatcher
	loc       *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	services catalog.Repository,
	users account.Repository,
	populator *Populator,
	notifier *notify.Notifier,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		services:  services,
		users:     users,
		populator: populator,
		notifier:  notifier,
		audit:     audit,
		loc:       loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	id authz.Identity,
	in CreateAppointmentInput,
) (*dto.AppointmentView, error) {

	// --------------------------------------------------
	// Data no timezone da barbearia
	// --------------------------------------------------
	date, err := timezone.ParseDate(in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrValidation("validation_error", "Dados inválidos.", "data inválida")
	}

	// --------------------------------------------------
	// Serviço
	// --------------------------------------------------
	svc, err := uc.services.FindByID(ctx, in.ServiceID)
	if err != nil {
		return nil, notFoundAs(err, errServiceNotFound)
	}

	// --------------------------------------------------
	// Agendamento (dono = solicitante, status inicial)
	// --------------------------------------------------
	ap := &models.Appointment{
		UserID:    id.UserID,
		ServiceID: svc.ID,
		Date:      date,
		TimeSlot:  in.TimeSlot,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := validators.Struct(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		return nil, err
	}

	metrics.RecordAppointmentEvent("created")
	uc.audit.Dispatch(audit.Event{
		UserID:   id.UserID,
		Action:   audit.ActionAppointmentCreated,
		Entity:   audit.EntityAppointment,
		EntityID: ap.ID,
		Metadata: map[string]string{"servico": svc.ID, "horario": ap.TimeSlot},
	})

	// --------------------------------------------------
	// E-mail de confirmação (nunca falha a criação)
	// --------------------------------------------------
	if user, err := uc.users.FindByID(ctx, id.UserID); err != nil {
		log.WithError(err).WithField("appointment_id", ap.ID).Warn("booking e-mail skipped")
	} else {
		uc.notifier.Notify(notify.BookingConfirmation(user, svc, ap, uc.loc))
	}

	return uc.populator.View(ctx, ap)
}
