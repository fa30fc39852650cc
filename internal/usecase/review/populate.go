package review

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// Populator resolves reviewer, appointment and the appointment's service
// for a batch of reviews.
type Populator struct {
	users        account.Repository
	appointments appointment.Repository
	services     catalog.Repository
}

func NewPopulator(
	users account.Repository,
	appointments appointment.Repository,
	services catalog.Repository,
) *Populator {
	return &Populator{users: users, appointments: appointments, services: services}
}

func (p *Populator) Views(ctx context.Context, list []models.Review) ([]dto.ReviewView, error) {
	userIDs := make([]string, 0, len(list))
	appointmentIDs := make([]string, 0, len(list))
	for _, r := range list {
		userIDs = append(userIDs, r.UserID)
		appointmentIDs = append(appointmentIDs, r.AppointmentID)
	}

	users, err := p.users.FindByIDs(ctx, models.UniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}
	appointments, err := p.appointments.FindByIDs(ctx, models.UniqueIDs(appointmentIDs))
	if err != nil {
		return nil, err
	}

	serviceIDs := make([]string, 0, len(appointments))
	for _, ap := range appointments {
		serviceIDs = append(serviceIDs, ap.ServiceID)
	}
	services, err := p.services.FindByIDs(ctx, models.UniqueIDs(serviceIDs))
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReviewView, 0, len(list))
	for _, r := range list {
		out = append(out, dto.NewReviewView(r, users, appointments, services))
	}
	return out, nil
}

func (p *Populator) View(ctx context.Context, r *models.Review) (*dto.ReviewView, error) {
	views, err := p.Views(ctx, []models.Review{*r})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}
