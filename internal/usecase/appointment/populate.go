package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/account"
	"github.com/BruksfildServices01/barbearia-api/internal/domain/catalog"
	"github.com/BruksfildServices01/barbearia-api/internal/dto"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/storage"
)

// Populator joins appointments with their owners and services in two
// batched lookups, whatever the backing store.
type Populator struct {
	users    account.Repository
	services catalog.Repository
	files    storage.FileStore
}

func NewPopulator(
	users account.Repository,
	services catalog.Repository,
	files storage.FileStore,
) *Populator {
	return &Populator{users: users, services: services, files: files}
}

func (p *Populator) Views(ctx context.Context, list []models.Appointment) ([]dto.AppointmentView, error) {
	userIDs := make([]string, 0, len(list))
	serviceIDs := make([]string, 0, len(list))
	for _, ap := range list {
		userIDs = append(userIDs, ap.UserID)
		serviceIDs = append(serviceIDs, ap.ServiceID)
	}

	users, err := p.users.FindByIDs(ctx, models.UniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}
	services, err := p.services.FindByIDs(ctx, models.UniqueIDs(serviceIDs))
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentView, 0, len(list))
	for _, ap := range list {
		out = append(out, dto.NewAppointmentView(ap, users, services, p.imageURL(ap)))
	}
	return out, nil
}

func (p *Populator) View(ctx context.Context, ap *models.Appointment) (*dto.AppointmentView, error) {
	views, err := p.Views(ctx, []models.Appointment{*ap})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (p *Populator) imageURL(ap models.Appointment) string {
	if ap.ReferenceImage == nil {
		return ""
	}
	return p.files.URL(storage.KindReferences, *ap.ReferenceImage)
}
