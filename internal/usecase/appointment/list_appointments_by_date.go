package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
	loc  *time.Location
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	loc *time.Location,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
		loc:  loc,
	}
}

// Execute returns the active (scheduled or confirmed) appointments of the
// calendar day containing date, in the shop's timezone.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	start, end := timezone.DayBounds(date, uc.loc)

	return uc.repo.List(ctx, domain.Filter{
		Statuses: []string{string(domain.StatusScheduled), string(domain.StatusConfirmed)},
		From:     &start,
		To:       &end,
	})
}
