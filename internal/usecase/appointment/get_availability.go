package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/timezone"
)

type GetAvailability struct {
	byDate *ListAppointmentsByDate
	loc    *time.Location
}

func NewGetAvailability(byDate *ListAppointmentsByDate, loc *time.Location) *GetAvailability {
	return &GetAvailability{byDate: byDate, loc: loc}
}

// Execute marks which default slots of the given day are already taken.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date string,
) ([]domain.SlotAvailability, error) {

	day, err := timezone.ParseDate(date, uc.loc)
	if err != nil {
		return nil, httperr.ErrValidation("validation_error", "Dados inválidos.", "data inválida")
	}

	appointments, err := uc.byDate.Execute(ctx, day)
	if err != nil {
		return nil, err
	}

	return domain.Availability(appointments), nil
}
