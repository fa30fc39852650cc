package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
)

// DefaultTimeSlots is the shop's fixed daily agenda.
var DefaultTimeSlots = []string{
	"09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// ===============================
// Domain Actions
// ===============================

// Transition moves ap to the target status and stamps the matching
// timestamp. It returns false when ap already had that status.
func Transition(ap *models.Appointment, to Status, now time.Time) (bool, error) {
	from := Status(ap.Status)
	if err := CanTransition(from, to); err != nil {
		return false, err
	}
	if from == to {
		return false, nil
	}

	ap.Status = string(to)
	switch to {
	case StatusConfirmed:
		ap.ConfirmedAt = &now
	case StatusCanceled:
		ap.CanceledAt = &now
	case StatusCompleted:
		ap.CompletedAt = &now
	}
	return true, nil
}

// ===============================
// Field edits
// ===============================

// Changes holds the optional fields of an update request. Nil means "keep".
type Changes struct {
	ServiceID *string
	Date      *time.Time
	TimeSlot  *string
	Notes     *string
	Status    *string
}

func (c Changes) HasFieldEdits() bool {
	return c.ServiceID != nil || c.Date != nil || c.TimeSlot != nil || c.Notes != nil
}

// ApplyFields merges the non-status changes into ap. Terminal appointments
// are frozen.
func ApplyFields(ap *models.Appointment, c Changes) error {
	if !c.HasFieldEdits() {
		return nil
	}
	if Status(ap.Status).IsTerminal() {
		return httperr.ErrValidation(
			"appointment_closed",
			"Agendamentos concluídos ou cancelados não podem ser alterados.",
		)
	}

	if c.ServiceID != nil {
		ap.ServiceID = *c.ServiceID
	}
	if c.Date != nil {
		ap.Date = *c.Date
	}
	if c.TimeSlot != nil {
		ap.TimeSlot = *c.TimeSlot
	}
	if c.Notes != nil {
		ap.Notes = *c.Notes
	}
	return nil
}
