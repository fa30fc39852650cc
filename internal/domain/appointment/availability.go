package appointment

import "github.com/BruksfildServices01/barbearia-api/internal/models"

type SlotAvailability struct {
	TimeSlot  string `json:"horario"`
	Available bool   `json:"disponivel"`
}

// Availability marks every default slot taken by an active appointment.
// It is informational only; booking does not consult it.
func Availability(booked []models.Appointment) []SlotAvailability {
	taken := make(map[string]bool, len(booked))
	for _, ap := range booked {
		if Status(ap.Status).IsActive() {
			taken[ap.TimeSlot] = true
		}
	}

	out := make([]SlotAvailability, 0, len(DefaultTimeSlots))
	for _, slot := range DefaultTimeSlots {
		out = append(out, SlotAvailability{TimeSlot: slot, Available: !taken[slot]})
	}
	return out
}
