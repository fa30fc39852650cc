package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barbearia-api/internal/domain/appointment"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/appointment"
)

type ScheduleHandler struct {
	availability *appointment.GetAvailability
}

func NewScheduleHandler(availability *appointment.GetAvailability) *ScheduleHandler {
	return &ScheduleHandler{availability: availability}
}

// TimeSlots lists the fixed daily agenda.
func (h *ScheduleHandler) TimeSlots(c *gin.Context) {
	httpresp.List(c, domain.DefaultTimeSlots)
}

// Availability marks the slots of ?data= that already hold an active
// booking. It is informational; booking a taken slot is still accepted.
func (h *ScheduleHandler) Availability(c *gin.Context) {
	date := c.Query("data")
	if date == "" {
		httperr.BadRequest(c, "validation_error", "Parâmetro data é obrigatório.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, slots)
}
