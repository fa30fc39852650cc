package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/appointment"
)

// ReferenceImageField is the multipart field of PUT /agendamentos/:id/imagem.
const ReferenceImageField = "imagem"

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	list   *appointment.ListAppointments
	get    *appointment.GetAppointment
	create *appointment.CreateAppointment
	update *appointment.UpdateAppointment
	del    *appointment.DeleteAppointment
	attach *appointment.AttachReferenceImage
}

func NewAppointmentHandler(
	list *appointment.ListAppointments,
	get *appointment.GetAppointment,
	create *appointment.CreateAppointment,
	update *appointment.UpdateAppointment,
	del *appointment.DeleteAppointment,
	attach *appointment.AttachReferenceImage,
) *AppointmentHandler {
	return &AppointmentHandler{
		list:   list,
		get:    get,
		create: create,
		update: update,
		del:    del,
		attach: attach,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ServiceID string `json:"servico" binding:"required"`
	Date      string `json:"data" binding:"required"`
	TimeSlot  string `json:"horario" binding:"required,timeslot"`
	Notes     string `json:"observacoes" binding:"max=500"`
}

type UpdateAppointmentRequest struct {
	ServiceID *string `json:"servico"`
	Date      *string `json:"data"`
	TimeSlot  *string `json:"horario" binding:"omitempty,timeslot"`
	Notes     *string `json:"observacoes" binding:"omitempty,max=500"`
	Status    *string `json:"status"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	reviewed, err := queryBool(c, "avaliado")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.list.Execute(c.Request.Context(), identity(c), appointment.ListAppointmentsInput{
		Status:   c.Query("status"),
		Reviewed: reviewed,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	view, err := h.get.Execute(c.Request.Context(), identity(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, view)
}

// ======================================================
// CREATE / UPDATE / DELETE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.create.Execute(c.Request.Context(), identity(c), appointment.CreateAppointmentInput{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, view)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.update.Execute(c.Request.Context(), identity(c), c.Param("id"), appointment.UpdateAppointmentInput{
		ServiceID: req.ServiceID,
		Date:      req.Date,
		TimeSlot:  req.TimeSlot,
		Notes:     req.Notes,
		Status:    req.Status,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.del.Execute(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{})
}

// ======================================================
// REFERENCE IMAGE
// ======================================================

func (h *AppointmentHandler) UploadImage(c *gin.Context) {
	file, err := optionalFile(c, ReferenceImageField)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	view, err := h.attach.Execute(c.Request.Context(), identity(c), c.Param("id"), file)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, view)
}
