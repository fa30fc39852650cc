package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/review"
)

type ReviewHandler struct {
	list   *review.ListReviews
	get    *review.GetReview
	create *review.CreateReview
	update *review.UpdateReview
	del    *review.DeleteReview
}

func NewReviewHandler(
	list *review.ListReviews,
	get *review.GetReview,
	create *review.CreateReview,
	update *review.UpdateReview,
	del *review.DeleteReview,
) *ReviewHandler {
	return &ReviewHandler{list: list, get: get, create: create, update: update, del: del}
}

type CreateReviewRequest struct {
	AppointmentID string `json:"agendamento" binding:"required"`
	Rating        int    `json:"nota" binding:"required,min=1,max=5"`
	Comment       string `json:"comentario" binding:"max=500"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"nota" binding:"omitempty,min=1,max=5"`
	Comment *string `json:"comentario" binding:"omitempty,max=500"`
}

func (h *ReviewHandler) List(c *gin.Context) {
	list, err := h.list.Execute(c.Request.Context(), identity(c), c.Query("agendamento"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *ReviewHandler) Get(c *gin.Context) {
	view, err := h.get.Execute(c.Request.Context(), identity(c), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.create.Execute(c.Request.Context(), identity(c), review.CreateReviewInput{
		AppointmentID: req.AppointmentID,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, view)
}

func (h *ReviewHandler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if !bind(c, &req) {
		return
	}

	view, err := h.update.Execute(c.Request.Context(), identity(c), c.Param("id"), review.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, view)
}

func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.del.Execute(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{})
}
