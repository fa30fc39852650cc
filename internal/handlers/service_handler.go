package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/httpresp"
	"github.com/BruksfildServices01/barbearia-api/internal/usecase/catalog"
)

// ServiceImageField is the multipart field carrying a service picture.
const ServiceImageField = "imagemServico"

type ServiceHandler struct {
	list   *catalog.ListServices
	get    *catalog.GetService
	create *catalog.CreateService
	update *catalog.UpdateService
	del    *catalog.DeleteService
}

func NewServiceHandler(
	list *catalog.ListServices,
	get *catalog.GetService,
	create *catalog.CreateService,
	update *catalog.UpdateService,
	del *catalog.DeleteService,
) *ServiceHandler {
	return &ServiceHandler{list: list, get: get, create: create, update: update, del: del}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name        string  `json:"nome" form:"nome" binding:"required,max=50"`
	Description string  `json:"descricao" form:"descricao" binding:"required,max=500"`
	Price       float64 `json:"preco" form:"preco" binding:"required,gt=0"`
	DurationMin *int    `json:"duracao" form:"duracao" binding:"omitempty,gt=0"`
	Type        string  `json:"tipo" form:"tipo" binding:"required"`
	Available   *bool   `json:"disponivel" form:"disponivel"`
}

type UpdateServiceRequest struct {
	Name        *string  `json:"nome" form:"nome" binding:"omitempty,max=50"`
	Description *string  `json:"descricao" form:"descricao" binding:"omitempty,max=500"`
	Price       *float64 `json:"preco" form:"preco" binding:"omitempty,gt=0"`
	DurationMin *int     `json:"duracao" form:"duracao" binding:"omitempty,gt=0"`
	Type        *string  `json:"tipo" form:"tipo"`
	Available   *bool    `json:"disponivel" form:"disponivel"`
}

// --------- Handlers ---------

func (h *ServiceHandler) List(c *gin.Context) {
	available, err := queryBool(c, "disponivel")
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	list, err := h.list.Execute(c.Request.Context(), catalog.ListServicesInput{
		Type:      c.Query("tipo"),
		Available: available,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.List(c, list)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	svc, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	var req CreateServiceRequest
	if !bind(c, &req) {
		return
	}

	image, err := optionalFile(c, ServiceImageField)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), identity(c), catalog.CreateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Type:        req.Type,
		Available:   req.Available,
	}, image)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.Created(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	var req UpdateServiceRequest
	if !bind(c, &req) {
		return
	}

	image, err := optionalFile(c, ServiceImageField)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), identity(c), c.Param("id"), catalog.UpdateServiceInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		DurationMin: req.DurationMin,
		Type:        req.Type,
		Available:   req.Available,
	}, image)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	if err := h.del.Execute(c.Request.Context(), identity(c), c.Param("id")); err != nil {
		httperr.Respond(c, err)
		return
	}
	httpresp.OK(c, gin.H{})
}
