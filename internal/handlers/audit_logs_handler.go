package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/audit"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/models"
	"github.com/BruksfildServices01/barbearia-api/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	logger *audit.Logger
	loc    *time.Location
}

func NewAuditLogsHandler(logger *audit.Logger, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{logger: logger, loc: loc}
}

type auditLogsResponse struct {
	Success bool              `json:"success"`
	Page    int               `json:"page"`
	Limit   int               `json:"limit"`
	Total   int64             `json:"total"`
	Count   int               `json:"count"`
	Data    []models.AuditLog `json:"data"`
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	q := audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		UserID: c.Query("user"),
		Page:   page,
		Limit:  limit,
	}

	// --------------------------------------------------
	// Período (dias inteiros no timezone da barbearia)
	// --------------------------------------------------
	if s := c.Query("from"); s != "" {
		from, err := timezone.ParseDate(s, h.loc)
		if err != nil {
			httperr.BadRequest(c, "validation_error", "Parâmetro from inválido.")
			return
		}
		start, _ := timezone.DayBounds(from, h.loc)
		q.From = &start
	}
	if s := c.Query("to"); s != "" {
		to, err := timezone.ParseDate(s, h.loc)
		if err != nil {
			httperr.BadRequest(c, "validation_error", "Parâmetro to inválido.")
			return
		}
		_, end := timezone.DayBounds(to, h.loc)
		q.To = &end
	}

	q = q.Normalize()

	logs, total, err := h.logger.List(c.Request.Context(), q)
	if err != nil {
		httperr.Respond(c, err)
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	c.JSON(200, auditLogsResponse{
		Success: true,
		Page:    q.Page,
		Limit:   q.Limit,
		Total:   total,
		Count:   len(logs),
		Data:    logs,
	})
}
