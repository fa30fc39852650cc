package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbearia-api/internal/domain/authz"
	"github.com/BruksfildServices01/barbearia-api/internal/httperr"
	"github.com/BruksfildServices01/barbearia-api/internal/middleware"
)

// identity returns the requester set by AuthMiddleware. Routes using it are
// always mounted behind that middleware.
func identity(c *gin.Context) authz.Identity {
	id, _ := middleware.IdentityFrom(c)
	return id
}

// bind decodes JSON or form bodies by content type and answers 400 on
// failure. It reports whether the handler may go on.
func bind(c *gin.Context, req any) bool {
	if err := c.ShouldBind(req); err != nil {
		httperr.Respond(c, httperr.FromBinding(err))
		return false
	}
	return true
}

// queryBool parses an optional boolean query parameter.
func queryBool(c *gin.Context, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, httperr.ErrValidation("validation_error", "Dados inválidos.", key+" deve ser true ou false")
	}
	return &v, nil
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// optionalFile returns the uploaded file under field, or nil when the
// request carries none.
func optionalFile(c *gin.Context, field string) (*multipart.FileHeader, error) {
	if !isMultipart(c) {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, httperr.ErrUpload("invalid_request", "Não foi possível ler o arquivo enviado.")
	}
	return fh, nil
}
