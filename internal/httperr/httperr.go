package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type HTTPError struct {
	Success bool     `json:"success"`
	Message string   `json:"error"`
	Code    string   `json:"error_code"`
	Details []string `json:"details,omitempty"`
}

func Write(c *gin.Context, status int, code, message string, details ...string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Success: false,
		Message: message,
		Code:    code,
		Details: details,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusOf maps a business error kind to its HTTP status.
func StatusOf(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		// validation, duplicate key and upload problems are all client errors
		return http.StatusBadRequest
	}
}

// Respond writes err using the JSON error envelope. Anything that is not a
// BusinessError is logged and reported as a 500.
func Respond(c *gin.Context, err error) {
	var be BusinessError
	if errors.As(err, &be) {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		Write(c, StatusOf(be.Kind), be.Code, msg, be.Details...)
		return
	}

	log.WithError(err).
		WithField("path", c.FullPath()).
		Error("request failed")
	Internal(c, "internal_error", "Erro do servidor.")
}
