package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carelinkhq/telemed-scheduler/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// Respond maps a use-case error to the HTTP surface. Anything that is not a
// structured apperr is treated as an internal failure.
func Respond(c *gin.Context, err error) {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch ae.Kind {
	case apperr.KindNotFound:
		NotFound(c, ae.Code, ae.Message)
	case apperr.KindValidation:
		BadRequest(c, ae.Code, ae.Message)
	case apperr.KindAuthorization:
		Forbidden(c, ae.Code, ae.Message)
	case apperr.KindInvalidState:
		Conflict(c, ae.Code, ae.Message)
	default:
		Internal(c, ae.Code, ae.Message)
	}
}
