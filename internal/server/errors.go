package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agenthands/curriculum/internal/auth"
	"github.com/agenthands/curriculum/internal/core"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrStudentNotFound), errors.Is(err, core.ErrModuleNotFound):
		return http.StatusNotFound
	case errors.Is(err, core.ErrInvalidCourseCodes), errors.Is(err, core.ErrPrerequisitesUnfulfilled):
		return http.StatusBadRequest
	case errors.Is(err, core.ErrStudentExists):
		return http.StatusConflict
	case errors.Is(err, core.ErrForbidden):
		return http.StatusForbidden
	case auth.IsAuthError(err):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response. Internal errors are logged and replaced
// with a generic message.
func (s *Server) fail(c *gin.Context, err error) {
	code := statusFor(err)
	_ = c.Error(err)

	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal server error"
	}
	if code == http.StatusUnauthorized {
		c.Header("WWW-Authenticate", "Bearer")
	}
	c.AbortWithStatusJSON(code, gin.H{"error": msg})
}
