package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cuongbtq/cleanmatch-be/internal/engine"
	"github.com/cuongbtq/cleanmatch-be/internal/engine/domain"
	"github.com/gin-gonic/gin"
)

// SessionTokenHeader carries the opaque session token on every
// authenticated request.
const SessionTokenHeader = "X-Session-Token"

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger *slog.Logger
	Engine *engine.Engine
}

// sessionToken extracts the caller's session token from the request.
func sessionToken(c *gin.Context) string {
	return c.GetHeader(SessionTokenHeader)
}

// respondError maps an engine error kind to an HTTP status and writes a JSON
// error body. InvalidState and Conflict share 409; the code field tells them
// apart.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var status int
	var code string

	switch {
	case errors.Is(err, domain.ErrValidation):
		status, code = http.StatusBadRequest, "validation_error"
	case errors.Is(err, domain.ErrPermission):
		status, code = http.StatusForbidden, "permission_denied"
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrInvalidState):
		status, code = http.StatusConflict, "invalid_state"
	case errors.Is(err, domain.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	default:
		logger.Error("Unclassified engine error", slog.String("error", err.Error()))
		status, code = http.StatusInternalServerError, "internal_error"
	}

	c.JSON(status, gin.H{
		"code":  code,
		"error": err.Error(),
	})
}
