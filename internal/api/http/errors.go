package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/skystore/skystore/internal/domain"
	"github.com/skystore/skystore/internal/usecase"
)

// respondError maps application failures to HTTP statuses: not found
// to 404, conflicts to 409, credential failures to 401, validation and
// policy failures to 400, everything else to 500.
func (h *Handlers) respondError(c *gin.Context, err error) {
	if domain.IsValidation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	switch usecase.KindOf(err) {
	case usecase.KindNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case usecase.KindAlreadyExists:
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case usecase.KindWrongPassword:
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case usecase.KindPasswordRequirement, usecase.KindNotDirectory:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error("internal error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
