package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-visit-reminder/internal/domain"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:   errType,
		Message: message,
	})
}

// respondDomainError maps service errors to HTTP statuses.
func respondDomainError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, domain.ErrValidation):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, domain.ErrQueueEntryNotFound):
		respondError(c, http.StatusNotFound, "not_found", "queue entry not found")
	case errors.Is(err, domain.ErrReminderNotFound):
		respondError(c, http.StatusNotFound, "not_found", "reminder not found")
	case errors.Is(err, domain.ErrTransient):
		slog.ErrorContext(ctx, "store unavailable",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusServiceUnavailable, "unavailable", "service temporarily unavailable, retry later")
	default:
		slog.ErrorContext(ctx, "unexpected error",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
		respondError(c, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
