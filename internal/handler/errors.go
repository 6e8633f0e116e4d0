package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"venturemind/internal/model"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	var aiErr *model.AIBackendError
	var chErr *model.ChannelError

	switch {
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrConfiguration):
		return http.StatusUnprocessableEntity
	case errors.Is(err, model.ErrInvalidState):
		return http.StatusConflict
	case errors.Is(err, model.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.As(err, &aiErr), errors.As(err, &chErr):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// respondError writes {"error": ...}. Internal failures are logged and not described to the caller.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)

	msg := err.Error()
	var aiErr *model.AIBackendError
	switch {
	case status == http.StatusInternalServerError:
		slog.Error("request failed", "path", c.FullPath(), "error", err)
		msg = "Database error"
	case errors.As(err, &aiErr):
		msg = "AI gateway error"
	}

	c.JSON(status, gin.H{"error": msg})
}
