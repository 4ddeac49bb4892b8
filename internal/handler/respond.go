package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ejikes/blogApi/internal/domain"
	"github.com/ejikes/blogApi/internal/logger"
	"github.com/ejikes/blogApi/internal/middleware"
)

func errorBody(message string) gin.H {
	return gin.H{"status": "error", "message": message}
}

// respondServiceError maps domain errors onto HTTP statuses. Anything
// unrecognized is logged with the request id and reported as a 500 without
// leaking internals.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrNotFoundOrUnauthorized),
		errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, errorBody(err.Error()))
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, errorBody(err.Error()))
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorBody(err.Error()))
	default:
		logger.Error("request failed",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, errorBody("internal server error"))
	}
}
