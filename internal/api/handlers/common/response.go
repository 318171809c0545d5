// Package common holds the JSON response helpers and the mapping from
// domain errors to HTTP statuses shared by all handlers.
package common

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"obeserver/internal/domain/assessment"
	"obeserver/internal/domain/finalresult"
	"obeserver/internal/domain/peo"
	"obeserver/internal/domain/prediction"
	apperrors "obeserver/server/errors"
	"obeserver/server/middleware"
	"obeserver/tabular"
)

// SendJSONResponse sends a JSON response through the gin context.
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError sends a JSON error through the gin context and logs it.
func SendJSONError(c *gin.Context, statusCode int, message string) {
	reqID := middleware.GetRequestIDFromGin(c)

	slog.Error("HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, gin.H{
		"error":   true,
		"message": message,
	})
}

// RespondError maps a domain error to its HTTP status and sends it.
func RespondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	switch {
	case errors.Is(err, tabular.ErrEmptyInput),
		errors.Is(err, finalresult.ErrIncompleteUpload),
		errors.Is(err, assessment.ErrMissingFields),
		errors.Is(err, assessment.ErrNoDirectColumns),
		errors.Is(err, prediction.ErrInvalidInput):
		SendJSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, finalresult.ErrSessionNotFound),
		errors.Is(err, finalresult.ErrRecordNotFound),
		errors.Is(err, assessment.ErrRecordNotFound),
		errors.Is(err, peo.ErrRecordNotFound):
		SendJSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, prediction.ErrModelServer):
		SendJSONError(c, http.StatusBadGateway, err.Error())
	default:
		SendJSONError(c, http.StatusInternalServerError, "Internal server error")
	}
}
