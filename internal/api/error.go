package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorCode string

const (
	errCodeBadRequest       ErrorCode = "bad_request"
	errCodeNotFound         ErrorCode = "not_found"
	errCodeValidationFailed ErrorCode = "validation_failed"
	errCodeForbidden        ErrorCode = "forbidden"
	errCodeConflict         ErrorCode = "conflict"
	errCodeGone             ErrorCode = "gone"

	errCodeInternalError ErrorCode = "internal_error"
	errCodeUpstreamError ErrorCode = "upstream_error"
	errCodeTimeout       ErrorCode = "upstream_timeout"
)

type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details string    `json:"details,omitempty"`
}

func respondWithError(c *gin.Context, statusCode int, code ErrorCode, message string, details ...string) {
	response := errorResponse{
		Error: errorDetail{
			Code:    code,
			Message: message,
		},
	}

	if len(details) > 0 {
		response.Error.Details = details[0]
	}

	c.JSON(statusCode, response)
}

func respondBadRequest(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusBadRequest, errCodeBadRequest, message, details...)
}

func respondNotFound(c *gin.Context, message string, details ...string) {
	respondWithError(c, http.StatusNotFound, errCodeNotFound, message, details...)
}

func respondValidationError(c *gin.Context, details string) {
	respondWithError(c, http.StatusBadRequest, errCodeValidationFailed, "Validation failed", details)
}

func respondConflict(c *gin.Context, message string) {
	respondWithError(c, http.StatusConflict, errCodeConflict, message)
}

// respondInternalError logs err and hides it from the client.
func respondInternalError(c *gin.Context, logger *slog.Logger, err error, message string, args ...any) {
	logger.Error(message, append([]any{"error", err, "path", c.Request.URL.Path}, args...)...)
	respondWithError(c, http.StatusInternalServerError, errCodeInternalError, message)
}
