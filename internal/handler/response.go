package handler

import (
	"errors"
	"net/http"

	"linkpulse/internal/mq"
	"linkpulse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Response is the standard API response
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// statusOf maps service errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, mq.ErrJobNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrGone):
		return http.StatusGone
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrInvalidLinkType),
		errors.Is(err, service.ErrInvalidSettings),
		errors.Is(err, service.ErrInvalidExpiry):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrLinkLimitReached):
		return http.StatusTooManyRequests
	case errors.Is(err, service.ErrUnavailable), errors.Is(err, service.ErrMaxCapacityReached):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the error response for err. Server-side errors are logged and
// their details kept out of the response.
func fail(c *gin.Context, err error) {
	status := statusOf(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
		message = http.StatusText(status)
	}
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}
