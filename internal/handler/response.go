package handler

import (
	"errors"
	"net/http"

	"clickgate/internal/service"

	"github.com/gin-gonic/gin"
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

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Code:    status,
		Message: message,
	})
}

// statusForError maps service errors onto HTTP statuses
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrLinkNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCodeTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidURL),
		errors.Is(err, service.ErrInvalidCode),
		errors.Is(err, service.ErrInvalidWorkspace),
		errors.Is(err, service.ErrInvalidSchedule),
		errors.Is(err, service.ErrInvalidTransferLimit),
		errors.Is(err, service.ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrMaxCapacityReached):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
