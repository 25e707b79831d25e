package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the envelope for successful API responses
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse is the envelope for failed API responses
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success envelope with the given status and payload
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{Success: true, Message: message, Data: data})
}

// ErrorResponseHandler sends an error envelope with the given status
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{Success: false, Error: errorMessage, Code: statusCode})
}

func errorWithDefault(c echo.Context, statusCode int, msg, fallback string) error {
	if msg == "" {
		msg = fallback
	}
	return ErrorResponseHandler(c, statusCode, msg)
}

// BadRequestResponse sends a 400 Bad Request error envelope
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusBadRequest, errorMessage, "Bad request")
}

// UnauthorizedResponse sends a 401 Unauthorized error envelope
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusUnauthorized, errorMessage, "Unauthorized")
}

// NotFoundResponse sends a 404 Not Found error envelope
func NotFoundResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusNotFound, errorMessage, "Resource not found")
}

// TooManyRequestsResponse sends a 429 Too Many Requests error envelope
func TooManyRequestsResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusTooManyRequests, errorMessage, "Too many requests")
}

// InternalServerErrorResponse sends a 500 Internal Server Error envelope
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	return errorWithDefault(c, http.StatusInternalServerError, errorMessage, "Internal server error")
}
