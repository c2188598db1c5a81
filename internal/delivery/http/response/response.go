// Package response defines the unified API response envelope.
package response

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Envelope is the unified API response structure. Every endpoint,
// success or failure, returns this shape.
type Envelope struct {
	Success  bool       `json:"success"`
	Data     any        `json:"data,omitempty"`
	Error    *ErrorInfo `json:"error,omitempty"`
	Metadata Metadata   `json:"metadata"`
}

// ErrorInfo carries the machine-readable error code alongside a
// human-readable message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// Metadata describes the request the envelope answers.
type Metadata struct {
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	Method    string `json:"method"`
}

func newMetadata(c echo.Context) Metadata {
	req := c.Request()

	return Metadata{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      req.URL.Path,
		Method:    req.Method,
	}
}

// Success writes a successful response envelope.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Success:  true,
		Data:     data,
		Metadata: newMetadata(c),
	})
}

// Error writes an error response envelope.
func Error(c echo.Context, statusCode int, errorCode string, message string, data any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Envelope{
		Success: false,
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Data:    data,
		},
		Metadata: newMetadata(c),
	})
}

// BindingError reports a malformed request body.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", message, nil)
}
