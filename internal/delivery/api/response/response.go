package response

import (
	"net/http"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/query"

	"github.com/labstack/echo/v4"
)

// SuccessResponse defines the structure for successful responses
type SuccessResponse struct {
	Data any       `json:"data"`
	Info string    `json:"info,omitempty"` // Human readable outcome of a write
	Meta *MetaInfo `json:"meta"`
}

// ErrorResponse defines the structure for error responses
type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Code    string `json:"code"`              // Machine-readable error code, e.g., "VALIDATION_FAILED"
	Message string `json:"message"`           // User-friendly error message
	Details any    `json:"details,omitempty"` // Additional error context (only for 4xx errors)
}

// MetaInfo represents response metadata
type MetaInfo struct {
	RequestID string          `json:"request_id"`     // Request tracking ID
	Page      *query.PageMeta `json:"page,omitempty"` // Set on listings only
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Saved returns the record of a write together with its outcome message.
func Saved(c echo.Context, statusCode int, data any, info string) error {
	return c.JSON(statusCode, SuccessResponse{
		Data: data,
		Info: info,
		Meta: meta(c),
	})
}

// Page returns one page of a listing.
func Page(c echo.Context, data any, page query.PageMeta) error {
	m := meta(c)
	m.Page = &page

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: data,
		Meta: m,
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == 401 || statusCode == 403 {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
