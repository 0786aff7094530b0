package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// SuccessResponse writes a success envelope around data.
func SuccessResponse(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{
		Status: "success",
		Data:   data,
	})
}

// ListResponse writes a success envelope with an explicit item count.
func ListResponse(c echo.Context, count int, data interface{}) error {
	return c.JSON(http.StatusOK, APIResponse{
		Status: "success",
		Count:  &count,
		Data:   data,
	})
}

// RawResponse writes an already-shaped payload as-is. Used by endpoints
// whose body carries the status field itself (comprehensive forecast,
// alerts).
func RawResponse(c echo.Context, payload interface{}) error {
	return c.JSON(http.StatusOK, payload)
}

// BadRequestResponse writes a 400 with validation details.
func BadRequestResponse(c echo.Context, errs interface{}) error {
	return c.JSON(http.StatusBadRequest, APIErrorResponse{
		Status:  "error",
		Message: http.StatusText(http.StatusBadRequest),
		Errors:  errs,
	})
}

// InternalServerErrorResponse writes a generic 500.
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Something went wrong"
	}
	return c.JSON(http.StatusInternalServerError, APIErrorResponse{
		Status:  "error",
		Message: message,
	})
}

// AppErrorResponse writes an application error with its mapped status.
func AppErrorResponse(c echo.Context, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return c.JSON(appErr.Status, APIErrorResponse{
			Status:  "error",
			Message: appErr.Message,
		})
	}
	return InternalServerErrorResponse(c, "")
}
