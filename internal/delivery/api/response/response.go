// Package response writes the JSON envelopes every endpoint returns.
package response

import (
	"net/http"

	deliverycontext "nextstep/internal/delivery/context"
	domainerrors "nextstep/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// Success returns a successful response. message may be empty.
func Success(c echo.Context, statusCode int, data any, message string) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Message: message,
		Data:    data,
		Meta:    meta(c),
	})
}

// OK is Success with status 200 and no message.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data, "")
}

// Created is Success with status 201.
func Created(c echo.Context, data any, message string) error {
	return Success(c, http.StatusCreated, data, message)
}

// Error returns an error response. Details are dropped for 5xx and for
// authentication or authorization failures.
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Message: message,
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Details: details,
		},
		Meta: meta(c),
	})
}

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
	}
}
