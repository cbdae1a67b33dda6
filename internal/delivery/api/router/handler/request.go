// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"nextstep/internal/delivery/api/validator"
	deliverycontext "nextstep/internal/delivery/context"
	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidArgument.WithDetails("malformed request body")
	}
	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidArgument.WithDetails("invalid " + name)
	}

	return id, nil
}

func currentUser(c echo.Context) (*entity.User, error) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return nil, domainerrors.ErrUnauthorized
	}

	return user, nil
}

func currentCaller(c echo.Context) (entity.Caller, error) {
	caller, ok := deliverycontext.GetCaller(c)
	if !ok {
		return entity.Caller{}, domainerrors.ErrInvalidRole
	}

	return caller, nil
}
