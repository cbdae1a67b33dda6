package middleware

import (
	"slices"

	deliverycontext "nextstep/internal/delivery/context"
	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC     usecase.AuthUsecase
	IdentityUC usecase.IdentityUsecase
}

// AuthMiddleware authenticates requests and gates routes by role.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	identityUC usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		authUC:     params.AuthUC,
		identityUC: params.IdentityUC,
	}
}

// Authenticate validates the bearer token and stores the caller's user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := m.authUC.Authenticate(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

// RequireRole only lets users holding one of roles through.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := deliverycontext.GetUser(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !slices.Contains(roles, user.Role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// RequireMentor resolves the caller's mentor profile once per request,
// creating it on first access.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireMentor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := deliverycontext.GetUser(c)
		if !ok {
			return domainerrors.ErrUnauthorized
		}

		caller, err := m.identityUC.ResolveCaller(c.Request().Context(), user)
		if err != nil {
			return err
		}

		deliverycontext.SetCaller(c, caller)

		return next(c)
	}
}
