package usecase

import (
	"context"

	"nextstep/internal/domain/entity"
)

// AuthUsecase is the access-control gate in front of every protected route.
type AuthUsecase interface {
	// Authenticate verifies an Authorization header value of the form
	// "Bearer <token>" and returns the user it names. It never mutates state.
	Authenticate(ctx context.Context, authorizationHeader string) (*entity.User, error)
}
