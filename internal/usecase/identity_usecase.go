package usecase

import (
	"context"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentityUsecase maps authenticated users to their role-specific identity.
type IdentityUsecase interface {
	// ResolveMentorProfileID returns the mentor profile owned by the user,
	// creating it from the user's registration data when a mentor-role user
	// has none yet.
	ResolveMentorProfileID(ctx context.Context, callerUserID uuid.UUID) (uuid.UUID, error)

	// ResolveCaller builds the caller identity used by mentor-side operations.
	// Non-mentor users get ErrInvalidRole.
	ResolveCaller(ctx context.Context, user *entity.User) (entity.Caller, error)
}
