package repository

import (
	"context"
	"errors"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrMentorNotFound is returned when no mentor profile matches a lookup.
	ErrMentorNotFound = errors.New("mentor not found")
	// ErrDuplicateMentorProfile is returned when a user already owns a profile.
	ErrDuplicateMentorProfile = errors.New("mentor profile already exists for user")
)

// MentorRepository persists mentor profiles. The store guarantees at most one
// profile per user id.
type MentorRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Mentor, error)

	// FindByUserID returns the profile linked to a user, or ErrMentorNotFound.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error)

	// Create inserts a profile. Returns ErrDuplicateMentorProfile when the
	// user is already linked to another profile.
	Create(ctx context.Context, mentor *entity.Mentor) error

	Update(ctx context.Context, mentor *entity.Mentor) error

	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementSessions atomically adds one to the session counter.
	IncrementSessions(ctx context.Context, id uuid.UUID) error

	// ListWithUsers returns every profile joined with its linked user.
	ListWithUsers(ctx context.Context) ([]*entity.MentorWithUser, error)

	// Count returns the number of stored profiles.
	Count(ctx context.Context) (int64, error)
}
