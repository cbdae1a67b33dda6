// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase covers registration, verification, login and profile upkeep.
type UserUsecase interface {
	// Register creates an unverified user, a mentor profile for mentor-role
	// users, and emails a verification code. A failure after the user is
	// stored removes everything created in the call.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	VerifyOTP(ctx context.Context, input *VerifyOTPInput) (*AuthOutput, error)
	ResendOTP(ctx context.Context, email string) error
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

// --- Input DTOs ---

// RegisterInput carries the common and role-specific registration fields.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
	Role     entity.Role

	Expertise  string
	Experience int
	Domain     string
	LinkedIn   string
	GitHub     string
	WhyMentor  string

	College  string
	GradYear int

	DomainInterest []string
}

type VerifyOTPInput struct {
	Email string
	Code  string
}

type LoginInput struct {
	Email    string
	Password string
}

// UpdateProfileInput uses nil to mean "leave unchanged".
type UpdateProfileInput struct {
	FullName       *string
	Expertise      *string
	Experience     *int
	Domain         *string
	LinkedIn       *string
	GitHub         *string
	WhyMentor      *string
	College        *string
	GradYear       *int
	DomainInterest []string
}

// --- Output DTOs ---

type RegisterOutput struct {
	User   *entity.User   `json:"user"`
	Mentor *entity.Mentor `json:"mentor,omitempty"`
}

type AuthOutput struct {
	Token string `json:"token"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64        `json:"expiresIn"`
	User      *entity.User `json:"user"`
}
