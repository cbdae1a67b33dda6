// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"nextstep/config"
	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/errors"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// IdentityServiceParams holds dependencies for identityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	MentorRepo repository.MentorRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// identityService implements usecase.IdentityUsecase.
type identityService struct {
	userRepo       repository.UserRepository
	mentorRepo     repository.MentorRepository
	lazyHourlyRate float64
	logger         *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	rate := 30.0
	if params.Config != nil && params.Config.Mentor != nil {
		rate = params.Config.Mentor.LazyHourlyRate
	}

	return &identityService{
		userRepo:       params.UserRepo,
		mentorRepo:     params.MentorRepo,
		lazyHourlyRate: rate,
		logger:         params.Logger,
	}
}

// ResolveMentorProfileID may create a mentor profile. Creation races are
// settled by the unique index on mentors.user_id: the loser re-reads the
// winner's row.
func (srv *identityService) ResolveMentorProfileID(ctx context.Context, callerUserID uuid.UUID) (uuid.UUID, error) {
	mentor, err := srv.mentorRepo.FindByUserID(ctx, callerUserID)
	if err == nil {
		return mentor.ID, nil
	}
	if !errors.Is(err, repository.ErrMentorNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to find mentor profile")
	}

	user, err := srv.userRepo.FindByID(ctx, callerUserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return uuid.Nil, domainerrors.ErrUserNotFound.WrapMessage("caller no longer exists")
		}

		return uuid.Nil, errors.Wrap(err, "failed to find user")
	}

	return srv.createLazyProfile(ctx, user)
}

func (srv *identityService) createLazyProfile(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if !user.IsMentor() {
		return uuid.Nil, domainerrors.ErrInvalidRole.WrapMessage("only mentors have a mentor profile")
	}

	mentor := entity.NewLazyMentor(user, srv.lazyHourlyRate)
	if err := srv.mentorRepo.Create(ctx, mentor); err != nil {
		if !errors.Is(err, repository.ErrDuplicateMentorProfile) {
			return uuid.Nil, errors.Wrap(err, "failed to create mentor profile")
		}

		existing, findErr := srv.mentorRepo.FindByUserID(ctx, user.ID)
		if findErr != nil {
			return uuid.Nil, errors.Wrap(findErr, "failed to re-read mentor profile after conflict")
		}

		return existing.ID, nil
	}

	srv.logger.InfoContext(ctx, "Created mentor profile on first access",
		slog.String("userID", user.ID.String()),
		slog.String("mentorID", mentor.ID.String()),
	)

	return mentor.ID, nil
}

func (srv *identityService) ResolveCaller(ctx context.Context, user *entity.User) (entity.Caller, error) {
	caller := entity.Caller{UserID: user.ID, Role: user.Role}
	if !user.IsMentor() {
		return caller, domainerrors.ErrInvalidRole
	}

	mentor, err := srv.mentorRepo.FindByUserID(ctx, user.ID)
	switch {
	case err == nil:
		caller.MentorID = mentor.ID
	case errors.Is(err, repository.ErrMentorNotFound):
		mentorID, createErr := srv.createLazyProfile(ctx, user)
		if createErr != nil {
			return caller, createErr
		}
		caller.MentorID = mentorID
	default:
		return caller, errors.Wrap(err, "failed to find mentor profile")
	}

	return caller, nil
}
