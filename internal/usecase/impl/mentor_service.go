package impl

import (
	"context"
	"log/slog"
	"strings"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/errors"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
)

// mentorService implements usecase.MentorUsecase.
type mentorService struct {
	mentorRepo repository.MentorRepository
	userRepo   repository.UserRepository
	logger     *slog.Logger
}

// NewMentorService is the constructor for mentorService.
func NewMentorService(
	mentorRepo repository.MentorRepository,
	userRepo repository.UserRepository,
	logger *slog.Logger,
) usecase.MentorUsecase {
	return &mentorService{
		mentorRepo: mentorRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (srv *mentorService) List(ctx context.Context) ([]*entity.MentorSummary, error) {
	rows, err := srv.mentorRepo.ListWithUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mentors")
	}

	summaries := make([]*entity.MentorSummary, 0, len(rows))
	for _, row := range rows {
		summaries = append(summaries, entity.MergeMentorWithUser(row))
	}

	return summaries, nil
}

func (srv *mentorService) GetByID(ctx context.Context, mentorID uuid.UUID) (*entity.MentorSummary, error) {
	mentor, err := srv.mentorRepo.FindByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrMentorNotFound) {
			return nil, domainerrors.ErrMentorNotFound
		}

		return nil, errors.Wrap(err, "failed to find mentor")
	}

	row := &entity.MentorWithUser{Mentor: mentor}
	if mentor.UserID != nil {
		user, err := srv.userRepo.FindByID(ctx, *mentor.UserID)
		switch {
		case err == nil:
			row.User = user
		case errors.Is(err, repository.ErrUserNotFound):
			// profile outlived its user; serve the stored copy
		default:
			return nil, errors.Wrap(err, "failed to find mentor user")
		}
	}

	return entity.MergeMentorWithUser(row), nil
}

func (srv *mentorService) Add(ctx context.Context, input *usecase.AddMentorInput) (*entity.Mentor, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("name is required")
	}

	mentor := &entity.Mentor{
		Name:         name,
		Title:        orDefault(input.Title, entity.DefaultMentorTitle),
		Company:      orDefault(input.Company, entity.DefaultMentorCompany),
		Avatar:       orDefault(input.Avatar, entity.GeneratedAvatarURL(name)),
		Rating:       input.Rating,
		Skills:       nonNil(input.Skills),
		Domain:       orDefault(input.Domain, entity.DefaultMentorDomain),
		HourlyRate:   input.HourlyRate,
		Bio:          orDefault(input.Bio, entity.DefaultMentorBio),
		LinkedIn:     strings.TrimSpace(input.LinkedIn),
		GitHub:       strings.TrimSpace(input.GitHub),
		Experience:   input.Experience,
		Availability: orDefault(input.Availability, entity.DefaultMentorAvailability),
		Languages:    nonNil(input.Languages),
		Education:    nonNil(input.Education),
	}
	if len(mentor.Languages) == 0 {
		mentor.Languages = []string{entity.DefaultMentorLanguage}
	}

	if err := srv.mentorRepo.Create(ctx, mentor); err != nil {
		return nil, domainerrors.ErrMentorCreationFailed.WrapMessage(err.Error())
	}

	srv.logger.InfoContext(ctx, "Mentor added", slog.String("mentorID", mentor.ID.String()))

	return mentor, nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}

	return fallback
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
