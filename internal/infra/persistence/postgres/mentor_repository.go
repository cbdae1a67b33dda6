package postgres

import (
	"context"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/errors"
	"nextstep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// mentorRepository implements repository.MentorRepository.
type mentorRepository struct {
	db *gorm.DB
}

// NewMentorRepository is the constructor for mentorRepository.
func NewMentorRepository(db *gorm.DB) repository.MentorRepository {
	return &mentorRepository{db: db}
}

func (repo *mentorRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Mentor, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *mentorRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Mentor, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *mentorRepository) findOne(ctx context.Context, query string, arg any) (*entity.Mentor, error) {
	var mentorM model.MentorModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&mentorM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMentorNotFound
		}

		return nil, errors.Wrap(err, "failed to find mentor")
	}

	return toMentorDomain(&mentorM), nil
}

func (repo *mentorRepository) Create(ctx context.Context, mentor *entity.Mentor) error {
	if mentor.ID == uuid.Nil {
		mentor.ID = uuid.New()
	}

	mentorM := fromMentorDomain(mentor)
	if err := repo.db.WithContext(ctx).Omit("User").Create(mentorM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateMentorProfile
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrMentorCreationFailed.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create mentor")
	}

	mentor.CreatedAt = mentorM.CreatedAt
	mentor.UpdatedAt = mentorM.UpdatedAt

	return nil
}

func (repo *mentorRepository) Update(ctx context.Context, mentor *entity.Mentor) error {
	mentorM := fromMentorDomain(mentor)
	result := repo.db.WithContext(ctx).Model(&model.MentorModel{}).
		Where("id = ?", mentor.ID).
		Select("*").Omit("id", "user_id", "sessions", "created_at", "User").
		Updates(mentorM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update mentor")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMentorNotFound
	}

	return nil
}

func (repo *mentorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MentorModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete mentor")
	}

	return nil
}

// IncrementSessions does the addition in SQL so concurrent bookings never
// lose an increment.
func (repo *mentorRepository) IncrementSessions(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Model(&model.MentorModel{}).
		Where("id = ?", id).
		UpdateColumn("sessions", gorm.Expr("sessions + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment mentor sessions")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMentorNotFound
	}

	return nil
}

func (repo *mentorRepository) ListWithUsers(ctx context.Context) ([]*entity.MentorWithUser, error) {
	var mentorMs []model.MentorModel
	if err := repo.db.WithContext(ctx).
		Preload("User").
		Order("created_at DESC").
		Find(&mentorMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list mentors")
	}

	result := make([]*entity.MentorWithUser, 0, len(mentorMs))
	for i := range mentorMs {
		result = append(result, &entity.MentorWithUser{
			Mentor: toMentorDomain(&mentorMs[i]),
			User:   toUserDomain(mentorMs[i].User),
		})
	}

	return result, nil
}

func (repo *mentorRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.MentorModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count mentors")
	}

	return count, nil
}

func toMentorDomain(m *model.MentorModel) *entity.Mentor {
	return &entity.Mentor{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Title:        m.Title,
		Company:      m.Company,
		Avatar:       m.Avatar,
		Rating:       m.Rating,
		Sessions:     m.Sessions,
		Skills:       nonNilStrings(m.Skills),
		Domain:       m.Domain,
		HourlyRate:   m.HourlyRate,
		Bio:          m.Bio,
		LinkedIn:     m.LinkedIn,
		GitHub:       m.GitHub,
		Experience:   m.Experience,
		Availability: m.Availability,
		Languages:    nonNilStrings(m.Languages),
		Education:    nonNilStrings(m.Education),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func fromMentorDomain(m *entity.Mentor) *model.MentorModel {
	return &model.MentorModel{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Title:        m.Title,
		Company:      m.Company,
		Avatar:       m.Avatar,
		Rating:       m.Rating,
		Sessions:     m.Sessions,
		Skills:       nonNilStrings(m.Skills),
		Domain:       m.Domain,
		HourlyRate:   m.HourlyRate,
		Bio:          m.Bio,
		LinkedIn:     m.LinkedIn,
		GitHub:       m.GitHub,
		Experience:   m.Experience,
		Availability: m.Availability,
		Languages:    nonNilStrings(m.Languages),
		Education:    nonNilStrings(m.Education),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
