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

// bookingRepository implements repository.BookingRepository. Mentor-side
// mutations are single-column updates scoped by mentor_id.
type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository is the constructor for bookingRepository.
func NewBookingRepository(db *gorm.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

func (repo *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	if booking.ID == uuid.Nil {
		booking.ID = uuid.New()
	}

	bookingM := fromBookingDomain(booking)
	if err := repo.db.WithContext(ctx).Omit("Mentor", "Learner").Create(bookingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			if violatedConstraint(err) == bookingsLearnerFK {
				return repository.ErrUserNotFound
			}

			return repository.ErrMentorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create booking")
	}

	booking.CreatedAt = bookingM.CreatedAt

	return nil
}

func (repo *bookingRepository) FindForMentor(ctx context.Context, id, mentorID uuid.UUID) (*entity.Booking, error) {
	return repo.findOne(ctx, "id = ? AND mentor_id = ?", id, mentorID)
}

func (repo *bookingRepository) FindForLearner(ctx context.Context, id, learnerID uuid.UUID) (*entity.Booking, error) {
	return repo.findOne(ctx, "id = ? AND learner_id = ?", id, learnerID)
}

func (repo *bookingRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Booking, error) {
	var bookingM model.BookingModel
	if err := repo.db.WithContext(ctx).
		Preload("Mentor").
		Preload("Learner").
		Where(query, args...).
		First(&bookingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBookingNotFound
		}

		return nil, errors.Wrap(err, "failed to find booking")
	}

	return toBookingDomain(&bookingM), nil
}

func (repo *bookingRepository) SetLink(ctx context.Context, id, mentorID uuid.UUID, link string) error {
	return repo.updateOwned(ctx, id, mentorID, "link", link)
}

func (repo *bookingRepository) MarkCompleted(ctx context.Context, id, mentorID uuid.UUID) error {
	return repo.updateOwned(ctx, id, mentorID, "completed", true)
}

// updateOwned relies on postgres counting matched rows, so re-setting a
// column to its current value still reports one affected row.
func (repo *bookingRepository) updateOwned(ctx context.Context, id, mentorID uuid.UUID, column string, value any) error {
	result := repo.db.WithContext(ctx).Model(&model.BookingModel{}).
		Where("id = ? AND mentor_id = ?", id, mentorID).
		Update(column, value)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update booking "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrBookingNotFound
	}

	return nil
}

func (repo *bookingRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entity.Booking, error) {
	return repo.list(ctx, "Learner", "mentor_id = ?", mentorID)
}

func (repo *bookingRepository) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.Booking, error) {
	return repo.list(ctx, "Mentor", "learner_id = ?", learnerID)
}

func (repo *bookingRepository) list(ctx context.Context, counterpart, query string, arg any) ([]*entity.Booking, error) {
	var bookingMs []model.BookingModel
	if err := repo.db.WithContext(ctx).
		Preload(counterpart).
		Where(query, arg).
		Order("created_at DESC").
		Find(&bookingMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	bookings := make([]*entity.Booking, 0, len(bookingMs))
	for i := range bookingMs {
		bookings = append(bookings, toBookingDomain(&bookingMs[i]))
	}

	return bookings, nil
}

func toBookingDomain(m *model.BookingModel) *entity.Booking {
	booking := &entity.Booking{
		ID:        m.ID,
		MentorID:  m.MentorID,
		LearnerID: m.LearnerID,
		Domain:    m.Domain,
		Date:      m.Date,
		Topic:     m.Topic,
		Link:      m.Link,
		Completed: m.Completed,
		CreatedAt: m.CreatedAt,
	}
	if m.Mentor != nil {
		booking.MentorName = m.Mentor.Name
		booking.MentorAvatar = m.Mentor.Avatar
	}
	if m.Learner != nil {
		booking.LearnerName = m.Learner.FullName
	}

	return booking
}

func fromBookingDomain(b *entity.Booking) *model.BookingModel {
	return &model.BookingModel{
		ID:        b.ID,
		MentorID:  b.MentorID,
		LearnerID: b.LearnerID,
		Domain:    b.Domain,
		Date:      b.Date,
		Topic:     b.Topic,
		Link:      b.Link,
		Completed: b.Completed,
	}
}
