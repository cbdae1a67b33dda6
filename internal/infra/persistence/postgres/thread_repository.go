package postgres

import (
	"context"
	"time"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/errors"
	"nextstep/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// threadRepository implements repository.ThreadRepository. Messages live in
// their own table so appending never rewrites the thread row's history.
type threadRepository struct {
	db *gorm.DB
}

// NewThreadRepository is the constructor for threadRepository.
func NewThreadRepository(db *gorm.DB) repository.ThreadRepository {
	return &threadRepository{db: db}
}

func orderedMessages(db *gorm.DB) *gorm.DB {
	return db.Order("seq ASC")
}

func (repo *threadRepository) Create(ctx context.Context, thread *entity.Thread) error {
	if thread.ID == uuid.Nil {
		thread.ID = uuid.New()
	}

	threadM := fromThreadDomain(thread)
	if err := repo.db.WithContext(ctx).Omit("Mentor", "Learner").Create(threadM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			if violatedConstraint(err) == threadsLearnerFK {
				return repository.ErrUserNotFound
			}

			return repository.ErrMentorNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create thread")
	}

	thread.CreatedAt = threadM.CreatedAt
	thread.UpdatedAt = threadM.UpdatedAt

	return nil
}

func (repo *threadRepository) FindForMentor(ctx context.Context, id, mentorID uuid.UUID) (*entity.Thread, error) {
	return repo.findOne(ctx, "id = ? AND mentor_id = ?", id, mentorID)
}

func (repo *threadRepository) FindForLearner(ctx context.Context, id, learnerID uuid.UUID) (*entity.Thread, error) {
	return repo.findOne(ctx, "id = ? AND learner_id = ?", id, learnerID)
}

func (repo *threadRepository) findOne(ctx context.Context, query string, args ...any) (*entity.Thread, error) {
	var threadM model.ThreadModel
	if err := repo.db.WithContext(ctx).
		Preload("Messages", orderedMessages).
		Preload("Mentor").
		Preload("Learner").
		Where(query, args...).
		First(&threadM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread")
	}

	return toThreadDomain(&threadM), nil
}

// AppendMessage inserts the message and bumps the thread's updated_at in one
// transaction.
func (repo *threadRepository) AppendMessage(ctx context.Context, threadID uuid.UUID, msg *entity.ThreadMessage) error {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		messageM := &model.ThreadMessageModel{
			ThreadID:  threadID,
			Sender:    string(msg.From),
			Body:      msg.Text,
			CreatedAt: msg.Timestamp,
		}
		if err := tx.Create(messageM).Error; err != nil {
			return err
		}

		return tx.Model(&model.ThreadModel{}).
			Where("id = ?", threadID).
			UpdateColumn("updated_at", msg.Timestamp).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrThreadNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append message")
	}

	return nil
}

func (repo *threadRepository) ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entity.Thread, error) {
	return repo.list(ctx, "Learner", "mentor_id = ?", mentorID)
}

func (repo *threadRepository) ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.Thread, error) {
	return repo.list(ctx, "Mentor", "learner_id = ?", learnerID)
}

func (repo *threadRepository) list(ctx context.Context, counterpart, query string, arg any) ([]*entity.Thread, error) {
	var threadMs []model.ThreadModel
	if err := repo.db.WithContext(ctx).
		Preload("Messages", orderedMessages).
		Preload(counterpart).
		Where(query, arg).
		Order("updated_at DESC").
		Find(&threadMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list threads")
	}

	threads := make([]*entity.Thread, 0, len(threadMs))
	for i := range threadMs {
		threads = append(threads, toThreadDomain(&threadMs[i]))
	}

	return threads, nil
}

func toThreadDomain(m *model.ThreadModel) *entity.Thread {
	thread := &entity.Thread{
		ID:        m.ID,
		MentorID:  m.MentorID,
		LearnerID: m.LearnerID,
		Subject:   m.Subject,
		Messages:  make([]entity.ThreadMessage, 0, len(m.Messages)),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	for _, msg := range m.Messages {
		thread.Messages = append(thread.Messages, entity.ThreadMessage{
			From:      entity.Sender(msg.Sender),
			Text:      msg.Body,
			Timestamp: msg.CreatedAt,
		})
	}
	if m.Mentor != nil {
		thread.MentorName = m.Mentor.Name
	}
	if m.Learner != nil {
		thread.LearnerName = m.Learner.FullName
	}

	return thread
}

func fromThreadDomain(t *entity.Thread) *model.ThreadModel {
	threadM := &model.ThreadModel{
		ID:        t.ID,
		MentorID:  t.MentorID,
		LearnerID: t.LearnerID,
		Subject:   t.Subject,
		Messages:  make([]model.ThreadMessageModel, 0, len(t.Messages)),
	}
	for _, msg := range t.Messages {
		threadM.Messages = append(threadM.Messages, model.ThreadMessageModel{
			ThreadID:  t.ID,
			Sender:    string(msg.From),
			Body:      msg.Text,
			CreatedAt: msg.Timestamp,
		})
	}

	return threadM
}
