package repository

import (
	"context"
	"errors"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrThreadNotFound is returned when no thread matches both id and participant.
var ErrThreadNotFound = errors.New("thread not found")

// ThreadRepository persists conversation threads and their message log.
type ThreadRepository interface {
	// Create inserts a thread together with its seed messages.
	Create(ctx context.Context, thread *entity.Thread) error

	// FindForMentor loads a thread only if it belongs to the mentor profile.
	FindForMentor(ctx context.Context, id, mentorID uuid.UUID) (*entity.Thread, error)

	// FindForLearner loads a thread only if it belongs to the learner.
	FindForLearner(ctx context.Context, id, learnerID uuid.UUID) (*entity.Thread, error)

	// AppendMessage adds one message to the end of a thread's log as a single
	// insert, so concurrent appenders never overwrite each other.
	AppendMessage(ctx context.Context, threadID uuid.UUID, msg *entity.ThreadMessage) error

	// ListByMentor returns the mentor's threads with learner names.
	ListByMentor(ctx context.Context, mentorID uuid.UUID) ([]*entity.Thread, error)

	// ListByLearner returns the learner's threads with mentor names.
	ListByLearner(ctx context.Context, learnerID uuid.UUID) ([]*entity.Thread, error)
}
