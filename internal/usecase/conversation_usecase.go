package usecase

import (
	"context"

	"nextstep/internal/domain/entity"

	"github.com/google/uuid"
)

// ConversationUsecase manages mentor/learner message threads. Mentor-side
// methods take a caller already resolved to a mentor profile.
type ConversationUsecase interface {
	// SendAsLearner always opens a new thread; repeated first contacts with
	// the same mentor produce separate threads.
	SendAsLearner(ctx context.Context, learnerUserID, mentorID uuid.UUID, subject, text string) (*entity.Thread, error)
	ReplyAsMentor(ctx context.Context, caller entity.Caller, threadID uuid.UUID, text string) (*entity.Thread, error)
	ReplyAsLearner(ctx context.Context, learnerUserID, threadID uuid.UUID, text string) (*entity.Thread, error)
	ListForMentor(ctx context.Context, caller entity.Caller) ([]*entity.Thread, error)
	ListForLearner(ctx context.Context, learnerUserID uuid.UUID) ([]*entity.Thread, error)
}
