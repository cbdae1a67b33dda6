package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/errors"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
)

// conversationService implements usecase.ConversationUsecase.
type conversationService struct {
	threadRepo repository.ThreadRepository
	mentorRepo repository.MentorRepository
	logger     *slog.Logger
	now        func() time.Time
}

// NewConversationService is the constructor for conversationService.
func NewConversationService(
	threadRepo repository.ThreadRepository,
	mentorRepo repository.MentorRepository,
	logger *slog.Logger,
) usecase.ConversationUsecase {
	return &conversationService{
		threadRepo: threadRepo,
		mentorRepo: mentorRepo,
		logger:     logger,
		now:        time.Now,
	}
}

func (srv *conversationService) SendAsLearner(ctx context.Context, learnerUserID, mentorID uuid.UUID, subject, text string) (*entity.Thread, error) {
	mentor, err := srv.mentorRepo.FindByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, repository.ErrMentorNotFound) {
			return nil, domainerrors.ErrMentorNotFound
		}

		return nil, errors.Wrap(err, "failed to find mentor")
	}

	subject = strings.TrimSpace(subject)
	text = strings.TrimSpace(text)
	if subject == "" || text == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("subject and message are required")
	}

	now := srv.now()
	thread := &entity.Thread{
		MentorID:  mentor.ID,
		LearnerID: learnerUserID,
		Subject:   subject,
		Messages: []entity.ThreadMessage{
			{From: entity.SenderLearner, Text: text, Timestamp: now},
		},
		MentorName: mentor.Name,
	}
	if err := srv.threadRepo.Create(ctx, thread); err != nil {
		return nil, mapReferenceErr(err, "failed to create thread")
	}

	srv.logger.InfoContext(ctx, "Thread opened",
		slog.String("threadID", thread.ID.String()),
		slog.String("mentorID", mentor.ID.String()),
		slog.String("learnerID", learnerUserID.String()),
	)

	return thread, nil
}

func (srv *conversationService) ReplyAsMentor(ctx context.Context, caller entity.Caller, threadID uuid.UUID, text string) (*entity.Thread, error) {
	if !caller.IsMentor() {
		return nil, domainerrors.ErrInvalidRole
	}

	return srv.reply(ctx, text, entity.SenderMentor, func() (*entity.Thread, error) {
		return srv.threadRepo.FindForMentor(ctx, threadID, caller.MentorID)
	})
}

func (srv *conversationService) ReplyAsLearner(ctx context.Context, learnerUserID, threadID uuid.UUID, text string) (*entity.Thread, error) {
	return srv.reply(ctx, text, entity.SenderLearner, func() (*entity.Thread, error) {
		return srv.threadRepo.FindForLearner(ctx, threadID, learnerUserID)
	})
}

// reply validates the text before touching the store, then loads the thread
// through an ownership-scoped finder so foreign threads read as missing.
func (srv *conversationService) reply(ctx context.Context, text string, from entity.Sender, find func() (*entity.Thread, error)) (*entity.Thread, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("reply text cannot be empty")
	}

	thread, err := find()
	if err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return nil, domainerrors.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to find thread")
	}

	msg := entity.ThreadMessage{From: from, Text: text, Timestamp: srv.now()}
	if err := srv.threadRepo.AppendMessage(ctx, thread.ID, &msg); err != nil {
		if errors.Is(err, repository.ErrThreadNotFound) {
			return nil, domainerrors.ErrThreadNotFound
		}

		return nil, errors.Wrap(err, "failed to append message")
	}

	thread.Messages = append(thread.Messages, msg)
	thread.UpdatedAt = msg.Timestamp

	return thread, nil
}

func (srv *conversationService) ListForMentor(ctx context.Context, caller entity.Caller) ([]*entity.Thread, error) {
	if !caller.IsMentor() {
		return nil, domainerrors.ErrInvalidRole
	}

	threads, err := srv.threadRepo.ListByMentor(ctx, caller.MentorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list mentor threads")
	}

	return threads, nil
}

func (srv *conversationService) ListForLearner(ctx context.Context, learnerUserID uuid.UUID) ([]*entity.Thread, error) {
	threads, err := srv.threadRepo.ListByLearner(ctx, learnerUserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list learner threads")
	}

	return threads, nil
}
