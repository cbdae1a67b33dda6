package impl

import (
	"context"
	"testing"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	mockRepo "nextstep/internal/mocks/repository"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type identityServiceFixtures struct {
	service    usecase.IdentityUsecase
	userRepo   *mockRepo.MockUserRepository
	mentorRepo *mockRepo.MockMentorRepository
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	mentorRepo := mockRepo.NewMockMentorRepository(t)

	return identityServiceFixtures{
		service: NewIdentityService(IdentityServiceParams{
			UserRepo:   userRepo,
			MentorRepo: mentorRepo,
			Config:     newTestConfig(),
			Logger:     newDiscardLogger(),
		}),
		userRepo:   userRepo,
		mentorRepo: mentorRepo,
	}
}

func TestIdentityService_ResolveMentorProfileID_Existing(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	userID := uuid.New()
	mentorID := uuid.New()

	fx.mentorRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.Mentor{ID: mentorID}, nil)

	got, err := fx.service.ResolveMentorProfileID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, mentorID, got)
}

func TestIdentityService_ResolveMentorProfileID_CreatesOnceThenReuses(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FullName: "Ada", Role: entity.RoleMentor, Expertise: "Go"}

	var created *entity.Mentor
	fx.mentorRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrMentorNotFound).Once()
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()
	fx.mentorRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Mentor")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*entity.Mentor)
			created.ID = uuid.New()
		}).
		Return(nil).
		Once()

	first, err := fx.service.ResolveMentorProfileID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, created.ID, first)
	assert.Equal(t, "Go", created.Title)
	assert.InDelta(t, 30.0, created.HourlyRate, 0.001)
	assert.Equal(t, user.ID, *created.UserID)

	fx.mentorRepo.EXPECT().FindByUserID(ctx, user.ID).Return(created, nil).Once()

	second, err := fx.service.ResolveMentorProfileID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestIdentityService_ResolveMentorProfileID_LosesCreateRace(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FullName: "Ada", Role: entity.RoleMentor}
	winner := &entity.Mentor{ID: uuid.New()}

	fx.mentorRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrMentorNotFound).Once()
	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	fx.mentorRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateMentorProfile)
	fx.mentorRepo.EXPECT().FindByUserID(ctx, user.ID).Return(winner, nil).Once()

	got, err := fx.service.ResolveMentorProfileID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, winner.ID, got)
}

func TestIdentityService_ResolveMentorProfileID_UserMissing(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.mentorRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrMentorNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.ResolveMentorProfileID(ctx, userID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestIdentityService_ResolveMentorProfileID_LearnerRejected(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	learner := &entity.User{ID: uuid.New(), Role: entity.RoleLearner}

	fx.mentorRepo.EXPECT().FindByUserID(ctx, learner.ID).Return(nil, repository.ErrMentorNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, learner.ID).Return(learner, nil)

	_, err := fx.service.ResolveMentorProfileID(ctx, learner.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
}

func TestIdentityService_ResolveMentorProfileID_StoreError(t *testing.T) {
	fx := createTestIdentityService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.mentorRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, errors.New("connection reset"))

	_, err := fx.service.ResolveMentorProfileID(ctx, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find mentor profile")
}

func TestIdentityService_ResolveCaller(t *testing.T) {
	t.Run("mentor with profile", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Role: entity.RoleMentor}
		mentorID := uuid.New()

		fx.mentorRepo.EXPECT().FindByUserID(ctx, user.ID).Return(&entity.Mentor{ID: mentorID}, nil)

		caller, err := fx.service.ResolveCaller(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, mentorID, caller.MentorID)
		assert.True(t, caller.IsMentor())
	})

	t.Run("mentor without profile gets one", func(t *testing.T) {
		fx := createTestIdentityService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Role: entity.RoleMentor, FullName: "Bo"}

		fx.mentorRepo.EXPECT().FindByUserID(ctx, user.ID).Return(nil, repository.ErrMentorNotFound)
		fx.mentorRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.Mentor")).
			Run(func(args mock.Arguments) { args.Get(1).(*entity.Mentor).ID = uuid.New() }).
			Return(nil)

		caller, err := fx.service.ResolveCaller(ctx, user)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, caller.MentorID)
	})

	t.Run("learner is rejected without touching the store", func(t *testing.T) {
		fx := createTestIdentityService(t)

		_, err := fx.service.ResolveCaller(context.Background(), &entity.User{ID: uuid.New(), Role: entity.RoleLearner})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	})
}
