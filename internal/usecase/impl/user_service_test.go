package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/domain/service"
	mockRepo "nextstep/internal/mocks/repository"
	mockSvc "nextstep/internal/mocks/service"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service    *userService
	userRepo   *mockRepo.MockUserRepository
	mentorRepo *mockRepo.MockMentorRepository
	txManager  *mockRepo.MockTransactionManager
	hasher     *mockSvc.MockPasswordHasher
	tokens     *mockSvc.MockTokenService
	otp        *mockSvc.MockOTPGenerator
	mailer     *mockSvc.MockEmailSender
	now        time.Time
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		userRepo:   mockRepo.NewMockUserRepository(t),
		mentorRepo: mockRepo.NewMockMentorRepository(t),
		txManager:  mockRepo.NewMockTransactionManager(t),
		hasher:     mockSvc.NewMockPasswordHasher(t),
		tokens:     mockSvc.NewMockTokenService(t),
		otp:        mockSvc.NewMockOTPGenerator(t),
		mailer:     mockSvc.NewMockEmailSender(t),
		now:        time.Date(2025, 1, 10, 14, 0, 0, 0, time.UTC),
	}

	fx.service = NewUserService(UserServiceParams{
		UserRepo:     fx.userRepo,
		MentorRepo:   fx.mentorRepo,
		TxManager:    fx.txManager,
		Hasher:       fx.hasher,
		TokenService: fx.tokens,
		OTP:          fx.otp,
		Mailer:       fx.mailer,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	}).(*userService)
	fx.service.now = func() time.Time { return fx.now }

	return fx
}

func (fx userServiceFixtures) expectRegistrationPrelude(ctx context.Context, email string) {
	fx.userRepo.EXPECT().FindByEmail(ctx, email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("s3cret!").Return("hashed", nil)
	fx.otp.EXPECT().Generate().Return("123456", nil)
	fx.otp.EXPECT().Hash("123456").Return("otp-hash")
}

func assignUserID(args mock.Arguments) {
	args.Get(1).(*entity.User).ID = uuid.New()
}

func TestUserService_Register_Learner(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectRegistrationPrelude(ctx, "ada@example.com")
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Run(assignUserID).Return(nil)
	fx.mailer.EXPECT().
		Send(ctx, mock.MatchedBy(func(e *service.Email) bool {
			return e.To == "ada@example.com" && strings.Contains(e.HTML, "123456")
		})).
		Return(nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Ada",
		Email:    "  Ada@Example.com ",
		Password: "s3cret!",
		Role:     entity.RoleLearner,
		College:  "MIT",
	})
	require.NoError(t, err)
	assert.Nil(t, out.Mentor)
	assert.Equal(t, "ada@example.com", out.User.Email)
	assert.False(t, out.User.IsVerified)
	assert.Equal(t, "otp-hash", out.User.OTPHash)
	require.NotNil(t, out.User.OTPExpiresAt)
	assert.Equal(t, fx.now.Add(10*time.Minute), *out.User.OTPExpiresAt)
}

func TestUserService_Register_MentorCreatesProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectRegistrationPrelude(ctx, "grace@example.com")
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Run(assignUserID).Return(nil)
	fx.mentorRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Mentor")).Return(nil)
	fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(nil)

	out, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName:  "Grace Hopper",
		Email:     "grace@example.com",
		Password:  "s3cret!",
		Role:      entity.RoleMentor,
		Expertise: "Compilers",
	})
	require.NoError(t, err)
	require.NotNil(t, out.Mentor)
	assert.Equal(t, out.User.ID, *out.Mentor.UserID)
	assert.Equal(t, entity.RegisteredMentorCompany, out.Mentor.Company)
	assert.Equal(t, entity.RegisteredMentorBio, out.Mentor.Bio)
	assert.Equal(t, []string{"Compilers"}, out.Mentor.Skills)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{FullName: "Ada", Email: "ada@example.com", Password: "x", Role: entity.RoleLearner})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_DuplicateEmailRace(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectRegistrationPrelude(ctx, "ada@example.com")
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{FullName: "Ada", Email: "ada@example.com", Password: "s3cret!", Role: entity.RoleLearner})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Register_MentorProfileFailureRemovesUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	var userID uuid.UUID

	fx.expectRegistrationPrelude(ctx, "grace@example.com")
	fx.userRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			userID = uuid.New()
			args.Get(1).(*entity.User).ID = userID
		}).
		Return(nil)
	fx.mentorRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))
	fx.userRepo.EXPECT().Delete(ctx, mock.AnythingOfType("uuid.UUID")).
		Run(func(args mock.Arguments) { assert.Equal(t, userID, args.Get(1)) }).
		Return(nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{FullName: "Grace", Email: "grace@example.com", Password: "s3cret!", Role: entity.RoleMentor})
	assert.ErrorIs(t, err, domainerrors.ErrMentorCreationFailed)
	fx.mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestUserService_Register_EmailFailureRemovesEverything(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.expectRegistrationPrelude(ctx, "grace@example.com")
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Run(assignUserID).Return(nil)
	fx.mentorRepo.EXPECT().
		Create(ctx, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*entity.Mentor).ID = uuid.New() }).
		Return(nil)
	fx.mailer.EXPECT().Send(ctx, mock.Anything).Return(errors.New("smtp: 535 auth failed"))
	fx.mentorRepo.EXPECT().Delete(ctx, mock.Anything).Return(nil).Once()
	fx.userRepo.EXPECT().Delete(ctx, mock.Anything).Return(nil).Once()

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{FullName: "Grace", Email: "grace@example.com", Password: "s3cret!", Role: entity.RoleMentor})
	assert.ErrorIs(t, err, domainerrors.ErrEmailDeliveryFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestUserService_Register_InvalidInput(t *testing.T) {
	fx := createTestUserService(t)

	tests := []struct {
		name  string
		input *usecase.RegisterInput
	}{
		{"missing name", &usecase.RegisterInput{Email: "a@b.c", Password: "x", Role: entity.RoleLearner}},
		{"missing email", &usecase.RegisterInput{FullName: "A", Password: "x", Role: entity.RoleLearner}},
		{"missing password", &usecase.RegisterInput{FullName: "A", Email: "a@b.c", Role: entity.RoleLearner}},
		{"admin self-registration", &usecase.RegisterInput{FullName: "A", Email: "a@b.c", Password: "x", Role: entity.RoleAdmin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.Register(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
		})
	}
}

func TestUserService_VerifyOTP(t *testing.T) {
	ctx := context.Background()

	newPending := func(now time.Time) *entity.User {
		expires := now.Add(5 * time.Minute)

		return &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleLearner, OTPHash: "otp-hash", OTPExpiresAt: &expires}
	}

	t.Run("valid code verifies and logs in", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newPending(fx.now)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.otp.EXPECT().Hash("123456").Return("otp-hash")
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
		fx.tokens.EXPECT().GenerateToken(user.ID, "learner").Return("jwt", nil)
		fx.tokens.EXPECT().TTL().Return(30 * 24 * time.Hour)

		out, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: "ada@example.com", Code: "123456"})
		require.NoError(t, err)
		assert.Equal(t, "jwt", out.Token)
		assert.Equal(t, int64(30*24*60*60), out.ExpiresIn)
		assert.True(t, out.User.IsVerified)
		assert.Empty(t, out.User.OTPHash)
		assert.Nil(t, out.User.OTPExpiresAt)
	})

	t.Run("wrong code", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newPending(fx.now)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.otp.EXPECT().Hash("000000").Return("other-hash")

		_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: "ada@example.com", Code: "000000"})
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})

	t.Run("expired code", func(t *testing.T) {
		fx := createTestUserService(t)
		user := newPending(fx.now.Add(-time.Hour))

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)

		_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: "ada@example.com", Code: "123456"})
		assert.ErrorIs(t, err, domainerrors.ErrOTPInvalid)
	})

	t.Run("already verified", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{IsVerified: true}, nil)

		_, err := fx.service.VerifyOTP(ctx, &usecase.VerifyOTPInput{Email: "ada@example.com", Code: "123456"})
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyVerified)
	})
}

func TestUserService_ResendOTP(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", OTPHash: "old"}

	fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
	fx.otp.EXPECT().Generate().Return("654321", nil)
	fx.otp.EXPECT().Hash("654321").Return("new-hash")
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
	fx.mailer.EXPECT().Send(ctx, mock.AnythingOfType("*service.Email")).Return(nil)

	err := fx.service.ResendOTP(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.OTPHash)
	assert.Equal(t, fx.now.Add(10*time.Minute), *user.OTPExpiresAt)
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("verified user gets a token", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hashed", Role: entity.RoleMentor, IsVerified: true}

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("s3cret!", "hashed").Return(true)
		fx.tokens.EXPECT().GenerateToken(user.ID, "mentor").Return("jwt", nil)
		fx.tokens.EXPECT().TTL().Return(30 * 24 * time.Hour)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "s3cret!"})
		require.NoError(t, err)
		assert.Equal(t, "jwt", out.Token)
		assert.Equal(t, int64(30*24*60*60), out.ExpiresIn)
		assert.Equal(t, user, out.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{PasswordHash: "hashed", IsVerified: true}, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "nope"})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unverified", func(t *testing.T) {
		fx := createTestUserService(t)

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(&entity.User{PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("s3cret!", "hashed").Return(true)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ada@example.com", Password: "s3cret!"})
		assert.ErrorIs(t, err, domainerrors.ErrEmailNotVerified)
	})
}

func TestUserService_UpdateProfile_SyncsMentorProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FullName: "Old", Role: entity.RoleMentor, Expertise: "Go"}
	mentor := &entity.Mentor{ID: uuid.New(), Name: "Old", Title: "Go"}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUsers := mockRepo.NewMockUserRepository(t)
	txMentors := mockRepo.NewMockMentorRepository(t)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error { return fn(factory) })
	factory.EXPECT().NewUserRepository().Return(txUsers)
	factory.EXPECT().NewMentorRepository().Return(txMentors)
	txUsers.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	txUsers.EXPECT().Update(ctx, user).Return(nil)
	txMentors.EXPECT().FindByUserID(ctx, user.ID).Return(mentor, nil)
	txMentors.EXPECT().Update(ctx, mentor).Return(nil)

	name := "New Name"
	title := "Rust"
	got, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{FullName: &name, Expertise: &title})
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.FullName)
	assert.Equal(t, "New Name", mentor.Name)
	assert.Equal(t, "Rust", mentor.Title)
}

func TestUserService_UpdateProfile_LearnerSkipsMentorSync(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), FullName: "Ada", Role: entity.RoleLearner}

	factory := mockRepo.NewMockRepositoryFactory(t)
	txUsers := mockRepo.NewMockUserRepository(t)

	fx.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error { return fn(factory) })
	factory.EXPECT().NewUserRepository().Return(txUsers)
	txUsers.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
	txUsers.EXPECT().Update(ctx, user).Return(nil)

	got, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{DomainInterest: []string{"AI", "Web"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"AI", "Web"}, got.DomainInterest)
}

func TestUserService_UpdateProfile_EmptyName(t *testing.T) {
	fx := createTestUserService(t)
	blank := "  "

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{FullName: &blank})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidArgument)
}

func TestUserService_OTPEmailEscapesFullName(t *testing.T) {
	const name = `<a href="https://evil.example">Reset your password</a>`

	assertEscaped := func(t *testing.T, email *service.Email) {
		t.Helper()
		assert.NotContains(t, email.HTML, `<a href=`)
		assert.Contains(t, email.HTML, "&lt;a href=")
		assert.Contains(t, email.HTML, "<strong>123456</strong>")
	}

	t.Run("register", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		var sent *service.Email

		fx.expectRegistrationPrelude(ctx, "ada@example.com")
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Run(assignUserID).Return(nil)
		fx.mailer.EXPECT().
			Send(ctx, mock.AnythingOfType("*service.Email")).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*service.Email) }).
			Return(nil)

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{
			FullName: name,
			Email:    "ada@example.com",
			Password: "s3cret!",
			Role:     entity.RoleLearner,
		})
		require.NoError(t, err)
		require.NotNil(t, sent)
		assertEscaped(t, sent)
	})

	t.Run("resend", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		user := &entity.User{ID: uuid.New(), Email: "ada@example.com", FullName: name}
		var sent *service.Email

		fx.userRepo.EXPECT().FindByEmail(ctx, "ada@example.com").Return(user, nil)
		fx.otp.EXPECT().Generate().Return("123456", nil)
		fx.otp.EXPECT().Hash("123456").Return("otp-hash")
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)
		fx.mailer.EXPECT().
			Send(ctx, mock.AnythingOfType("*service.Email")).
			Run(func(args mock.Arguments) { sent = args.Get(1).(*service.Email) }).
			Return(nil)

		require.NoError(t, fx.service.ResendOTP(ctx, "ada@example.com"))
		require.NotNil(t, sent)
		assertEscaped(t, sent)
	})
}
