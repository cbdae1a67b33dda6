package impl

import (
	"bytes"
	"context"
	"crypto/subtle"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"nextstep/config"
	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/domain/service"
	"nextstep/internal/errors"
	"nextstep/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultOTPTTL = 10 * time.Minute

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	MentorRepo   repository.MentorRepository
	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OTP          service.OTPGenerator
	Mailer       service.EmailSender
	Config       *config.Config
	Logger       *slog.Logger
}

// userService implements usecase.UserUsecase.
type userService struct {
	userRepo     repository.UserRepository
	mentorRepo   repository.MentorRepository
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	otp          service.OTPGenerator
	mailer       service.EmailSender
	otpTTL       time.Duration
	logger       *slog.Logger
	now          func() time.Time
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	otpTTL := defaultOTPTTL
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.OTPTTL > 0 {
		otpTTL = params.Config.Auth.OTPTTL
	}

	return &userService{
		userRepo:     params.UserRepo,
		mentorRepo:   params.MentorRepo,
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		otp:          params.OTP,
		mailer:       params.Mailer,
		otpTTL:       otpTTL,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if email == "" || fullName == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("fullName, email and password are required")
	}
	if input.Role != entity.RoleLearner && input.Role != entity.RoleMentor {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("role must be learner or mentor")
	}

	if _, err := srv.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	code, err := srv.otp.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate verification code")
	}
	expiresAt := srv.now().Add(srv.otpTTL)

	user := &entity.User{
		Email:          email,
		PasswordHash:   passwordHash,
		FullName:       fullName,
		Role:           input.Role,
		Expertise:      strings.TrimSpace(input.Expertise),
		Experience:     input.Experience,
		Domain:         strings.TrimSpace(input.Domain),
		LinkedIn:       strings.TrimSpace(input.LinkedIn),
		GitHub:         strings.TrimSpace(input.GitHub),
		WhyMentor:      strings.TrimSpace(input.WhyMentor),
		College:        strings.TrimSpace(input.College),
		GradYear:       input.GradYear,
		DomainInterest: input.DomainInterest,
		OTPHash:        srv.otp.Hash(code),
		OTPExpiresAt:   &expiresAt,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, domainerrors.ErrUserCreationFailed.WrapMessage(err.Error())
	}

	var mentor *entity.Mentor
	if user.IsMentor() {
		mentor = entity.NewRegisteredMentor(user)
		if err := srv.mentorRepo.Create(ctx, mentor); err != nil {
			srv.compensateRegistration(ctx, user, nil)

			return nil, domainerrors.ErrMentorCreationFailed.WrapMessage(err.Error())
		}
	}

	if err := srv.sendOTP(ctx, user, code); err != nil {
		srv.compensateRegistration(ctx, user, mentor)

		return nil, domainerrors.ErrEmailDeliveryFailed.WrapMessage(err.Error())
	}

	srv.logger.InfoContext(ctx, "User registered",
		slog.String("userID", user.ID.String()),
		slog.String("role", user.Role.String()),
	)

	return &usecase.RegisterOutput{User: user, Mentor: mentor}, nil
}

// compensateRegistration removes what a failed registration already stored.
// Cleanup failures are logged; the original failure is what the caller sees.
func (srv *userService) compensateRegistration(ctx context.Context, user *entity.User, mentor *entity.Mentor) {
	if mentor != nil {
		if err := srv.mentorRepo.Delete(ctx, mentor.ID); err != nil {
			srv.logger.ErrorContext(ctx, "Failed to remove mentor profile of aborted registration",
				slog.String("mentorID", mentor.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	if err := srv.userRepo.Delete(ctx, user.ID); err != nil {
		srv.logger.ErrorContext(ctx, "Failed to remove user of aborted registration",
			slog.String("userID", user.ID.String()),
			slog.Any("error", err),
		)

		return
	}

	srv.logger.WarnContext(ctx, "Registration rolled back", slog.String("email", user.Email))
}

// otpEmail escapes every field, the full name is user supplied.
var otpEmail = template.Must(template.New("otp").Parse(
	`<p>Hi {{.Name}},</p><p>Your verification code is <strong>{{.Code}}</strong>. It expires in {{.Minutes}} minutes.</p>`,
))

func (srv *userService) sendOTP(ctx context.Context, user *entity.User, code string) error {
	var body bytes.Buffer
	if err := otpEmail.Execute(&body, map[string]any{
		"Name":    user.FullName,
		"Code":    code,
		"Minutes": int(srv.otpTTL.Minutes()),
	}); err != nil {
		return errors.Wrap(err, "failed to render verification email")
	}

	return srv.mailer.Send(ctx, &service.Email{
		To:      user.Email,
		Subject: "Verify your NextStep account",
		HTML:    body.String(),
	})
}

func (srv *userService) VerifyOTP(ctx context.Context, input *usecase.VerifyOTPInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	code := strings.TrimSpace(input.Code)
	if email == "" || code == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("email and otp are required")
	}

	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.IsVerified {
		return nil, domainerrors.ErrAlreadyVerified
	}

	if user.OTPHash == "" || user.OTPExpired(srv.now()) ||
		subtle.ConstantTimeCompare([]byte(user.OTPHash), []byte(srv.otp.Hash(code))) != 1 {
		return nil, domainerrors.ErrOTPInvalid
	}

	user.IsVerified = true
	user.OTPHash = ""
	user.OTPExpiresAt = nil
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}

	return srv.issueToken(user)
}

func (srv *userService) ResendOTP(ctx context.Context, email string) error {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return domainerrors.ErrInvalidArgument.WithDetails("email is required")
	}

	user, err := srv.findByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsVerified {
		return domainerrors.ErrAlreadyVerified
	}

	code, err := srv.otp.Generate()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}
	expiresAt := srv.now().Add(srv.otpTTL)
	user.OTPHash = srv.otp.Hash(code)
	user.OTPExpiresAt = &expiresAt
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}

	if err := srv.sendOTP(ctx, user, code); err != nil {
		return domainerrors.ErrEmailDeliveryFailed.WrapMessage(err.Error())
	}

	return nil
}

func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("email and password are required")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}
	if !user.IsVerified {
		return nil, domainerrors.ErrEmailNotVerified
	}

	return srv.issueToken(user)
}

func (srv *userService) issueToken(user *entity.User) (*usecase.AuthOutput, error) {
	token, err := srv.tokenService.GenerateToken(user.ID, user.Role.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.AuthOutput{
		Token:     token,
		ExpiresIn: int64(srv.tokenService.TTL().Seconds()),
		User:      user,
	}, nil
}

func (srv *userService) findByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *userService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the non-nil fields and, for mentors, mirrors them onto
// the mentor profile in the same transaction. A mentor without a profile yet
// is left alone; the profile is created from the updated user on first access.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	if input.FullName != nil && strings.TrimSpace(*input.FullName) == "" {
		return nil, domainerrors.ErrInvalidArgument.WithDetails("fullName cannot be empty")
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		userRepo := factory.NewUserRepository()
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		applyProfileUpdate(user, input)
		if err := userRepo.Update(ctx, user); err != nil {
			return domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
		}
		updated = user

		if !user.IsMentor() {
			return nil
		}

		mentorRepo := factory.NewMentorRepository()
		mentor, err := mentorRepo.FindByUserID(ctx, user.ID)
		if err != nil {
			if errors.Is(err, repository.ErrMentorNotFound) {
				return nil
			}

			return errors.Wrap(err, "failed to find mentor profile")
		}

		mentor.ApplyUserProfile(user)
		if err := mentorRepo.Update(ctx, mentor); err != nil {
			return errors.Wrap(err, "failed to sync mentor profile")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func applyProfileUpdate(user *entity.User, input *usecase.UpdateProfileInput) {
	setString(&user.FullName, input.FullName)
	setString(&user.Expertise, input.Expertise)
	setString(&user.Domain, input.Domain)
	setString(&user.LinkedIn, input.LinkedIn)
	setString(&user.GitHub, input.GitHub)
	setString(&user.WhyMentor, input.WhyMentor)
	setString(&user.College, input.College)
	if input.Experience != nil {
		user.Experience = *input.Experience
	}
	if input.GradYear != nil {
		user.GradYear = *input.GradYear
	}
	if input.DomainInterest != nil {
		user.DomainInterest = input.DomainInterest
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
