package impl

import (
	"context"
	"log/slog"
	"strings"

	"nextstep/internal/domain/entity"
	domainerrors "nextstep/internal/domain/errors"
	"nextstep/internal/domain/repository"
	"nextstep/internal/domain/service"
	"nextstep/internal/errors"
	"nextstep/internal/usecase"

	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// authService implements usecase.AuthUsecase.
type authService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *authService) Authenticate(ctx context.Context, authorizationHeader string) (*entity.User, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, domainerrors.ErrNoToken
	}

	token := strings.TrimSpace(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if token == "" {
		return nil, domainerrors.ErrNoToken
	}

	claims, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		srv.logger.DebugContext(ctx, "Token validation failed", slog.Any("error", err))

		return nil, domainerrors.ErrTokenInvalid
	}

	user, err := srv.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrTokenInvalid.WrapMessage("token subject no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token subject")
	}

	return user, nil
}
