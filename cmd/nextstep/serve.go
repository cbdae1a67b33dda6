package main

import (
	"context"
	"log/slog"
	"os"

	"nextstep/config"
	"nextstep/internal/delivery"
	"nextstep/internal/delivery/api"
	apimiddleware "nextstep/internal/delivery/api/middleware"
	"nextstep/internal/delivery/api/router/handler"
	"nextstep/internal/infra/auth"
	logs "nextstep/internal/infra/log"
	"nextstep/internal/infra/mail"
	"nextstep/internal/infra/persistence/postgres"
	"nextstep/internal/infra/qrcode"
	"nextstep/internal/usecase/impl"

	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Run: func(cmd *cobra.Command, args []string) {
		fx.New(
			injectInfra(),
			injectRepo(),
			injectService(),
			injectUsecase(),
			injectDelivery(),
			injectMiddleware(),
			injectHandler(),
			fx.Invoke(
				startServer,
			),
		).Run()
	},
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewMentorRepository,
			postgres.NewThreadRepository,
			postgres.NewBookingRepository,
			postgres.NewRoadmapRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			auth.NewOTPGenerator,
			mail.NewEmailSender,
			qrcode.NewQRCodeService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewIdentityService,
			impl.NewUserService,
			impl.NewMentorService,
			impl.NewConversationService,
			impl.NewBookingService,
			impl.NewRoadmapService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewLearnerHandler,
			handler.NewMentorHandler,
			handler.NewDashboardHandler,
			handler.NewRoadmapHandler,
			handler.NewHealthHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
