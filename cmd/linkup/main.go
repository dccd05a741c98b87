package main

import (
	"context"
	"log/slog"
	"os"

	"linkup/config"
	"linkup/internal/delivery"
	"linkup/internal/delivery/http"
	"linkup/internal/delivery/http/middleware"
	"linkup/internal/delivery/http/router/handler"
	"linkup/internal/domain/service"
	"linkup/internal/infra/auth"
	"linkup/internal/infra/auth/firebase"
	logs "linkup/internal/infra/log"
	firestorerepo "linkup/internal/infra/persistence/firestore"
	"linkup/internal/infra/pubsub"
	"linkup/internal/usecase"
	"linkup/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startSessionObserver,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		firestorerepo.NewClient,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			firestorerepo.NewProfileRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newIdentityProvider,
			pubsub.NewSessionEventPublisher,
		),
	)
}

// newIdentityProvider creates the Firebase identity provider with dependency injection
func newIdentityProvider(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdentityProvider, error) {
	credentialsPath := ""
	if cfg.Firebase != nil {
		credentialsPath = cfg.Firebase.CredentialsPath
	}

	return firebase.NewProvider(ctx, credentialsPath, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionStore,
			impl.NewProfileService,
			impl.NewSessionService,
			impl.NewUpgradeService,
			impl.NewCleanupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
			middleware.NewFlowMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewProfileHandler,
			handler.NewCleanupHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// startSessionObserver runs the auth-state observer loop for the lifetime of
// the application context.
func startSessionObserver(ctx context.Context, sessions usecase.SessionUsecase) {
	go func() {
		if err := sessions.Run(ctx); err != nil {
			slog.Error("Session observer stopped", slog.Any("error", err))
		}
	}()
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
