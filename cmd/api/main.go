package main

import (
	"context"
	"log/slog"
	"os"

	"labgas/config"
	"labgas/internal/delivery"
	"labgas/internal/delivery/api"
	apimiddleware "labgas/internal/delivery/api/middleware"
	"labgas/internal/delivery/api/router/handler"
	"labgas/internal/infra/auth"
	"labgas/internal/infra/identity"
	logs "labgas/internal/infra/log"
	"labgas/internal/infra/metrics"
	"labgas/internal/infra/persistence/postgres"
	"labgas/internal/infra/pubsub"
	"labgas/internal/infra/qrcode"
	"labgas/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"gorm.io/gorm"
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
			migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
		metricsRegistry,
		postgres.New,
	)
}

func metricsRegistry(m *metrics.Metrics) *prometheus.Registry {
	return m.Registry
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewCylinderRepository,
			postgres.NewElementRepository,
			postgres.NewSampleRepository,
			postgres.NewFlameTimeRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			qrcode.NewQRCodeService,
		),
		identity.Module,
		pubsub.Module,
		fx.Decorate(metrics.InstrumentPublisher),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCylinderService,
			impl.NewElementService,
			impl.NewSampleService,
			impl.NewFlameTimeService,
			impl.NewStatsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCylinderHandler,
			handler.NewElementHandler,
			handler.NewSampleHandler,
			handler.NewFlameTimeHandler,
			handler.NewStatsHandler,
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

// migrate applies the schema before any server accepts traffic.
func migrate(ctx context.Context, cfg *config.Config, db *gorm.DB, logger *slog.Logger) error {
	if !cfg.Env.AutoMigrate {
		return nil
	}

	if err := postgres.ApplySchema(ctx, db); err != nil {
		return errors.Wrap(err, "failed to apply schema")
	}
	logger.Info("Database schema applied")

	return nil
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
