package main

import (
	"context"
	"log/slog"
	"os"

	"labgas/config"
	"labgas/internal/delivery"
	"labgas/internal/delivery/dashboard"
	"labgas/internal/delivery/dashboard/client"
	logs "labgas/internal/infra/log"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			fx.Annotate(
				client.New,
				fx.As(new(dashboard.API)),
			),
			fx.Annotate(
				dashboard.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start dashboard", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
