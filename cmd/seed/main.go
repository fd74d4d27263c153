package main

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence"
	"storefront/internal/infra/pubsub"
	"storefront/internal/seed"
	"storefront/internal/usecase/impl"
	"storefront/internal/util"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type runSeedParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Scenario *seed.Scenario
	Logger   *slog.Logger
}

func main() {
	fx.New(
		injectInfra(),
		persistence.Module,
		pubsub.Module,
		impl.Module,
		fx.Provide(seed.NewScenario),
		fx.Invoke(
			runSeed,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		validation.NewEngine,
	)
}

func runSeed(ctx context.Context, params runSeedParams) {
	logger := params.Logger.With(slog.String("runID", uuid.NewString()))
	ctx, cancel := context.WithCancel(logs.WithLogger(ctx, logger))

	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				exitCode := 0
				start := time.Now()

				report, err := params.Scenario.Run(ctx)
				switch {
				case err != nil:
					logger.Error("Seed failed", slog.Any("error", err))
					exitCode = 1
				case len(report.Accepted) > 0:
					logger.Error("Seed finished with invalid documents accepted", slog.Any("accepted", report.Accepted))
					exitCode = 1
				default:
					logger.Info("Seed finished",
						slog.Int("rejected", len(report.Rejections)),
						slog.Int("ordersBefore", report.OrdersBefore),
						slog.Int("ordersAfter", report.OrdersAfter),
						slog.String("elapsed", util.FormatDuration(time.Since(start))),
					)
				}

				if err := params.Shutdown(fx.ExitCode(exitCode)); err != nil {
					logger.Error("Failed to shutdown gracefully", slog.Any("error", err))
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})
}
