// Package persistence selects the document store backend from configuration.
package persistence

import (
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/infra/persistence/postgres"
	"storefront/internal/infra/retry"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the store, injected by Fx.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// Repositories are the repositories and transaction manager of one backend.
type Repositories struct {
	fx.Out

	Products  repository.ProductRepository
	Orders    repository.OrderRepository
	Users     repository.UserRepository
	TxManager repository.TransactionManager
}

// NewRepositories builds the repositories of the configured backend.
func NewRepositories(params Params) (Repositories, error) {
	backend := config.BackendMemory
	if params.Config.Store != nil && params.Config.Store.Backend != "" {
		backend = params.Config.Store.Backend
	}

	switch backend {
	case config.BackendMemory:
		params.Logger.Info("Using in-memory document store")
		store := memory.NewStore()

		return Repositories{
			Products:  store.NewProductRepository(),
			Orders:    store.NewOrderRepository(),
			Users:     store.NewUserRepository(),
			TxManager: memory.NewTransactionManager(store),
		}, nil

	case config.BackendPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		policy := retry.NewPolicy(params.Config)
		policy.OnRetry = func(err error, wait time.Duration) {
			params.Logger.Warn("Retrying store operation",
				slog.Duration("wait", wait),
				slog.Any("error", err),
			)
		}
		params.Logger.Info("Using PostgreSQL document store", slog.Int("maxAttempts", policy.MaxAttempts))

		return Repositories{
			Products:  postgres.NewProductRepository(db, policy),
			Orders:    postgres.NewOrderRepository(db, policy),
			Users:     postgres.NewUserRepository(db, policy),
			TxManager: postgres.NewTransactionManager(db, policy),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store backend: %s", backend)
	}
}

// Module provides the document store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
