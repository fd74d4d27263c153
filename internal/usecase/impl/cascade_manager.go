package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/repository"
	logs "storefront/internal/infra/log"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CascadeManager removes references to a deleted order from every user
// holding them. It runs on the repositories of the caller's transaction, so
// the deletion and the pulls commit or roll back together.
type CascadeManager struct {
	logger *slog.Logger
}

// NewCascadeManager creates a CascadeManager.
func NewCascadeManager(logger *slog.Logger) *CascadeManager {
	return &CascadeManager{logger: logger}
}

// DeleteOrder deletes the order and pulls it from every referencing user.
// It returns the national identifiers of the users that were changed.
func (m *CascadeManager) DeleteOrder(ctx context.Context, repos repository.RepositoryFactory, orderID uuid.UUID) ([]string, error) {
	orderRepo := repos.NewOrderRepository()
	userRepo := repos.NewUserRepository()

	if _, err := orderRepo.FindByID(ctx, orderID); err != nil {
		return nil, errors.Wrap(err, "failed to find order to delete")
	}

	users, err := userRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find users referencing order")
	}

	pulledFrom := make([]string, 0, len(users))
	for _, user := range users {
		if user.PullOrder(orderID) == 0 {
			continue
		}

		if err := userRepo.Update(ctx, user); err != nil {
			return nil, errors.Wrapf(err, "failed to pull order from user %s", user.NationalID)
		}

		pulledFrom = append(pulledFrom, user.NationalID)
	}

	if err := orderRepo.Delete(ctx, orderID); err != nil {
		return nil, errors.Wrap(err, "failed to delete order")
	}

	logs.FromContextOrDefault(ctx, m.logger).Info("Order references pulled",
		slog.String("orderID", orderID.String()),
		slog.Int("users", len(pulledFrom)),
	)

	return pulledFrom, nil
}
