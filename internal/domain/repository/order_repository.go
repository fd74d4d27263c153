package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the standard operations for order persistence.
// Lines are stored embedded in their order.
type OrderRepository interface {
	// Create persists a new order together with its lines.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves a single order by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// List returns every order ordered by timestamp, then ID.
	List(ctx context.Context) ([]*entity.Order, error)

	// FindByProduct returns the orders with at least one line referencing barcode.
	FindByProduct(ctx context.Context, barcode string) ([]*entity.Order, error)

	// Delete removes an order and its lines. It does not touch referencing users.
	Delete(ctx context.Context, id uuid.UUID) error
}
