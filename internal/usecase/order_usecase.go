package usecase

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// DeleteOrderOutput reports what the cascade changed.
type DeleteOrderOutput struct {
	OrderID    uuid.UUID
	PulledFrom []string // National identifiers of the users whose reference was removed
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// Save validates the order and its lines against the referenced products and
	// stores it. A nil ID is replaced by a new one.
	Save(ctx context.Context, order *entity.Order) error
	Get(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context) ([]*entity.Order, error)
	// FindByProduct returns the orders with a line referencing the barcode.
	FindByProduct(ctx context.Context, barcode string) ([]*entity.Order, error)
	// Delete removes the order and pulls it from every user referencing it.
	Delete(ctx context.Context, id uuid.UUID) (*DeleteOrderOutput, error)
}
