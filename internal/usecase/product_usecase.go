package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// Save validates and stores a new product.
	Save(ctx context.Context, product *entity.Product) error
	Get(ctx context.Context, barcode string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	// Delete removes a product. Order lines referencing it keep the dangling barcode.
	Delete(ctx context.Context, barcode string) error
}
