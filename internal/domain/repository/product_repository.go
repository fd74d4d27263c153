// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository defines the standard operations for product persistence.
// Implementations return domainerrors.ErrProductNotFound for missing barcodes
// and domainerrors.ErrProductAlreadyExists when a barcode is taken.
type ProductRepository interface {
	// Create persists a new product. Barcodes are unique.
	Create(ctx context.Context, product *entity.Product) error

	// FindByBarcode retrieves a single product by its barcode.
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)

	// List returns every product ordered by barcode.
	List(ctx context.Context) ([]*entity.Product, error)

	// Delete removes a product. Order lines referencing it are left as they are.
	Delete(ctx context.Context, barcode string) error
}
