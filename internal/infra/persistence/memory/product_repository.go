package memory

import (
	"cmp"
	"context"
	"slices"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

type productRepository struct {
	view view
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	return r.view.write(ctx, func(s *state) error {
		if _, ok := s.products[product.Barcode]; ok {
			return domainerrors.ErrProductAlreadyExists.WithDetails(product.Barcode)
		}

		if product.CreatedAt.IsZero() {
			product.CreatedAt = now()
		}
		s.products[product.Barcode] = cloneProduct(product)

		return nil
	})
}

func (r *productRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	var found *entity.Product
	err := r.view.read(ctx, func(s *state) error {
		product, ok := s.products[barcode]
		if !ok {
			return domainerrors.ErrProductNotFound.WithDetails(barcode)
		}
		found = cloneProduct(product)

		return nil
	})

	return found, err
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	err := r.view.read(ctx, func(s *state) error {
		products = make([]*entity.Product, 0, len(s.products))
		for _, product := range s.products {
			products = append(products, cloneProduct(product))
		}

		return nil
	})
	slices.SortFunc(products, func(a, b *entity.Product) int {
		return cmp.Compare(a.Barcode, b.Barcode)
	})

	return products, err
}

func (r *productRepository) Delete(ctx context.Context, barcode string) error {
	return r.view.write(ctx, func(s *state) error {
		if _, ok := s.products[barcode]; !ok {
			return domainerrors.ErrProductNotFound.WithDetails(barcode)
		}
		delete(s.products, barcode)

		return nil
	})
}
