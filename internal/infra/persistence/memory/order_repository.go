package memory

import (
	"cmp"
	"context"
	"slices"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
)

type orderRepository struct {
	view view
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.view.write(ctx, func(s *state) error {
		if _, ok := s.orders[order.ID]; ok {
			return domainerrors.ErrOrderAlreadyExists.WithDetails(order.ID.String())
		}
		s.orders[order.ID] = cloneOrder(order)

		return nil
	})
}

func (r *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var found *entity.Order
	err := r.view.read(ctx, func(s *state) error {
		order, ok := s.orders[id]
		if !ok {
			return domainerrors.ErrOrderNotFound.WithDetails(id.String())
		}
		found = cloneOrder(order)

		return nil
	})

	return found, err
}

func (r *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	return r.collect(ctx, func(*entity.Order) bool { return true })
}

func (r *orderRepository) FindByProduct(ctx context.Context, barcode string) ([]*entity.Order, error) {
	return r.collect(ctx, func(o *entity.Order) bool {
		return slices.ContainsFunc(o.Lines, func(l entity.OrderLine) bool {
			return l.ProductBarcode == barcode
		})
	})
}

func (r *orderRepository) collect(ctx context.Context, keep func(*entity.Order) bool) ([]*entity.Order, error) {
	var orders []*entity.Order
	err := r.view.read(ctx, func(s *state) error {
		orders = make([]*entity.Order, 0, len(s.orders))
		for _, order := range s.orders {
			if keep(order) {
				orders = append(orders, cloneOrder(order))
			}
		}

		return nil
	})
	slices.SortFunc(orders, func(a, b *entity.Order) int {
		if c := a.Timestamp.Compare(b.Timestamp); c != 0 {
			return c
		}

		return cmp.Compare(a.ID.String(), b.ID.String())
	})

	return orders, err
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.view.write(ctx, func(s *state) error {
		if _, ok := s.orders[id]; !ok {
			return domainerrors.ErrOrderNotFound.WithDetails(id.String())
		}
		delete(s.orders, id)

		return nil
	})
}
