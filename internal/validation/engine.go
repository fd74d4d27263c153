package validation

import (
	"context"

	"storefront/internal/domain/entity"
)

// Engine runs field constraints first and record-level rules only when the
// fields are sound, so a rule never sees a malformed value.
type Engine struct {
	fields *FieldValidator
}

// NewEngine creates a validation engine.
func NewEngine() (*Engine, error) {
	fields, err := NewFieldValidator()
	if err != nil {
		return nil, err
	}

	return &Engine{fields: fields}, nil
}

// ValidateProduct validates a product before it is stored.
func (e *Engine) ValidateProduct(p *entity.Product) error {
	if err := e.fields.Struct(p); err != nil {
		return err
	}

	return CleanProduct(p)
}

// ValidateOrder validates an order and its lines, reading the referenced products.
func (e *Engine) ValidateOrder(ctx context.Context, o *entity.Order, products ProductLookup) error {
	if err := e.fields.Struct(o); err != nil {
		return err
	}

	return CleanOrder(ctx, o, products)
}

// ValidateUser validates a user, reading the referenced orders.
func (e *Engine) ValidateUser(ctx context.Context, u *entity.User, orders OrderLookup) error {
	if err := e.fields.Struct(u); err != nil {
		return err
	}

	return CleanUser(ctx, u, orders)
}
