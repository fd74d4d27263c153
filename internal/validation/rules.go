package validation

import (
	"context"
	"fmt"

	"storefront/internal/domain/checksum"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/google/uuid"
)

// ProductLookup resolves the product an order line references.
type ProductLookup interface {
	FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
}

// OrderLookup resolves the orders a user references.
type OrderLookup interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
}

// CleanProduct checks the barcode checksum and that a non-empty category list
// starts with the primary category.
func CleanProduct(p *entity.Product) error {
	if _, err := checksum.ValidateEAN13(p.Barcode); err != nil {
		return domainerrors.NewValidationError(entity.KindProduct.String(), p.Barcode,
			"barcode EAN-13 check digit is wrong", err)
	}

	if !p.CategoryHeadMatches() {
		return domainerrors.NewValidationError(entity.KindProduct.String(), p.Barcode,
			fmt.Sprintf("primary category %d is not first in category list %v", p.Category, p.Categories), nil)
	}

	return nil
}

// CleanOrderLine compares the line against the product it references: the
// denormalized name must match, and quantity × unit price must equal the line
// total exactly.
func CleanOrderLine(ctx context.Context, line entity.OrderLine, products ProductLookup) error {
	product, err := products.FindByBarcode(ctx, line.ProductBarcode)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NewValidationError("order line", "",
				"referenced product "+line.ProductBarcode+" does not exist", err)
		}

		return errors.Wrapf(err, "load product %s", line.ProductBarcode)
	}

	if line.ProductName != product.Name {
		return domainerrors.NewValidationError("order line", "",
			fmt.Sprintf("product name %q differs from referenced product name %q", line.ProductName, product.Name), nil)
	}

	if computed := line.ComputedTotal(); !computed.Equal(line.LineTotal) {
		return domainerrors.NewValidationError("order line", "",
			fmt.Sprintf("line total %s differs from %d x %s = %s", line.LineTotal, line.Quantity, line.UnitPrice, computed), nil)
	}

	return nil
}

// CleanOrder runs CleanOrderLine on every line, then checks that the order
// total equals the sum of line totals exactly.
func CleanOrder(ctx context.Context, o *entity.Order, products ProductLookup) error {
	for i, line := range o.Lines {
		if err := CleanOrderLine(ctx, line, products); err != nil {
			return errors.Wrapf(err, "line %d", i)
		}
	}

	if sum := o.LinesTotal(); !sum.Equal(o.TotalPrice) {
		return domainerrors.NewValidationError(entity.KindOrder.String(), orderKey(o),
			fmt.Sprintf("total price %s differs from the sum of line totals %s", o.TotalPrice, sum), nil)
	}

	return nil
}

// CleanUser checks the national identifier control letter and that every
// referenced order exists.
func CleanUser(ctx context.Context, u *entity.User, orders OrderLookup) error {
	if _, err := checksum.ValidateNationalID(u.NationalID); err != nil {
		return domainerrors.NewValidationError(entity.KindUser.String(), u.NationalID,
			"national id control letter is wrong", err)
	}

	for _, orderID := range u.Orders {
		if _, err := orders.FindByID(ctx, orderID); err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return domainerrors.NewValidationError(entity.KindUser.String(), u.NationalID,
					"referenced order "+orderID.String()+" does not exist", err)
			}

			return errors.Wrapf(err, "load order %s", orderID)
		}
	}

	return nil
}

func orderKey(o *entity.Order) string {
	if o.ID == uuid.Nil {
		return ""
	}

	return o.ID.String()
}
