package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderLine is embedded in exactly one Order and has no lifecycle of its own.
// Money is held as decimal so that quantity × unit price compares exactly.
type OrderLine struct {
	Quantity       int             // Number of units ordered.
	UnitPrice      decimal.Decimal `validate:"gte=0"`                // Price of a single unit.
	ProductName    string          `validate:"required"`             // Denormalized copy of the product name.
	LineTotal      decimal.Decimal `validate:"gte=0"`                // Stored total for the line.
	ProductBarcode string          `validate:"required,ean13_shape"` // Non-owning reference to a Product.
}

// ComputedTotal returns quantity × unit price.
func (l OrderLine) ComputedTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order owns its lines and is referenced, not owned, by Users.
type Order struct {
	ID         uuid.UUID       // Assigned by the store when nil.
	TotalPrice decimal.Decimal // Stored total; must equal the sum of line totals.
	Timestamp  time.Time       `validate:"required"`       // When the order was placed.
	Lines      []OrderLine     `validate:"required,min=1,dive"` // Embedded lines, at least one.
}

// Kind implements Document.
func (o *Order) Kind() Kind { return KindOrder }

// Key implements Document.
func (o *Order) Key() string { return o.ID.String() }

// LinesTotal sums the stored line totals.
func (o *Order) LinesTotal() decimal.Decimal {
	sum := decimal.Zero
	for _, line := range o.Lines {
		sum = sum.Add(line.LineTotal)
	}

	return sum
}
