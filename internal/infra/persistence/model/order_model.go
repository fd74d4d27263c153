package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderLineModel is one element of the 'lines' jsonb column. Lines have no
// table of their own; they live and die with their order.
type OrderLineModel struct {
	Quantity       int             `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unit_price"`
	ProductName    string          `json:"product_name"`
	LineTotal      decimal.Decimal `json:"line_total"`
	ProductBarcode string          `json:"product_barcode"`
}

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID         uuid.UUID                           `gorm:"type:uuid;primaryKey"`
	TotalPrice decimal.Decimal                     `gorm:"type:numeric;not null"`
	Timestamp  time.Time                           `gorm:"not null;index"`
	Lines      datatypes.JSONSlice[OrderLineModel] `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
