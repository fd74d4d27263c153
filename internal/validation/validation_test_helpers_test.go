package validation

import (
	"context"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type productMap map[string]*entity.Product

func (m productMap) FindByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	if p, ok := m[barcode]; ok {
		return p, nil
	}

	return nil, domainerrors.ErrProductNotFound
}

type orderMap map[uuid.UUID]*entity.Order

func (m orderMap) FindByID(_ context.Context, id uuid.UUID) (*entity.Order, error) {
	if o, ok := m[id]; ok {
		return o, nil
	}

	return nil, domainerrors.ErrOrderNotFound
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedProducts() productMap {
	return productMap{
		"1237894563215": {Barcode: "1237894563215", Name: "macbook_pro_13", Category: 1, Categories: []int{1, 3, 5}},
		"7351982406735": {Barcode: "7351982406735", Name: "iphone_7_plus", Category: 3, Categories: []int{3, 1, 5}},
		"1122334455666": {Barcode: "1122334455666", Name: "camisa_seda_negra", Category: 16, Categories: []int{16, 10, 12, 14}},
		"4624768392045": {Barcode: "4624768392045", Name: "gorro_lana_cuadros", Category: 18},
	}
}

func macbookLine() entity.OrderLine {
	return entity.OrderLine{Quantity: 1, UnitPrice: dec("1099"), ProductName: "macbook_pro_13", LineTotal: dec("1099"), ProductBarcode: "1237894563215"}
}

func iphoneLine() entity.OrderLine {
	return entity.OrderLine{Quantity: 1, UnitPrice: dec("799"), ProductName: "iphone_7_plus", LineTotal: dec("799"), ProductBarcode: "7351982406735"}
}

func shirtLine() entity.OrderLine {
	return entity.OrderLine{Quantity: 2, UnitPrice: dec("54.95"), ProductName: "camisa_seda_negra", LineTotal: dec("109.90"), ProductBarcode: "1122334455666"}
}

func hatLine() entity.OrderLine {
	return entity.OrderLine{Quantity: 50, UnitPrice: dec("12.95"), ProductName: "gorro_lana_cuadros", LineTotal: dec("647.5"), ProductBarcode: "4624768392045"}
}

func orderAt(total string, lines ...entity.OrderLine) *entity.Order {
	return &entity.Order{
		ID:         uuid.New(),
		TotalPrice: dec(total),
		Timestamp:  time.Date(2017, 6, 20, 18, 32, 10, 888182000, time.UTC),
		Lines:      lines,
	}
}
