// Package seed loads the demo catalog, orders and users, then checks that
// invalid documents are rejected and that deleting an order pulls it from
// the users referencing it.
package seed

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/domain/entity"
	logs "storefront/internal/infra/log"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// Rejection records one invalid document and the error that refused it.
type Rejection struct {
	Name string
	Err  error
}

// Report summarizes a scenario run.
type Report struct {
	Products   int
	Orders     int
	Users      int
	Rejections []Rejection
	// Accepted lists the invalid documents the store let through; it should be empty.
	Accepted     []string
	DeletedOrder uuid.UUID
	OrdersBefore int
	OrdersAfter  int
}

// ScenarioParams holds dependencies for Scenario, injected by Fx.
type ScenarioParams struct {
	fx.In

	Products usecase.ProductUsecase
	Orders   usecase.OrderUsecase
	Users    usecase.UserUsecase
	Logger   *slog.Logger
}

// Scenario drives the use cases with known-good and known-bad documents.
type Scenario struct {
	products usecase.ProductUsecase
	orders   usecase.OrderUsecase
	users    usecase.UserUsecase
	logger   *slog.Logger
}

// NewScenario is the constructor for Scenario.
func NewScenario(params ScenarioParams) *Scenario {
	return &Scenario{
		products: params.Products,
		orders:   params.Orders,
		users:    params.Users,
		logger:   params.Logger,
	}
}

type catalog struct {
	macbook, iphone, shirt, hat *entity.Product
}

type badDocument struct {
	name string
	save func(ctx context.Context) error
}

// Run inserts the valid documents, attempts the invalid ones and deletes one
// order. Any failure on a valid document aborts the run.
func (s *Scenario) Run(ctx context.Context) (*Report, error) {
	logger := logs.FromContextOrDefault(ctx, s.logger)
	report := &Report{}

	c := newCatalog()
	for _, p := range []*entity.Product{c.macbook, c.iphone, c.shirt, c.hat} {
		if err := s.products.Save(ctx, p); err != nil {
			return nil, errors.Wrapf(err, "failed to save product %s", p.Name)
		}
		report.Products++
	}

	lp1 := newLine(c.macbook, 1, "1099", "1099")
	lp2 := newLine(c.iphone, 1, "799", "799")
	lp3 := newLine(c.shirt, 2, "54.95", "109.90")
	lp4 := newLine(c.hat, 50, "12.95", "647.5")

	pd1 := newOrder("1898", at(2017, time.June, 20, 18, 32, 10, 888182), lp1, lp2)
	pd2 := newOrder("757.4", at(2017, time.August, 21, 13, 15, 2, 888333), lp3, lp4)
	pd3 := newOrder("1898", at(2017, time.December, 1, 10, 53, 27, 888216), lp1, lp2)
	pd4 := newOrder("757.4", at(2017, time.December, 8, 17, 21, 33, 888229), lp3, lp4)
	pd5 := newOrder("1746.5", at(2017, time.December, 9, 7, 58, 10, 888216), lp1, lp4)
	pd6 := newOrder("908.9", at(2017, time.December, 10, 22, 12, 6, 888108), lp2, lp3)

	for _, o := range []*entity.Order{pd1, pd2, pd3, pd4, pd5, pd6} {
		if err := s.orders.Save(ctx, o); err != nil {
			return nil, errors.Wrapf(err, "failed to save order placed at %s", o.Timestamp.Format(time.RFC3339Nano))
		}
		report.Orders++
	}

	users := []*entity.User{
		{
			NationalID: "71534484E", Name: "Ignacio", FirstSurname: "Felipe", SecondSurname: "Rode",
			BirthDate:   "1996-02-17",
			CreditCards: []entity.CreditCard{newCard("Ignacio Felipe Rode", "1592301746920713", "02", "23", "331")},
			Orders:      []uuid.UUID{pd1.ID, pd2.ID},
		},
		{
			NationalID: "53321817C", Name: "Celia", FirstSurname: "Segade", SecondSurname: "Quintas",
			BirthDate:   "1993-09-03",
			CreditCards: []entity.CreditCard{newCard("Celia Segade Quintas", "4174856920458820", "10", "21", "042")},
			Orders:      []uuid.UUID{pd5.ID, pd6.ID},
		},
		{
			NationalID: "71475686N", Name: "Marta", FirstSurname: "Pastor", SecondSurname: "Puente",
			BirthDate: "1996-08-21",
			CreditCards: []entity.CreditCard{
				newCard("Marta Pastor Puente", "5531847930178456", "10", "21", "472"),
				newCard("Marta Pastor Puente", "4022165789374055", "06", "23", "649"),
			},
			Orders: []uuid.UUID{pd3.ID, pd4.ID},
		},
	}
	for _, u := range users {
		if err := s.users.Save(ctx, u); err != nil {
			return nil, errors.Wrapf(err, "failed to save user %s", u.NationalID)
		}
		report.Users++
	}

	logger.Info("Valid documents stored",
		slog.Int("products", report.Products),
		slog.Int("orders", report.Orders),
		slog.Int("users", report.Users),
	)

	for _, bad := range s.badDocuments(c, lp1, lp2, pd3, pd4) {
		err := bad.save(ctx)
		if err == nil {
			logger.Error("Invalid document was accepted", slog.String("document", bad.name))
			report.Accepted = append(report.Accepted, bad.name)

			continue
		}
		logger.Info("Invalid document rejected", slog.String("document", bad.name), slog.Any("error", err))
		report.Rejections = append(report.Rejections, Rejection{Name: bad.name, Err: err})
	}

	marta := users[2].NationalID
	before, err := s.orderCount(ctx, marta)
	if err != nil {
		return nil, err
	}
	logger.Info("Orders before deletion", slog.String("user", marta), slog.Int("orders", before))

	if _, err := s.orders.Delete(ctx, pd4.ID); err != nil {
		return nil, errors.Wrap(err, "failed to delete order")
	}

	after, err := s.orderCount(ctx, marta)
	if err != nil {
		return nil, err
	}
	logger.Info("Orders after deletion", slog.String("user", marta), slog.Int("orders", after))

	report.DeletedOrder = pd4.ID
	report.OrdersBefore = before
	report.OrdersAfter = after

	return report, nil
}

func (s *Scenario) badDocuments(c catalog, lp1, lp2 entity.OrderLine, pd3, pd4 *entity.Order) []badDocument {
	badShirtTotal := newLine(c.shirt, 3, "54.95", "109.90")
	badHatName := newLine(c.hat, 50, "12.95", "647.5")
	badHatName.ProductName = "gorro_lana_puntos"

	return []badDocument{
		{
			name: "product with wrong EAN-13 check digit",
			save: func(ctx context.Context) error {
				return s.products.Save(ctx, &entity.Product{
					Barcode: "4482710978306", Name: "gorro_lana_rayas", Category: 18, Categories: []int{},
				})
			},
		},
		{
			name: "product whose category list does not start with its category",
			save: func(ctx context.Context) error {
				return s.products.Save(ctx, &entity.Product{
					Barcode: "2759301185937", Name: "perfume_calvin_klein", Category: 59, Categories: []int{13, 21, 59},
				})
			},
		},
		{
			name: "order line whose total is not quantity times unit price",
			save: func(ctx context.Context) error {
				return s.orders.Save(ctx, newOrder("109.90", at(2017, time.December, 11, 9, 0, 0, 0), badShirtTotal))
			},
		},
		{
			name: "order line whose name differs from the product",
			save: func(ctx context.Context) error {
				return s.orders.Save(ctx, newOrder("647.5", at(2017, time.December, 11, 9, 5, 0, 0), badHatName))
			},
		},
		{
			name: "order whose total is not the sum of its lines",
			save: func(ctx context.Context) error {
				return s.orders.Save(ctx, newOrder("1298", at(2017, time.June, 20, 18, 32, 10, 888182), lp1, lp2))
			},
		},
		{
			name: "user with wrong NIF control letter",
			save: func(ctx context.Context) error {
				return s.users.Save(ctx, &entity.User{
					NationalID: "72819453T", Name: "Juan Antonio", FirstSurname: "Calero", SecondSurname: "Bosque",
					BirthDate: "1999-01-13",
					Orders:    []uuid.UUID{pd3.ID, pd4.ID},
				})
			},
		},
	}
}

func (s *Scenario) orderCount(ctx context.Context, nationalID string) (int, error) {
	user, err := s.users.Get(ctx, nationalID)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to load user %s", nationalID)
	}

	return len(user.Orders), nil
}

func newCatalog() catalog {
	return catalog{
		macbook: &entity.Product{Barcode: "1237894563215", Name: "macbook_pro_13", Category: 1, Categories: []int{1, 3, 5}},
		iphone:  &entity.Product{Barcode: "7351982406735", Name: "iphone_7_plus", Category: 3, Categories: []int{3, 1, 5}},
		shirt:   &entity.Product{Barcode: "1122334455666", Name: "camisa_seda_negra", Category: 16, Categories: []int{16, 10, 12, 14}},
		hat:     &entity.Product{Barcode: "4624768392045", Name: "gorro_lana_cuadros", Category: 18, Categories: []int{}},
	}
}

func newLine(p *entity.Product, quantity int, unitPrice, lineTotal string) entity.OrderLine {
	return entity.OrderLine{
		Quantity:       quantity,
		UnitPrice:      decimal.RequireFromString(unitPrice),
		ProductName:    p.Name,
		LineTotal:      decimal.RequireFromString(lineTotal),
		ProductBarcode: p.Barcode,
	}
}

func newOrder(total string, ts time.Time, lines ...entity.OrderLine) *entity.Order {
	return &entity.Order{
		TotalPrice: decimal.RequireFromString(total),
		Timestamp:  ts,
		Lines:      lines,
	}
}

func newCard(fullName, number, month, year, cvv string) entity.CreditCard {
	return entity.CreditCard{FullName: fullName, Number: number, Month: month, Year: year, CVV: cvv}
}

func at(year int, month time.Month, day, hour, minute, sec, micro int) time.Time {
	return time.Date(year, month, day, hour, minute, sec, micro*int(time.Microsecond), time.UTC)
}
