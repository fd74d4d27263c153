//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/retry"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	gormpg "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type RepositorySuite struct {
	suite.Suite

	container *tcpostgres.PostgresContainer
	db        *gorm.DB

	products  repository.ProductRepository
	orders    repository.OrderRepository
	users     repository.UserRepository
	txManager repository.TransactionManager
}

func TestRepositorySuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RepositorySuite))
}

func (s *RepositorySuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("storefront"),
		tcpostgres.WithUsername("storefront"),
		tcpostgres.WithPassword("storefront"),
		tcpostgres.BasicWaitStrategies(),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := gorm.Open(gormpg.Open(dsn), &gorm.Config{Logger: logger.Discard})
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(Migrate(ctx, db))

	policy := retry.Policy{MaxAttempts: 3, InitialInterval: 10 * time.Millisecond, MaxInterval: 50 * time.Millisecond}
	s.products = NewProductRepository(db, policy)
	s.orders = NewOrderRepository(db, policy)
	s.users = NewUserRepository(db, policy)
	s.txManager = NewTransactionManager(db, policy)
}

func (s *RepositorySuite) TearDownSuite() {
	if s.container != nil {
		s.NoError(testcontainers.TerminateContainer(s.container))
	}
}

func (s *RepositorySuite) SetupTest() {
	s.Require().NoError(s.db.Exec("TRUNCATE TABLE users, orders, products").Error)
}

func (s *RepositorySuite) macbook() *entity.Product {
	return &entity.Product{Barcode: "1237894563215", Name: "macbook_pro_13", Category: 1, Categories: []int{1, 3, 5}}
}

func (s *RepositorySuite) order(lines ...entity.OrderLine) *entity.Order {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.LineTotal)
	}

	return &entity.Order{
		ID:         uuid.New(),
		TotalPrice: total,
		Timestamp:  time.Date(2017, 6, 20, 18, 32, 10, 0, time.UTC),
		Lines:      lines,
	}
}

func (s *RepositorySuite) macbookLine() entity.OrderLine {
	return entity.OrderLine{
		Quantity:       2,
		UnitPrice:      decimal.RequireFromString("1099.95"),
		ProductName:    "macbook_pro_13",
		LineTotal:      decimal.RequireFromString("2199.90"),
		ProductBarcode: "1237894563215",
	}
}

func (s *RepositorySuite) TestProduct_RoundTripAndDuplicate() {
	ctx := context.Background()

	s.Require().NoError(s.products.Create(ctx, s.macbook()))

	got, err := s.products.FindByBarcode(ctx, "1237894563215")
	s.Require().NoError(err)
	s.Equal("macbook_pro_13", got.Name)
	s.Equal([]int{1, 3, 5}, got.Categories)

	err = s.products.Create(ctx, s.macbook())
	s.ErrorIs(err, domainerrors.ErrDuplicateKey)

	s.Require().NoError(s.products.Delete(ctx, "1237894563215"))
	_, err = s.products.FindByBarcode(ctx, "1237894563215")
	s.ErrorIs(err, domainerrors.ErrProductNotFound)
}

func (s *RepositorySuite) TestOrder_LinesRoundTripExactly() {
	ctx := context.Background()

	order := s.order(s.macbookLine())
	s.Require().NoError(s.orders.Create(ctx, order))

	got, err := s.orders.FindByID(ctx, order.ID)
	s.Require().NoError(err)
	s.Require().Len(got.Lines, 1)
	s.True(got.TotalPrice.Equal(decimal.RequireFromString("2199.9")))
	s.True(got.Lines[0].LineTotal.Equal(got.Lines[0].ComputedTotal()))
	s.Equal("1237894563215", got.Lines[0].ProductBarcode)
	s.True(order.Timestamp.Equal(got.Timestamp))

	byProduct, err := s.orders.FindByProduct(ctx, "1237894563215")
	s.Require().NoError(err)
	s.Require().Len(byProduct, 1)
	s.Equal(order.ID, byProduct[0].ID)

	none, err := s.orders.FindByProduct(ctx, "7351982406735")
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *RepositorySuite) TestUser_FindByOrderAndUpdate() {
	ctx := context.Background()

	pd1, pd2 := uuid.New(), uuid.New()
	user := &entity.User{
		NationalID:   "71534484E",
		Name:         "Rodrigo",
		FirstSurname: "Díaz",
		BirthDate:    "1990-04-12",
		LastAccesses: []time.Time{time.Date(2017, 6, 20, 18, 32, 10, 0, time.UTC)},
		CreditCards: []entity.CreditCard{{
			FullName: "Rodrigo Díaz", Number: "1234567891234567", Month: "02", Year: "23", CVV: "123",
		}},
		Orders: []uuid.UUID{pd1, pd2},
	}
	s.Require().NoError(s.users.Create(ctx, user))
	s.ErrorIs(s.users.Create(ctx, user), domainerrors.ErrUserAlreadyExists)

	found, err := s.users.FindByOrder(ctx, pd2)
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal(user, found[0])

	user.PullOrder(pd2)
	s.Require().NoError(s.users.Update(ctx, user))

	found, err = s.users.FindByOrder(ctx, pd2)
	s.Require().NoError(err)
	s.Empty(found)

	got, err := s.users.FindByNationalID(ctx, "71534484E")
	s.Require().NoError(err)
	s.Equal([]uuid.UUID{pd1}, got.Orders)
	s.Equal(user.CreditCards, got.CreditCards)

	s.ErrorIs(s.users.Update(ctx, &entity.User{NationalID: "53321817C"}), domainerrors.ErrUserNotFound)
}

func (s *RepositorySuite) TestTransaction_RollsBack() {
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewProductRepository().Create(ctx, s.macbook()); err != nil {
			return err
		}

		return boom
	})
	s.ErrorIs(err, boom)

	_, err = s.products.FindByBarcode(ctx, "1237894563215")
	s.ErrorIs(err, domainerrors.ErrNotFound)
}
