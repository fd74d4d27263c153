package memory

import (
	"context"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(barcode string) *entity.Product {
	return &entity.Product{Barcode: barcode, Name: "product " + barcode, Category: 1, Categories: []int{1, 2}}
}

func testOrder(barcode string) *entity.Order {
	return &entity.Order{
		ID:         uuid.New(),
		TotalPrice: decimal.NewFromInt(10),
		Timestamp:  time.Date(2017, 6, 20, 18, 32, 10, 0, time.UTC),
		Lines: []entity.OrderLine{{
			Quantity: 1, UnitPrice: decimal.NewFromInt(10), ProductName: "product " + barcode,
			LineTotal: decimal.NewFromInt(10), ProductBarcode: barcode,
		}},
	}
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().NewProductRepository()

	product := testProduct("1237894563215")
	require.NoError(t, repo.Create(ctx, product))
	assert.False(t, product.CreatedAt.IsZero())

	found, err := repo.FindByBarcode(ctx, "1237894563215")
	require.NoError(t, err)
	assert.Equal(t, product, found)

	err = repo.Create(ctx, testProduct("1237894563215"))
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateKey)
	assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyExists)

	_, err = repo.FindByBarcode(ctx, "7351982406735")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProductRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().NewProductRepository()

	product := testProduct("1237894563215")
	require.NoError(t, repo.Create(ctx, product))
	product.Categories[0] = 99

	found, err := repo.FindByBarcode(ctx, product.Barcode)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, found.Categories)

	found.Categories[1] = 42
	again, err := repo.FindByBarcode(ctx, product.Barcode)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, again.Categories)
}

func TestProductRepository_ListSortedByBarcode(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().NewProductRepository()

	for _, barcode := range []string{"7351982406735", "1122334455666", "4624768392045"} {
		require.NoError(t, repo.Create(ctx, testProduct(barcode)))
	}

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "1122334455666", products[0].Barcode)
	assert.Equal(t, "4624768392045", products[1].Barcode)
	assert.Equal(t, "7351982406735", products[2].Barcode)

	require.NoError(t, repo.Delete(ctx, "4624768392045"))
	assert.ErrorIs(t, repo.Delete(ctx, "4624768392045"), domainerrors.ErrProductNotFound)
}

func TestOrderRepository_FindByProduct(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().NewOrderRepository()

	first := testOrder("1237894563215")
	second := testOrder("7351982406735")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	orders, err := repo.FindByProduct(ctx, "7351982406735")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, second.ID, orders[0].ID)

	assert.ErrorIs(t, repo.Create(ctx, first), domainerrors.ErrOrderAlreadyExists)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.FindByID(ctx, first.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestUserRepository_FindByOrderAndUpdate(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().NewUserRepository()

	orderID := uuid.New()
	alice := &entity.User{NationalID: "71534484E", Name: "Alice", Orders: []uuid.UUID{orderID}}
	bob := &entity.User{NationalID: "53321817C", Name: "Bob"}
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))

	users, err := repo.FindByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "71534484E", users[0].NationalID)

	bob.Orders = []uuid.UUID{orderID}
	require.NoError(t, repo.Update(ctx, bob))

	users, err = repo.FindByOrder(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "53321817C", users[0].NationalID)

	err = repo.Update(ctx, &entity.User{NationalID: "71475686N"})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.ErrorIs(t, repo.Create(ctx, bob), domainerrors.ErrDuplicateKey)
}

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)
	products := store.NewProductRepository()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewProductRepository().Create(ctx, testProduct("1237894563215"))
	})
	require.NoError(t, err)

	_, err = products.FindByBarcode(ctx, "1237894563215")
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		repo := f.NewProductRepository()
		if err := repo.Create(ctx, testProduct("7351982406735")); err != nil {
			return err
		}
		if err := repo.Delete(ctx, "1237894563215"); err != nil {
			return err
		}

		// Visible inside the transaction.
		_, err := repo.FindByBarcode(ctx, "7351982406735")
		require.NoError(t, err)

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = products.FindByBarcode(ctx, "7351982406735")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	_, err = products.FindByBarcode(ctx, "1237894563215")
	assert.NoError(t, err)
}

func TestStore_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore()
	assert.ErrorIs(t, store.NewProductRepository().Create(ctx, testProduct("1237894563215")), context.Canceled)
	assert.ErrorIs(t, NewTransactionManager(store).Execute(ctx, func(repository.RepositoryFactory) error { return nil }), context.Canceled)
}
