package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrderService_Save_RoundTrip(t *testing.T) {
	fx := createTestStore(t)
	seedCatalog(t, fx)
	ctx := context.Background()

	order := newOrder("1898", line(macbook(), 1, "1099", "1099"), line(iphone(), 1, "799", "799"))
	require.NoError(t, fx.orders.Save(ctx, order))
	assert.NotEqual(t, uuid.Nil, order.ID)

	got, err := fx.orders.Get(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got.Lines, 2)
	assert.Equal(t, "macbook_pro_13", got.Lines[0].ProductName)
	assert.Equal(t, "1237894563215", got.Lines[0].ProductBarcode)
	assert.True(t, got.Lines[0].LineTotal.Equal(dec("1099")))
	assert.Equal(t, "iphone_7_plus", got.Lines[1].ProductName)
	assert.True(t, got.TotalPrice.Equal(dec("1898")))
}

func TestOrderService_Save_KeepsGivenID(t *testing.T) {
	fx := createTestStore(t)
	seedCatalog(t, fx)
	ctx := context.Background()

	id := uuid.New()
	order := newOrder("109.9", line(shirt(), 2, "54.95", "109.90"))
	order.ID = id
	require.NoError(t, fx.orders.Save(ctx, order))
	assert.Equal(t, id, order.ID)

	again := newOrder("109.9", line(shirt(), 2, "54.95", "109.90"))
	again.ID = id
	assert.ErrorIs(t, fx.orders.Save(ctx, again), domainerrors.ErrDuplicateKey)
}

func TestOrderService_Save_Rejected(t *testing.T) {
	tests := []struct {
		name    string
		order   *entity.Order
		wantErr error
	}{
		{
			name:    "total differs from the sum of lines",
			order:   newOrder("1298", line(macbook(), 1, "1099", "1099"), line(iphone(), 1, "799", "799")),
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "line total differs from quantity times price",
			order:   newOrder("1200", line(macbook(), 1, "1099", "1200")),
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "product name differs from the product",
			order: newOrder("1099", entity.OrderLine{
				Quantity: 1, UnitPrice: dec("1099"), ProductName: "macbook_air",
				LineTotal: dec("1099"), ProductBarcode: "1237894563215",
			}),
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name: "referenced product does not exist",
			order: newOrder("10", entity.OrderLine{
				Quantity: 1, UnitPrice: dec("10"), ProductName: "gorro_lana_cuadros",
				LineTotal: dec("10"), ProductBarcode: "4624768392045",
			}),
			wantErr: domainerrors.ErrNotFound,
		},
		{
			name:    "no lines",
			order:   newOrder("0"),
			wantErr: domainerrors.ErrConstraintViolation,
		},
		{
			name:    "negative unit price",
			order:   newOrder("-1", line(macbook(), 1, "-1", "-1")),
			wantErr: domainerrors.ErrConstraintViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestStore(t)
			seedCatalog(t, fx)
			ctx := context.Background()

			err := fx.orders.Save(ctx, tt.order)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			orders, err := fx.orders.List(ctx)
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func TestOrderService_ProductDeletionLeavesDanglingLine(t *testing.T) {
	fx := createTestStore(t)
	seedCatalog(t, fx)
	ctx := context.Background()

	order := newOrder("1099", line(macbook(), 1, "1099", "1099"))
	require.NoError(t, fx.orders.Save(ctx, order))

	referencing, err := fx.orders.FindByProduct(ctx, "1237894563215")
	require.NoError(t, err)
	require.Len(t, referencing, 1)

	require.NoError(t, fx.products.Delete(ctx, "1237894563215"))

	got, err := fx.orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "1237894563215", got.Lines[0].ProductBarcode)
}

func TestOrderService_Save_TransactionError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	srv := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: mockRepo.NewMockOrderRepository(t),
		Engine:    newTestEngine(t),
		Cascade:   NewCascadeManager(newDiscardLogger()),
		Publisher: &recordingPublisher{},
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(domainerrors.ErrTransactionFailed)

	err := srv.Save(ctx, newOrder("1099", line(macbook(), 1, "1099", "1099")))
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestOrderService_Save_CreateError(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	publisher := &recordingPublisher{}
	srv := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: mockRepo.NewMockOrderRepository(t),
		Engine:    newTestEngine(t),
		Cascade:   NewCascadeManager(newDiscardLogger()),
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})

	ctx := context.Background()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockProductRepo := mockRepo.NewMockProductRepository(t)
			mockOrderRepo := mockRepo.NewMockOrderRepository(t)

			mockFactory.EXPECT().NewProductRepository().Return(mockProductRepo)
			mockFactory.EXPECT().NewOrderRepository().Return(mockOrderRepo)

			mockProductRepo.EXPECT().
				FindByBarcode(ctx, "1237894563215").
				Return(macbook(), nil)
			mockOrderRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Order")).
				Return(errors.New("connection reset"))

			return fn(mockFactory)
		})

	err := srv.Save(ctx, newOrder("1099", line(macbook(), 1, "1099", "1099")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create order")
	assert.Empty(t, publisher.types())
}
