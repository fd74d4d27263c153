package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestEngine(t *testing.T) *validation.Engine {
	t.Helper()

	engine, err := validation.NewEngine()
	require.NoError(t, err)

	return engine
}

// recordingPublisher keeps every event it is asked to publish.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.DocumentEvent
	err    error
}

func (p *recordingPublisher) PublishDocumentEvent(_ context.Context, event *service.DocumentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}

	return out
}

func (p *recordingPublisher) last() *service.DocumentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.events) == 0 {
		return nil
	}

	return p.events[len(p.events)-1]
}

type storeFixtures struct {
	products  usecase.ProductUsecase
	orders    usecase.OrderUsecase
	users     usecase.UserUsecase
	docs      usecase.DocumentStore
	publisher *recordingPublisher
}

// createTestStore wires every service on one memory store.
func createTestStore(t *testing.T) storeFixtures {
	t.Helper()

	store := memory.NewStore()
	txManager := memory.NewTransactionManager(store)
	engine := newTestEngine(t)
	publisher := &recordingPublisher{}
	logger := newDiscardLogger()

	products := NewProductService(ProductServiceParams{
		ProductRepo: store.NewProductRepository(),
		Engine:      engine,
		Publisher:   publisher,
		Logger:      logger,
	})
	orders := NewOrderService(OrderServiceParams{
		TxManager: txManager,
		OrderRepo: store.NewOrderRepository(),
		Engine:    engine,
		Cascade:   NewCascadeManager(logger),
		Publisher: publisher,
		Logger:    logger,
	})
	users := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  store.NewUserRepository(),
		Engine:    engine,
		Publisher: publisher,
		Logger:    logger,
	})

	return storeFixtures{
		products:  products,
		orders:    orders,
		users:     users,
		docs:      NewDocumentStore(DocumentStoreParams{Products: products, Orders: orders, Users: users}),
		publisher: publisher,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func macbook() *entity.Product {
	return &entity.Product{Barcode: "1237894563215", Name: "macbook_pro_13", Category: 1, Categories: []int{1, 3, 5}}
}

func iphone() *entity.Product {
	return &entity.Product{Barcode: "7351982406735", Name: "iphone_7_plus", Category: 3, Categories: []int{3, 1, 5}}
}

func shirt() *entity.Product {
	return &entity.Product{Barcode: "1122334455666", Name: "camisa_seda_negra", Category: 16, Categories: []int{16, 10, 12, 14}}
}

func line(p *entity.Product, quantity int, unitPrice, lineTotal string) entity.OrderLine {
	return entity.OrderLine{
		Quantity:       quantity,
		UnitPrice:      dec(unitPrice),
		ProductName:    p.Name,
		LineTotal:      dec(lineTotal),
		ProductBarcode: p.Barcode,
	}
}

func newOrder(total string, lines ...entity.OrderLine) *entity.Order {
	return &entity.Order{
		TotalPrice: dec(total),
		Timestamp:  time.Date(2017, 6, 20, 18, 32, 10, 0, time.UTC),
		Lines:      lines,
	}
}

func newUser(nationalID string, orders ...uuid.UUID) *entity.User {
	return &entity.User{
		NationalID:    nationalID,
		Name:          "Rodrigo",
		FirstSurname:  "Díaz",
		SecondSurname: "de Vivar",
		BirthDate:     "1990-04-12",
		CreditCards: []entity.CreditCard{{
			FullName: "Rodrigo Díaz de Vivar",
			Number:   "1234567891234567",
			Month:    "02",
			Year:     "23",
			CVV:      "123",
		}},
		Orders: orders,
	}
}

// seedCatalog saves the products every order test draws from.
func seedCatalog(t *testing.T, fx storeFixtures) {
	t.Helper()

	ctx := context.Background()
	for _, p := range []*entity.Product{macbook(), iphone(), shirt()} {
		require.NoError(t, fx.products.Save(ctx, p))
	}
}
