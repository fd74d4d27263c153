package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	logs "storefront/internal/infra/log"
	"storefront/internal/usecase"
	"storefront/internal/validation"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	engine    *validation.Engine
	cascade   *CascadeManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	OrderRepo repository.OrderRepository
	Engine    *validation.Engine
	Cascade   *CascadeManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager: params.TxManager,
		orderRepo: params.OrderRepo,
		engine:    params.Engine,
		cascade:   params.Cascade,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return logs.FromContextOrDefault(ctx, srv.logger)
}

// Save validates the order against the products its lines reference and stores it.
// Validation and insert share one transaction so they see the same products.
func (srv *orderService) Save(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.engine.ValidateOrder(ctx, order, repoFactory.NewProductRepository()); err != nil {
			srv.log(ctx).Warn("Order rejected", slog.String("orderID", order.ID.String()), slog.Any("error", err))

			return err
		}

		if err := repoFactory.NewOrderRepository().Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Debug("Order saved", slog.String("orderID", order.ID.String()), slog.Int("lines", len(order.Lines)))
	publishCommitted(ctx, srv.publisher, srv.log(ctx), newDocumentEvent(service.EventDocumentSaved, entity.KindOrder, order.ID.String()))

	return nil
}

// Get returns the order with the given ID.
func (srv *orderService) Get(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return order, nil
}

// List returns every order.
func (srv *orderService) List(ctx context.Context) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// FindByProduct returns the orders with a line referencing the barcode.
func (srv *orderService) FindByProduct(ctx context.Context, barcode string) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindByProduct(ctx, barcode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find orders by product")
	}

	return orders, nil
}

// Delete removes the order and pulls it from every user that references it,
// all in one transaction.
func (srv *orderService) Delete(ctx context.Context, id uuid.UUID) (*usecase.DeleteOrderOutput, error) {
	var pulledFrom []string
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		pulledFrom, err = srv.cascade.DeleteOrder(ctx, repoFactory, id)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete order", slog.String("orderID", id.String()), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Order deleted", slog.String("orderID", id.String()), slog.Int("pulledFrom", len(pulledFrom)))

	event := newDocumentEvent(service.EventOrderDeleted, entity.KindOrder, id.String())
	event.PulledFrom = pulledFrom
	publishCommitted(ctx, srv.publisher, srv.log(ctx), event)

	return &usecase.DeleteOrderOutput{OrderID: id, PulledFrom: pulledFrom}, nil
}
