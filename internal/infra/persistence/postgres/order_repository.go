package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/retry"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// orderRepository implements the domain.OrderRepository interface using GORM.
// Lines are stored in the jsonb 'lines' column of their order.
type orderRepository struct {
	db     *gorm.DB
	policy retry.Policy
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB, policy retry.Policy) repository.OrderRepository {
	return &orderRepository{db: db, policy: policy}
}

func (repo *orderRepository) run(ctx context.Context, op func(db *gorm.DB) error) error {
	return retry.Do(ctx, repo.policy, isTransient, func(ctx context.Context) error {
		return op(repo.db.WithContext(ctx))
	})
}

// Create persists a new order together with its lines.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.run(ctx, func(db *gorm.DB) error { return db.Create(orderM).Error }); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderAlreadyExists.WithDetails(order.ID.String())
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrConstraintViolation.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// FindByID retrieves a single order by its ID.
func (repo *orderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel
	err := repo.run(ctx, func(db *gorm.DB) error {
		return db.Where("id = ?", id).First(&orderM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithDetails(id.String())
		}

		return nil, errors.Wrap(err, "failed to find order by id")
	}

	return toOrderDomain(&orderM), nil
}

// List returns every order ordered by timestamp, then ID.
func (repo *orderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	return repo.find(ctx, "failed to list orders", func(db *gorm.DB) *gorm.DB { return db })
}

// FindByProduct returns the orders with at least one line referencing barcode.
// It relies on jsonb containment of a one-element line array.
func (repo *orderRepository) FindByProduct(ctx context.Context, barcode string) ([]*entity.Order, error) {
	probe, err := json.Marshal([]map[string]string{{"product_barcode": barcode}})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return repo.find(ctx, "failed to find orders by product", func(db *gorm.DB) *gorm.DB {
		return db.Where("lines @> ?", datatypes.JSON(probe))
	})
}

func (repo *orderRepository) find(ctx context.Context, failure string, scope func(*gorm.DB) *gorm.DB) ([]*entity.Order, error) {
	var orderMs []model.OrderModel
	err := repo.run(ctx, func(db *gorm.DB) error {
		return scope(db).Order(`"timestamp", id`).Find(&orderMs).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, failure)
	}

	orders := make([]*entity.Order, 0, len(orderMs))
	for i := range orderMs {
		orders = append(orders, toOrderDomain(&orderMs[i]))
	}

	return orders, nil
}

// Delete removes an order and its lines. It does not touch referencing users.
func (repo *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var affected int64
	err := repo.run(ctx, func(db *gorm.DB) error {
		result := db.Where("id = ?", id).Delete(&model.OrderModel{})
		affected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete order")
	}
	if affected == 0 {
		return domainerrors.ErrOrderNotFound.WithDetails(id.String())
	}

	return nil
}

func fromOrderDomain(o *entity.Order) *model.OrderModel {
	lines := make(datatypes.JSONSlice[model.OrderLineModel], 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, model.OrderLineModel{
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			ProductName:    l.ProductName,
			LineTotal:      l.LineTotal,
			ProductBarcode: l.ProductBarcode,
		})
	}

	return &model.OrderModel{
		ID:         o.ID,
		TotalPrice: o.TotalPrice,
		Timestamp:  o.Timestamp,
		Lines:      lines,
	}
}

func toOrderDomain(m *model.OrderModel) *entity.Order {
	lines := make([]entity.OrderLine, 0, len(m.Lines))
	for _, l := range m.Lines {
		lines = append(lines, entity.OrderLine{
			Quantity:       l.Quantity,
			UnitPrice:      l.UnitPrice,
			ProductName:    l.ProductName,
			LineTotal:      l.LineTotal,
			ProductBarcode: l.ProductBarcode,
		})
	}

	return &entity.Order{
		ID:         m.ID,
		TotalPrice: m.TotalPrice,
		Timestamp:  m.Timestamp.UTC(),
		Lines:      lines,
	}
}
