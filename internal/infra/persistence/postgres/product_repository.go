package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"
	"storefront/internal/infra/retry"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db     *gorm.DB
	policy retry.Policy
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB, policy retry.Policy) repository.ProductRepository {
	return &productRepository{db: db, policy: policy}
}

func (repo *productRepository) run(ctx context.Context, op func(db *gorm.DB) error) error {
	return retry.Do(ctx, repo.policy, isTransient, func(ctx context.Context) error {
		return op(repo.db.WithContext(ctx))
	})
}

// Create persists a new product.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.run(ctx, func(db *gorm.DB) error { return db.Create(productM).Error }); err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductAlreadyExists.WithDetails(product.Barcode)
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrConstraintViolation.WithDetails(err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.CreatedAt = productM.CreatedAt

	return nil
}

// FindByBarcode retrieves a single product by its barcode.
func (repo *productRepository) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.run(ctx, func(db *gorm.DB) error {
		return db.Where("barcode = ?", barcode).First(&productM).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetails(barcode)
		}

		return nil, errors.Wrap(err, "failed to find product by barcode")
	}

	return toProductDomain(&productM), nil
}

// List returns every product ordered by barcode.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.run(ctx, func(db *gorm.DB) error {
		return db.Order("barcode").Find(&productMs).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products, nil
}

// Delete removes a product. Order lines referencing it are left as they are.
func (repo *productRepository) Delete(ctx context.Context, barcode string) error {
	var affected int64
	err := repo.run(ctx, func(db *gorm.DB) error {
		result := db.Where("barcode = ?", barcode).Delete(&model.ProductModel{})
		affected = result.RowsAffected

		return result.Error
	})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete product")
	}
	if affected == 0 {
		return domainerrors.ErrProductNotFound.WithDetails(barcode)
	}

	return nil
}

func fromProductDomain(p *entity.Product) *model.ProductModel {
	categories := make(pq.Int64Array, 0, len(p.Categories))
	for _, c := range p.Categories {
		categories = append(categories, int64(c))
	}

	return &model.ProductModel{
		Barcode:    p.Barcode,
		Name:       p.Name,
		Category:   int64(p.Category),
		Categories: categories,
		CreatedAt:  p.CreatedAt,
	}
}

func toProductDomain(m *model.ProductModel) *entity.Product {
	var categories []int
	if len(m.Categories) > 0 {
		categories = make([]int, 0, len(m.Categories))
		for _, c := range m.Categories {
			categories = append(categories, int(c))
		}
	}

	return &entity.Product{
		Barcode:    m.Barcode,
		Name:       m.Name,
		Category:   int(m.Category),
		Categories: categories,
		CreatedAt:  m.CreatedAt,
	}
}
