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

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	engine      *validation.Engine
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Engine      *validation.Engine
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo: params.ProductRepo,
		engine:      params.Engine,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return logs.FromContextOrDefault(ctx, srv.logger)
}

// Save validates the product and stores it.
func (srv *productService) Save(ctx context.Context, product *entity.Product) error {
	if err := srv.engine.ValidateProduct(product); err != nil {
		srv.log(ctx).Warn("Product rejected", slog.String("barcode", product.Barcode), slog.Any("error", err))

		return err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Debug("Product saved", slog.String("barcode", product.Barcode))
	publishCommitted(ctx, srv.publisher, srv.log(ctx), newDocumentEvent(service.EventDocumentSaved, entity.KindProduct, product.Barcode))

	return nil
}

// Get returns the product with the given barcode.
func (srv *productService) Get(ctx context.Context, barcode string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByBarcode(ctx, barcode)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product by barcode")
	}

	return product, nil
}

// List returns every product.
func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// Delete removes the product. Orders keep their lines unchanged.
func (srv *productService) Delete(ctx context.Context, barcode string) error {
	if err := srv.productRepo.Delete(ctx, barcode); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("barcode", barcode))
	publishCommitted(ctx, srv.publisher, srv.log(ctx), newDocumentEvent(service.EventDocumentDeleted, entity.KindProduct, barcode))

	return nil
}
