package postgres

import (
	"context"

	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the document tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&model.ProductModel{},
		&model.OrderModel{},
		&model.UserModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate document tables")
	}

	return nil
}
