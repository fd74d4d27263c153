// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	// Save validates and stores a new user. Every referenced order must exist.
	Save(ctx context.Context, user *entity.User) error
	// Update validates and replaces an existing user.
	Update(ctx context.Context, user *entity.User) error
	Get(ctx context.Context, nationalID string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Delete(ctx context.Context, nationalID string) error
	// FindByOrder returns the users referencing the order.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.User, error)
	// RecordAccess appends an access timestamp and stores the user again.
	RecordAccess(ctx context.Context, nationalID string, at time.Time) (*entity.User, error)
}
