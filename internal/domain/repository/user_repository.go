package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/google/uuid"
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. National identifiers are unique.
	Create(ctx context.Context, user *entity.User) error

	// Update replaces an existing user document.
	Update(ctx context.Context, user *entity.User) error

	// FindByNationalID retrieves a single user by national identifier.
	FindByNationalID(ctx context.Context, nationalID string) (*entity.User, error)

	// FindByOrder returns every user whose order list contains orderID, ordered by national identifier.
	FindByOrder(ctx context.Context, orderID uuid.UUID) ([]*entity.User, error)

	// List returns every user ordered by national identifier.
	List(ctx context.Context) ([]*entity.User, error)

	// Delete removes a user.
	Delete(ctx context.Context, nationalID string) error
}
