package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// DocumentStore is the kind-agnostic persistence boundary callers use when
// they do not care which typed service handles a document.
type DocumentStore interface {
	// Save validates then stores doc; collisions on the document key fail with DuplicateKey.
	Save(ctx context.Context, doc entity.Document) error
	// Get returns the document or NotFound.
	Get(ctx context.Context, kind entity.Kind, id string) (entity.Document, error)
	// Delete removes the document, running the cascade for orders.
	Delete(ctx context.Context, kind entity.Kind, id string) error
	// FindReferencing returns documents of kind that reference referencedID of referencedKind.
	FindReferencing(ctx context.Context, kind, referencedKind entity.Kind, referencedID string) ([]entity.Document, error)
}
