package impl

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// documentStore dispatches kind-agnostic calls to the typed services.
type documentStore struct {
	products usecase.ProductUsecase
	orders   usecase.OrderUsecase
	users    usecase.UserUsecase
}

// DocumentStoreParams holds dependencies for DocumentStore, injected by Fx.
type DocumentStoreParams struct {
	fx.In

	Products usecase.ProductUsecase
	Orders   usecase.OrderUsecase
	Users    usecase.UserUsecase
}

// NewDocumentStore is the constructor for documentStore.
func NewDocumentStore(params DocumentStoreParams) usecase.DocumentStore {
	return &documentStore{
		products: params.Products,
		orders:   params.Orders,
		users:    params.Users,
	}
}

// Save validates then stores doc through the service owning its kind.
func (s *documentStore) Save(ctx context.Context, doc entity.Document) error {
	switch d := doc.(type) {
	case *entity.Product:
		return s.products.Save(ctx, d)
	case *entity.Order:
		return s.orders.Save(ctx, d)
	case *entity.User:
		return s.users.Save(ctx, d)
	default:
		return domainerrors.ErrUnknownKind.WithDetailsf("%T", doc)
	}
}

// Get returns the document of kind identified by id.
func (s *documentStore) Get(ctx context.Context, kind entity.Kind, id string) (entity.Document, error) {
	switch kind {
	case entity.KindProduct:
		return nilIfErr(s.products.Get(ctx, id))
	case entity.KindOrder:
		orderID, err := parseOrderID(id)
		if err != nil {
			return nil, err
		}

		return nilIfErr(s.orders.Get(ctx, orderID))
	case entity.KindUser:
		return nilIfErr(s.users.Get(ctx, id))
	default:
		return nil, domainerrors.ErrUnknownKind.WithDetails(kind.String())
	}
}

// Delete removes the document of kind identified by id. Orders cascade.
func (s *documentStore) Delete(ctx context.Context, kind entity.Kind, id string) error {
	switch kind {
	case entity.KindProduct:
		return s.products.Delete(ctx, id)
	case entity.KindOrder:
		orderID, err := parseOrderID(id)
		if err != nil {
			return err
		}
		_, err = s.orders.Delete(ctx, orderID)

		return err
	case entity.KindUser:
		return s.users.Delete(ctx, id)
	default:
		return domainerrors.ErrUnknownKind.WithDetails(kind.String())
	}
}

// FindReferencing returns the documents of kind holding a reference to
// referencedID. Users reference orders; orders reference products through
// their lines.
func (s *documentStore) FindReferencing(ctx context.Context, kind, referencedKind entity.Kind, referencedID string) ([]entity.Document, error) {
	switch {
	case kind == entity.KindUser && referencedKind == entity.KindOrder:
		orderID, err := parseOrderID(referencedID)
		if err != nil {
			return nil, err
		}

		users, err := s.users.FindByOrder(ctx, orderID)
		if err != nil {
			return nil, err
		}

		return toDocuments(users), nil
	case kind == entity.KindOrder && referencedKind == entity.KindProduct:
		orders, err := s.orders.FindByProduct(ctx, referencedID)
		if err != nil {
			return nil, err
		}

		return toDocuments(orders), nil
	default:
		return nil, domainerrors.ErrUnknownKind.WithDetailsf("%s does not reference %s", kind, referencedKind)
	}
}

func parseOrderID(id string) (uuid.UUID, error) {
	orderID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, domainerrors.ErrMalformedInput.WithDetailsf("order id %q is not a UUID", id)
	}

	return orderID, nil
}

// nilIfErr keeps a typed nil pointer from becoming a non-nil Document.
func nilIfErr[T entity.Document](doc T, err error) (entity.Document, error) {
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func toDocuments[T entity.Document](docs []T) []entity.Document {
	out := make([]entity.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, doc)
	}

	return out
}
