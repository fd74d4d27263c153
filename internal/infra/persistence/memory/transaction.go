package memory

import (
	"context"

	"storefront/internal/domain/repository"
)

// transactionManager runs callbacks on a private copy of the store and
// publishes the copy only when the callback succeeds.
type transactionManager struct {
	store *Store
}

// NewTransactionManager creates a TransactionManager for store.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

// Execute holds the write lock for the whole callback, so transactions are
// serialized and never observe each other's partial writes.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tm.store.mu.Lock()
	defer tm.store.mu.Unlock()

	working := tm.store.data.clone()
	if err := fn(&repositoryFactory{view: view{store: tm.store, tx: working}}); err != nil {
		return err
	}

	tm.store.data = working

	return nil
}

// repositoryFactory hands out repositories bound to one transaction's state.
type repositoryFactory struct {
	view view
}

func (f *repositoryFactory) NewProductRepository() repository.ProductRepository {
	return &productRepository{view: f.view}
}

func (f *repositoryFactory) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{view: f.view}
}

func (f *repositoryFactory) NewUserRepository() repository.UserRepository {
	return &userRepository{view: f.view}
}
