// Package memory implements the repositories on in-process maps. It backs the
// seed driver when no database is configured and the service tests.
package memory

import (
	"context"
	"slices"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/google/uuid"
)

// state is one consistent version of every collection. Stored values are
// never mutated in place; writes replace them with fresh copies, so cloning a
// state only needs to copy the maps.
type state struct {
	products map[string]*entity.Product
	orders   map[uuid.UUID]*entity.Order
	users    map[string]*entity.User
}

func newState() *state {
	return &state{
		products: make(map[string]*entity.Product),
		orders:   make(map[uuid.UUID]*entity.Order),
		users:    make(map[string]*entity.User),
	}
}

func (s *state) clone() *state {
	return &state{
		products: cloneMap(s.products),
		orders:   cloneMap(s.orders),
		users:    cloneMap(s.users),
	}
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}

// Store holds the collections and serializes writers.
type Store struct {
	mu   sync.RWMutex
	data *state
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{data: newState()}
}

// view binds a repository either to the live store, locking per call, or to
// the private state of a running transaction.
type view struct {
	store *Store
	tx    *state
}

func (v view) read(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.tx != nil {
		return fn(v.tx)
	}

	v.store.mu.RLock()
	defer v.store.mu.RUnlock()

	return fn(v.store.data)
}

func (v view) write(ctx context.Context, fn func(*state) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if v.tx != nil {
		return fn(v.tx)
	}

	v.store.mu.Lock()
	defer v.store.mu.Unlock()

	return fn(v.store.data)
}

// NewProductRepository returns a ProductRepository on the live store.
func (s *Store) NewProductRepository() repository.ProductRepository {
	return &productRepository{view: view{store: s}}
}

// NewOrderRepository returns an OrderRepository on the live store.
func (s *Store) NewOrderRepository() repository.OrderRepository {
	return &orderRepository{view: view{store: s}}
}

// NewUserRepository returns a UserRepository on the live store.
func (s *Store) NewUserRepository() repository.UserRepository {
	return &userRepository{view: view{store: s}}
}

func cloneProduct(p *entity.Product) *entity.Product {
	out := *p
	out.Categories = slices.Clone(p.Categories)

	return &out
}

func cloneOrder(o *entity.Order) *entity.Order {
	out := *o
	out.Lines = slices.Clone(o.Lines)

	return &out
}

func cloneUser(u *entity.User) *entity.User {
	out := *u
	out.LastAccesses = slices.Clone(u.LastAccesses)
	out.CreditCards = slices.Clone(u.CreditCards)
	out.Orders = slices.Clone(u.Orders)

	return &out
}

func now() time.Time {
	return time.Now().UTC()
}
