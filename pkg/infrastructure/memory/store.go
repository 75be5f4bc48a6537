package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"sales/pkg/domain/model"
)

const orderIDLength = 8

// Store keeps users, products and orders in process memory. It backs the
// "memory" storage driver used for demos and tests.
type Store struct {
	mu sync.RWMutex

	users    []model.User
	products []model.Product
	orders   []model.OrderRecord
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

func (s *Store) Products() *ProductRepository {
	return &ProductRepository{store: s}
}

func (s *Store) Orders() *OrderRepository {
	return &OrderRepository{store: s}
}

type UserRepository struct {
	store *Store
}

var _ model.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *model.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Username == user.Username {
			return model.ErrUsernameTaken
		}
	}
	r.store.users = append(r.store.users, *user)
	return nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]model.User{}, r.store.users...), nil
}

type ProductRepository struct {
	store *Store
}

var _ model.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) NextID() (uuid.UUID, error) {
	return uuid.NewRandom()
}

func (r *ProductRepository) Create(_ context.Context, product *model.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.products = append(r.store.products, *product)
	return nil
}

func (r *ProductRepository) Find(_ context.Context, id uuid.UUID) (*model.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (r *ProductRepository) List(_ context.Context) ([]model.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append([]model.Product{}, r.store.products...), nil
}

type OrderRepository struct {
	store *Store
}

var _ model.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) NextID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String()[:orderIDLength], nil
}

// Create stores the order in its persisted shape so reads go through the
// same defaulting rules as the database drivers.
func (r *OrderRepository) Create(_ context.Context, order *model.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	rec := model.NewOrderRecord(*order)
	rec.Key = order.ID
	r.store.orders = append(r.store.orders, rec)
	return nil
}

// Insert stores a raw record, which lets callers reproduce older schemas.
// Records without a key get one, as a database would assign it.
func (r *OrderRepository) Insert(rec model.OrderRecord) string {
	if rec.Key == "" {
		rec.Key = uuid.NewString()
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.orders = append(r.store.orders, rec)
	return rec.Key
}

func (r *OrderRepository) Find(_ context.Context, ref string) (*model.Order, error) {
	if ref == "" {
		return nil, model.ErrOrderNotFound
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, rec := range r.store.orders {
		order := rec.Order()
		if order.Ref() == ref {
			return &order, nil
		}
	}
	return nil, model.ErrOrderNotFound
}

func (r *OrderRepository) List(_ context.Context) ([]model.Order, error) {
	return r.filter(func(model.OrderRecord) bool { return true }), nil
}

func (r *OrderRepository) ListByUsername(_ context.Context, username string) ([]model.Order, error) {
	return r.filter(func(rec model.OrderRecord) bool { return rec.Username == username }), nil
}

func (r *OrderRepository) filter(keep func(model.OrderRecord) bool) []model.Order {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orders := make([]model.Order, 0, len(r.store.orders))
	for _, rec := range r.store.orders {
		if keep(rec) {
			orders = append(orders, rec.Order())
		}
	}
	return orders
}
