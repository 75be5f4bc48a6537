package tests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

var _ model.UserRepository = &mockUserRepository{}

type mockUserRepository struct {
	store   map[string]*model.User
	listErr error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{store: make(map[string]*model.User)}
}

func (m *mockUserRepository) Create(_ context.Context, user *model.User) error {
	if _, exists := m.store[user.Username]; exists {
		return model.ErrUsernameTaken
	}
	stored := *user
	m.store[user.Username] = &stored
	return nil
}

func (m *mockUserRepository) FindByUsername(_ context.Context, username string) (*model.User, error) {
	if user, ok := m.store[username]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, model.ErrUserNotFound
}

func (m *mockUserRepository) List(_ context.Context) ([]model.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	users := make([]model.User, 0, len(m.store))
	for _, user := range m.store {
		users = append(users, *user)
	}
	return users, nil
}

type mockPasswordManager struct{}

func (m *mockPasswordManager) Hash(pwd string) (string, error) {
	if pwd == "" {
		return "", errors.New("empty password")
	}
	return fmt.Sprintf("%s-hashed", pwd), nil
}

func (m *mockPasswordManager) Check(hashed, pwd string) (bool, error) {
	return hashed == fmt.Sprintf("%s-hashed", pwd), nil
}

var _ model.ProductRepository = &mockProductRepository{}

type mockProductRepository struct {
	products []model.Product
}

func (m *mockProductRepository) NextID() (uuid.UUID, error) { return uuid.NewRandom() }

func (m *mockProductRepository) Create(_ context.Context, product *model.Product) error {
	m.products = append(m.products, *product)
	return nil
}

func (m *mockProductRepository) Find(_ context.Context, id uuid.UUID) (*model.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			clone := p
			return &clone, nil
		}
	}
	return nil, model.ErrProductNotFound
}

func (m *mockProductRepository) List(_ context.Context) ([]model.Product, error) {
	return append([]model.Product{}, m.products...), nil
}

var _ model.OrderRepository = &mockOrderRepository{}

type mockOrderRepository struct {
	mu        sync.Mutex
	orders    []model.Order
	createErr error
	nextID    int
}

func (m *mockOrderRepository) NextID() (string, error) {
	m.nextID++
	return fmt.Sprintf("ord%05d", m.nextID), nil
}

func (m *mockOrderRepository) Create(_ context.Context, order *model.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderRepository) Find(_ context.Context, ref string) (*model.Order, error) {
	for _, o := range m.orders {
		if o.Ref() == ref {
			clone := o
			return &clone, nil
		}
	}
	return nil, model.ErrOrderNotFound
}

func (m *mockOrderRepository) List(_ context.Context) ([]model.Order, error) {
	return append([]model.Order{}, m.orders...), nil
}

func (m *mockOrderRepository) ListByUsername(_ context.Context, username string) ([]model.Order, error) {
	var orders []model.Order
	for _, o := range m.orders {
		if o.Username == username {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

type mockInvoiceRenderer struct {
	rendered []model.Order
}

func (m *mockInvoiceRenderer) Render(order model.Order) ([]byte, error) {
	m.rendered = append(m.rendered, order)
	lines := []string{order.DisplayID(), order.Username}
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	return []byte(strings.Join(lines, "\n")), nil
}

var _ service.EventDispatcher = &mockEventDispatcher{}

type mockEventDispatcher struct {
	events []service.Event
}

func (m *mockEventDispatcher) Dispatch(event service.Event) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockEventDispatcher) Reset() {
	m.events = nil
}
