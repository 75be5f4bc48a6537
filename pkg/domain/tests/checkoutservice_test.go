package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

func setupCheckout(t *testing.T) (service.CheckoutService, *mockOrderRepository, *mockEventDispatcher) {
	repo := &mockOrderRepository{}
	dispatcher := &mockEventDispatcher{}
	checkoutService := service.NewCheckoutService(repo, dispatcher)
	return checkoutService, repo, dispatcher
}

func TestPlaceOrder(t *testing.T) {
	checkoutService, repo, dispatcher := setupCheckout(t)
	ctx := context.Background()

	cart := model.NewCart()
	cart.Add(pen)
	cart.Add(notebook)
	require.NoError(t, cart.SetQuantity(0, 2))
	require.Equal(t, int64(70), cart.Total())
	snapshot := cart.Items()

	order, err := checkoutService.PlaceOrder(ctx, "alice", cart)

	require.NoError(t, err)
	assert.Equal(t, "alice", order.Username)
	assert.Equal(t, int64(70), order.Total)
	assert.NotEmpty(t, order.ID)
	require.NotNil(t, order.PlacedAt)
	assert.Equal(t, []model.OrderItem{
		{Name: "Pen", Price: 10, Quantity: 2},
		{Name: "Notebook", Price: 50, Quantity: 1},
	}, order.Items)
	require.Len(t, order.Items, len(snapshot))

	assert.True(t, cart.IsEmpty())

	require.Len(t, repo.orders, 1)
	assert.Equal(t, *order, repo.orders[0])

	require.Len(t, dispatcher.events, 1)
	event := dispatcher.events[0].(model.OrderPlaced)
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, int64(70), event.Total)
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	checkoutService, repo, dispatcher := setupCheckout(t)

	cart := model.NewCart()
	_, err := checkoutService.PlaceOrder(context.Background(), "alice", cart)

	assert.ErrorIs(t, err, model.ErrCartEmpty)
	assert.Empty(t, repo.orders)
	assert.Empty(t, dispatcher.events)
	assert.True(t, cart.IsEmpty())

	t.Run("Only removed lines", func(t *testing.T) {
		cart.Add(pen)
		require.NoError(t, cart.Remove(0))

		_, err := checkoutService.PlaceOrder(context.Background(), "alice", cart)
		assert.ErrorIs(t, err, model.ErrCartEmpty)
		assert.Empty(t, repo.orders)
	})
}

func TestPlaceOrderKeepsCartWhenStoreFails(t *testing.T) {
	checkoutService, repo, dispatcher := setupCheckout(t)
	repo.createErr = errors.New("connection reset")

	cart := model.NewCart()
	cart.Add(pen)

	_, err := checkoutService.PlaceOrder(context.Background(), "alice", cart)

	require.Error(t, err)
	assert.Equal(t, 1, cart.Len())
	assert.Empty(t, dispatcher.events)
}

func TestPlaceOrderCopiesPrices(t *testing.T) {
	checkoutService, repo, _ := setupCheckout(t)

	product := model.Product{ID: uuid.New(), Name: "Ink", Price: 5}
	cart := model.NewCart()
	cart.Add(product)
	product.Price = 500

	order, err := checkoutService.PlaceOrder(context.Background(), "bob", cart)
	require.NoError(t, err)
	assert.Equal(t, int64(5), order.Items[0].Price)
	assert.Equal(t, int64(5), repo.orders[0].Total)
}
