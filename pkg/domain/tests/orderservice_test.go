package tests

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

func TestListUserOrders(t *testing.T) {
	older := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	repo := &mockOrderRepository{orders: []model.Order{
		{ID: "old", Username: "alice", PlacedAt: &older},
		{Username: "alice"},
		{ID: "other", Username: "bob", PlacedAt: &newer},
		{ID: "new", Username: "alice", PlacedAt: &newer},
	}}
	orderService := service.NewOrderService(repo)

	orders, err := orderService.ListUserOrders(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "new", orders[0].ID)
	assert.Equal(t, "old", orders[1].ID)
	assert.Equal(t, model.Placeholder, orders[2].DisplayID())

	all, err := orderService.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 4)
}

func TestFindOrder(t *testing.T) {
	orderService := service.NewOrderService(&mockOrderRepository{})

	_, err := orderService.FindOrder(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrOrderNotFound)
}
