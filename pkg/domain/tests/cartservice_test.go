package tests

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/pkg/domain/model"
	"sales/pkg/domain/service"
)

func TestAddToCart(t *testing.T) {
	repo := &mockProductRepository{products: []model.Product{pen, notebook}}
	cartService := service.NewCartService(repo)
	ctx := context.Background()
	cart := model.NewCart()

	t.Run("Success", func(t *testing.T) {
		item, err := cartService.AddToCart(ctx, cart, notebook.ID)
		require.NoError(t, err)
		assert.Equal(t, model.CartItem{ProductID: notebook.ID, Name: "Notebook", Price: 50, Quantity: 1}, *item)
		assert.Equal(t, 1, cart.Len())
	})

	t.Run("Fail on unknown product", func(t *testing.T) {
		_, err := cartService.AddToCart(ctx, cart, uuid.New())
		assert.ErrorIs(t, err, model.ErrProductNotFound)
		assert.Equal(t, 1, cart.Len())
	})
}
