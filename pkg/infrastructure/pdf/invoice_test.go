package pdf

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sales/pkg/domain/model"
)

func sampleOrder() model.Order {
	placedAt := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	return model.Order{
		ID:       "a1b2c3d4",
		Username: "alice",
		PlacedAt: &placedAt,
		Items: []model.OrderItem{
			{Name: "Pen", Price: 10, Quantity: 2},
			{Name: "Notebook", Price: 50, Quantity: 1},
		},
		Total: 70,
	}
}

func TestInvoiceLines(t *testing.T) {
	renderer := NewInvoiceRenderer("Rs.")

	assert.Equal(t, []string{
		"Invoice",
		"Order ID: a1b2c3d4",
		"Customer: alice",
		"Date: 2025-03-14 09:26:53",
		"Pen ×2 — Rs. 20",
		"Notebook ×1 — Rs. 50",
		"Total: Rs. 70",
	}, renderer.Lines(sampleOrder()))
}

func TestInvoiceLinesForLegacyOrder(t *testing.T) {
	renderer := NewInvoiceRenderer("")
	order := model.Order{Username: "bob", Items: []model.OrderItem{{Name: "Pen", Price: 10, Quantity: 1}}, Total: 10}

	lines := renderer.Lines(order)
	assert.Contains(t, lines, "Order ID: N/A")
	assert.Contains(t, lines, "Date: N/A")
	assert.Contains(t, lines, "Total: 10")
}

func TestRenderIsDeterministic(t *testing.T) {
	renderer := NewInvoiceRenderer("Rs.")

	first, err := renderer.Render(sampleOrder())
	require.NoError(t, err)
	second, err := renderer.Render(sampleOrder())
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(first, []byte("%PDF-")))
	assert.Equal(t, first, second)

	other := sampleOrder()
	other.Total = 71
	third, err := renderer.Render(other)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestRenderLegacyAndLongOrders(t *testing.T) {
	renderer := NewInvoiceRenderer("Rs.")

	legacy, err := renderer.Render(model.Order{Username: "bob"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(legacy, []byte("%PDF-")))

	long := sampleOrder()
	long.Items = nil
	for i := 0; i < 120; i++ {
		long.Items = append(long.Items, model.OrderItem{Name: fmt.Sprintf("Item %d", i), Price: 3, Quantity: 1})
	}
	long.Total = 360

	first, err := renderer.Render(long)
	require.NoError(t, err)
	second, err := renderer.Render(long)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
