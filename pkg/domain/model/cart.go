package model

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrCartEmpty          = errors.New("cart is empty")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrQuantityOutOfRange = errors.New("quantity must be between 1 and 20")
)

const (
	MinQuantity = 1
	MaxQuantity = 20
)

type CartItem struct {
	ProductID uuid.UUID
	Name      string
	Price     int64
	Quantity  int
}

func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// Cart is an ordered list of line items addressed by position. Adding the
// same product twice produces two lines. A removed line keeps quantity 0
// until the cart is next read or mutated, when zero-quantity lines are
// filtered out.
type Cart struct {
	items []CartItem
}

// NewCart restores a cart from previously materialized items. Lines with a
// non-positive quantity are dropped and quantities above MaxQuantity are
// capped.
func NewCart(items ...CartItem) *Cart {
	c := &Cart{items: make([]CartItem, 0, len(items))}
	for _, item := range items {
		if item.Quantity < MinQuantity {
			continue
		}
		if item.Quantity > MaxQuantity {
			item.Quantity = MaxQuantity
		}
		c.items = append(c.items, item)
	}
	return c
}

func (c *Cart) Add(product Product) {
	c.compact()
	c.items = append(c.items, CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  MinQuantity,
	})
}

func (c *Cart) SetQuantity(index, quantity int) error {
	c.compact()
	if index < 0 || index >= len(c.items) {
		return ErrCartItemNotFound
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return ErrQuantityOutOfRange
	}
	c.items[index].Quantity = quantity
	return nil
}

func (c *Cart) Remove(index int) error {
	c.compact()
	if index < 0 || index >= len(c.items) {
		return ErrCartItemNotFound
	}
	c.items[index].Quantity = 0
	return nil
}

func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the materialized lines.
func (c *Cart) Items() []CartItem {
	c.compact()
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}

func (c *Cart) Len() int {
	c.compact()
	return len(c.items)
}

func (c *Cart) IsEmpty() bool {
	return c.Len() == 0
}

func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Subtotal()
	}
	return total
}

func (c *Cart) compact() {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.Quantity > 0 {
			kept = append(kept, item)
		}
	}
	c.items = kept
}
