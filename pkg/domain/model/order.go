package model

import (
	"context"
	"errors"
	"time"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// Placeholder is shown in place of order fields that older records lack.
const Placeholder = "N/A"

const TimestampLayout = "2006-01-02 15:04:05"

const (
	// OrderSchemaLegacy records carry only username, items and total. Items
	// may lack a quantity.
	OrderSchemaLegacy = 1
	// OrderSchemaCurrent records carry an order id and a timestamp as well.
	OrderSchemaCurrent = 2
)

type OrderItem struct {
	Name     string
	Price    int64
	Quantity int
}

func (i OrderItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

type Order struct {
	ID       string
	// Key is the storage key of an order written without an order id.
	Key      string
	Username string
	PlacedAt *time.Time
	Items    []OrderItem
	Total    int64
}

func (o Order) DisplayID() string {
	if o.ID == "" {
		return Placeholder
	}
	return o.ID
}

// Ref addresses the order in lookups: its order id, or its storage key when
// it has none.
func (o Order) Ref() string {
	if o.ID != "" {
		return o.ID
	}
	return o.Key
}

func (o Order) DisplayTimestamp() string {
	if o.PlacedAt == nil {
		return Placeholder
	}
	return o.PlacedAt.UTC().Format(TimestampLayout)
}

// OrderItemRecord is a persisted line item. Quantity is absent on records
// written before the cart supported quantities.
type OrderItemRecord struct {
	Name     string
	Price    int64
	Quantity *int
}

// OrderRecord is the persisted shape of an order, with every field that was
// introduced after the first schema left optional.
type OrderRecord struct {
	// Key is assigned by the store and never changes.
	Key           string
	SchemaVersion int
	ID            *string
	Username      string
	PlacedAt      *time.Time
	Items         []OrderItemRecord
	Total         *int64
}

// Order applies the defaulting rules for missing fields: a missing quantity
// counts as 1 and a missing total is recomputed from the items. Missing ids
// and timestamps stay empty and are rendered as Placeholder.
func (r OrderRecord) Order() Order {
	order := Order{
		Username: r.Username,
		PlacedAt: r.PlacedAt,
		Items:    make([]OrderItem, 0, len(r.Items)),
	}
	if r.ID != nil && *r.ID != "" {
		order.ID = *r.ID
	} else {
		order.Key = r.Key
	}

	var computed int64
	for _, rec := range r.Items {
		item := OrderItem{Name: rec.Name, Price: rec.Price, Quantity: MinQuantity}
		if rec.Quantity != nil {
			item.Quantity = *rec.Quantity
		}
		computed += item.Subtotal()
		order.Items = append(order.Items, item)
	}

	order.Total = computed
	if r.Total != nil {
		order.Total = *r.Total
	}
	return order
}

func NewOrderRecord(order Order) OrderRecord {
	id := order.ID
	total := order.Total
	rec := OrderRecord{
		SchemaVersion: OrderSchemaCurrent,
		ID:            &id,
		Username:      order.Username,
		PlacedAt:      order.PlacedAt,
		Items:         make([]OrderItemRecord, 0, len(order.Items)),
		Total:         &total,
	}
	for _, item := range order.Items {
		quantity := item.Quantity
		rec.Items = append(rec.Items, OrderItemRecord{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: &quantity,
		})
	}
	return rec
}

type OrderRepository interface {
	NextID() (string, error)
	Create(ctx context.Context, order *Order) error
	// Find accepts an Order.Ref: an order id, or a storage key for orders
	// without one.
	Find(ctx context.Context, ref string) (*Order, error)
	List(ctx context.Context) ([]Order, error)
	ListByUsername(ctx context.Context, username string) ([]Order, error)
}

type Invoice struct {
	Filename    string
	ContentType string
	Body        []byte
}

type InvoiceRenderer interface {
	Render(order Order) ([]byte, error)
}
