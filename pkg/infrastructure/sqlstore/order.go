package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"sales/pkg/domain/model"
)

const orderIDLength = 8

const selectOrders = `SELECT order_id, schema_version, username, placed_at, items, total FROM orders`

type orderItemJSON struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity *int   `json:"quantity,omitempty"`
}

type orderRow struct {
	OrderID       string     `db:"order_id"`
	SchemaVersion int        `db:"schema_version"`
	Username      string     `db:"username"`
	PlacedAt      *time.Time `db:"placed_at"`
	Items         []byte     `db:"items"`
	Total         *int64     `db:"total"`
}

func newOrderRow(rec model.OrderRecord) (orderRow, error) {
	items := make([]orderItemJSON, 0, len(rec.Items))
	for _, item := range rec.Items {
		items = append(items, orderItemJSON{Name: item.Name, Price: item.Price, Quantity: item.Quantity})
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return orderRow{}, errors.Wrap(err, "encode order items")
	}

	row := orderRow{
		SchemaVersion: rec.SchemaVersion,
		Username:      rec.Username,
		PlacedAt:      rec.PlacedAt,
		Items:         raw,
		Total:         rec.Total,
	}
	if rec.ID != nil {
		row.OrderID = *rec.ID
	}
	return row, nil
}

func (r orderRow) toRecord() (model.OrderRecord, error) {
	var items []orderItemJSON
	if err := json.Unmarshal(r.Items, &items); err != nil {
		return model.OrderRecord{}, errors.Wrapf(err, "decode items of order %q", r.OrderID)
	}

	rec := model.OrderRecord{
		Key:           r.OrderID,
		SchemaVersion: r.SchemaVersion,
		Username:      r.Username,
		PlacedAt:      r.PlacedAt,
		Items:         make([]model.OrderItemRecord, 0, len(items)),
		Total:         r.Total,
	}
	if r.OrderID != "" {
		id := r.OrderID
		rec.ID = &id
	}
	for _, item := range items {
		rec.Items = append(rec.Items, model.OrderItemRecord{Name: item.Name, Price: item.Price, Quantity: item.Quantity})
	}
	return rec, nil
}

type OrderRepository struct {
	db *sqlx.DB
}

var _ model.OrderRepository = (*OrderRepository)(nil)

func (r *OrderRepository) NextID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String()[:orderIDLength], nil
}

func (r *OrderRepository) Create(ctx context.Context, order *model.Order) error {
	row, err := newOrderRow(model.NewOrderRecord(*order))
	if err != nil {
		return err
	}

	_, err = r.db.NamedExecContext(ctx,
		`INSERT INTO orders (order_id, schema_version, username, placed_at, items, total)
		VALUES (:order_id, :schema_version, :username, :placed_at, :items, :total)`,
		row,
	)
	return errors.Wrap(err, "insert order")
}

// Find looks orders up by order_id, which is the primary key of every row.
func (r *OrderRepository) Find(ctx context.Context, ref string) (*model.Order, error) {
	var row orderRow
	err := r.db.GetContext(ctx, &row, selectOrders+` WHERE order_id = ?`, ref)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order")
	}

	rec, err := row.toRecord()
	if err != nil {
		return nil, err
	}
	order := rec.Order()
	return &order, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]model.Order, error) {
	return r.selectOrders(ctx, selectOrders+` ORDER BY created_at`)
}

func (r *OrderRepository) ListByUsername(ctx context.Context, username string) ([]model.Order, error) {
	return r.selectOrders(ctx, selectOrders+` WHERE username = ? ORDER BY created_at`, username)
}

func (r *OrderRepository) selectOrders(ctx context.Context, query string, args ...interface{}) ([]model.Order, error) {
	var rows []orderRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, errors.Wrap(err, "list orders")
	}

	orders := make([]model.Order, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			return nil, err
		}
		orders = append(orders, rec.Order())
	}
	return orders, nil
}
